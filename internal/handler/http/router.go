package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/ttl-ops/portal-backend-go/internal/handler/http/middleware"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	frontendURL string,
	orderHandler OrderHandler,
	warningHandler WarningHandler,
	salaryHandler SalaryHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ttl-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/orders", func(r chi.Router) {
				r.Post("/", orderHandler.Submit)
				r.Get("/", orderHandler.ListMine)

				// Manager review surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", orderHandler.ListPending)
					r.Post("/{id}/decision", orderHandler.Decide)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Mark)
				r.Get("/", attendanceHandler.ListMine)
			})

			r.Route("/warnings", func(r chi.Router) {
				r.Get("/", warningHandler.ListMine)
				r.Post("/{id}/read", warningHandler.MarkRead)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", warningHandler.Issue)
				})
			})

			r.Route("/deductions", func(r chi.Router) {
				r.Get("/", warningHandler.ListDeductions)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", warningHandler.CreateDeduction)
				})
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/", salaryHandler.GetSalary)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/pending", salaryHandler.GetPendingPayroll)
			})
		})
	})
	return r
}
