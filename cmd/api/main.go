package main

import (
	"fmt"
	"net/http"

	"github.com/ttl-ops/portal-backend-go/internal/config"
	appHTTP "github.com/ttl-ops/portal-backend-go/internal/handler/http"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/database"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/jwt"
	"github.com/ttl-ops/portal-backend-go/internal/repository/postgresql"
	attendanceService "github.com/ttl-ops/portal-backend-go/internal/service/attendance"
	orderService "github.com/ttl-ops/portal-backend-go/internal/service/order"
	salaryService "github.com/ttl-ops/portal-backend-go/internal/service/salary"
	warningService "github.com/ttl-ops/portal-backend-go/internal/service/warning"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	warningRepo := postgresql.NewWarningRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	orderSvc := orderService.NewOrderService(orderRepo)
	warningSvc := warningService.NewWarningService(db, warningRepo, deductionRepo, userRepo)
	salarySvc := salaryService.NewSalaryService(db, userRepo, orderRepo, deductionRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)

	orderHandler := appHTTP.NewOrderHandler(jwtService, orderSvc)
	warningHandler := appHTTP.NewWarningHandler(jwtService, warningSvc)
	salaryHandler := appHTTP.NewSalaryHandler(jwtService, salarySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(jwtService, attendanceSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		cfg.App.FrontendURL,
		orderHandler,
		warningHandler,
		salaryHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
