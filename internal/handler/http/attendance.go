package http

import (
	"net/http"
	"time"

	"github.com/ttl-ops/portal-backend-go/internal/domain/attendance"
	"github.com/ttl-ops/portal-backend-go/internal/handler/http/response"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/jwt"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	jwtService        jwt.Service
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(jwtService jwt.Service, attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{jwtService: jwtService, attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), actor.UserID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", result)
}

func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	month := r.URL.Query().Get("month")

	result, err := h.attendanceService.ListForMonth(r.Context(), actor.UserID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
