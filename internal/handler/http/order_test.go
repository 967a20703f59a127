package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttl-ops/portal-backend-go/internal/domain/attendance"
	"github.com/ttl-ops/portal-backend-go/internal/domain/order"
	"github.com/ttl-ops/portal-backend-go/internal/domain/salary"
	"github.com/ttl-ops/portal-backend-go/internal/domain/user"
	"github.com/ttl-ops/portal-backend-go/internal/domain/warning"
	"github.com/ttl-ops/portal-backend-go/internal/pkg/jwt"
)

const handlerTestSecret = "test-secret-key-for-jwt"

// fakeOrderService returns canned responses; routing, auth and role gates
// are what these tests exercise.
type fakeOrderService struct {
	submitted order.OrderResponse
	decided   order.OrderResponse
	err       error
}

func (s *fakeOrderService) Submit(_ context.Context, userID string, req order.SubmitOrderRequest) (order.OrderResponse, error) {
	if s.err != nil {
		return order.OrderResponse{}, s.err
	}
	resp := s.submitted
	resp.UserID = userID
	resp.DateKey = req.DateKey
	resp.SubmittedCount = req.SubmittedCount
	return resp, nil
}

func (s *fakeOrderService) Decide(_ context.Context, orderID string, _ order.DecideOrderRequest) (order.OrderResponse, error) {
	if s.err != nil {
		return order.OrderResponse{}, s.err
	}
	resp := s.decided
	resp.ID = orderID
	return resp, nil
}

func (s *fakeOrderService) ListForMonth(context.Context, string, string) ([]order.OrderResponse, error) {
	return nil, nil
}

func (s *fakeOrderService) ListPendingForMonth(context.Context, string) ([]order.OrderResponse, error) {
	return nil, nil
}

type stubWarningService struct{}

func (stubWarningService) IssueWarning(context.Context, user.Actor, warning.IssueWarningRequest) (warning.IssueWarningResponse, error) {
	return warning.IssueWarningResponse{}, nil
}

func (stubWarningService) CreateDeduction(context.Context, user.Actor, warning.CreateDeductionRequest) (warning.DeductionResponse, error) {
	return warning.DeductionResponse{}, nil
}

func (stubWarningService) MarkWarningRead(context.Context, string, string) (warning.WarningResponse, error) {
	return warning.WarningResponse{}, nil
}

func (stubWarningService) SweepStaleWarnings(context.Context, string, time.Time) (int64, error) {
	return 0, nil
}

func (stubWarningService) ListWarnings(context.Context, string, bool) ([]warning.WarningResponse, error) {
	return nil, nil
}

func (stubWarningService) ListDeductions(context.Context, string, string) ([]warning.DeductionResponse, error) {
	return nil, nil
}

func (stubWarningService) MonthlyTotal(context.Context, string, string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type stubSalaryService struct{}

func (stubSalaryService) Calculate(context.Context, string, string) (salary.Breakdown, error) {
	return salary.Breakdown{}, nil
}

func (stubSalaryService) PendingPayroll(context.Context, string) (salary.Liability, error) {
	return salary.Liability{}, nil
}

type stubAttendanceService struct{}

func (stubAttendanceService) Mark(context.Context, string, time.Time) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, nil
}

func (stubAttendanceService) ListForMonth(context.Context, string, string) ([]attendance.AttendanceResponse, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, orderSvc order.OrderService) (http.Handler, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService(handlerTestSecret)

	router := NewRouter(
		jwtService,
		"test",
		"http://localhost:3000",
		NewOrderHandler(jwtService, orderSvc),
		NewWarningHandler(jwtService, stubWarningService{}),
		NewSalaryHandler(jwtService, stubSalaryService{}),
		NewAttendanceHandler(jwtService, stubAttendanceService{}),
	)
	return router, jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, userID string, role user.Role) string {
	t.Helper()
	_, tokenString, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	return tokenString
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestOrderHandler_Submit(t *testing.T) {
	router, jwtService := newTestRouter(t, &fakeOrderService{
		submitted: order.OrderResponse{ID: "order-1", Status: string(order.StatusPending)},
	})
	token := accessToken(t, jwtService, "emp-1", user.RoleEmployee)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/orders", token, order.SubmitOrderRequest{
		DateKey:        "2026-03-05",
		SubmittedCount: 12,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Success bool                `json:"success"`
		Data    order.OrderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "emp-1", body.Data.UserID)
	assert.Equal(t, "2026-03-05", body.Data.DateKey)
	assert.Equal(t, string(order.StatusPending), body.Data.Status)
}

func TestOrderHandler_Submit_NoToken(t *testing.T) {
	router, _ := newTestRouter(t, &fakeOrderService{})

	rec := doJSON(t, router, http.MethodPost, "/api/v1/orders", "", order.SubmitOrderRequest{
		DateKey:        "2026-03-05",
		SubmittedCount: 12,
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_Decide(t *testing.T) {
	approved := 10
	router, jwtService := newTestRouter(t, &fakeOrderService{
		decided: order.OrderResponse{Status: string(order.StatusApproved), ApprovedCount: &approved},
	})

	t.Run("manager may decide", func(t *testing.T) {
		token := accessToken(t, jwtService, "mgr-1", user.RoleManager)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/orders/order-1/decision", token, order.DecideOrderRequest{
			Action:        string(order.ActionApprove),
			ApprovedCount: &approved,
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool                `json:"success"`
			Data    order.OrderResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "order-1", body.Data.ID)
		assert.Equal(t, string(order.StatusApproved), body.Data.Status)
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		token := accessToken(t, jwtService, "emp-1", user.RoleEmployee)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/orders/order-1/decision", token, order.DecideOrderRequest{
			Action:        string(order.ActionApprove),
			ApprovedCount: &approved,
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestOrderHandler_Decide_Locked(t *testing.T) {
	router, jwtService := newTestRouter(t, &fakeOrderService{err: order.ErrOrderLocked})
	token := accessToken(t, jwtService, "mgr-1", user.RoleManager)

	approved := 10
	rec := doJSON(t, router, http.MethodPost, "/api/v1/orders/order-1/decision", token, order.DecideOrderRequest{
		Action:        string(order.ActionApprove),
		ApprovedCount: &approved,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}
