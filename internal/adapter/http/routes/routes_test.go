package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"repairflow/internal/adapter/http/handlers"
	"repairflow/internal/adapter/http/handlers/mocks"
	"repairflow/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIRepairOrderUseCase, *mocks.MockIReportWorkflowUseCase) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIRepairOrderUseCase(ctrl)
	reports := mocks.NewMockIReportWorkflowUseCase(ctrl)
	return NewRouter(UseCases{Orders: orders, Reports: reports}), orders, reports
}

func serve(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_Ping(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/v1/ping", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Fatalf("expected default collectors in metrics output")
	}
}

func TestNewRouter_RequiresCaller(t *testing.T) {
	r, _, _ := newTestRouter(t)

	for _, path := range []string{"/v1/orders", "/v1/reports/rep-1"} {
		if w := serve(r, http.MethodGet, path, nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

func TestNewRouter_DispatchesToUseCases(t *testing.T) {
	r, orders, reports := newTestRouter(t)
	customer := map[string]string{handlers.HeaderUserID: "cust-1", handlers.HeaderUserRole: "CUSTOMER"}

	orders.EXPECT().ListCustomerOrders(gomock.Any(), entities.Caller{Role: entities.RoleCustomer, ID: "cust-1"}).
		Return([]entities.RepairOrder{}, nil)
	if w := serve(r, http.MethodGet, "/v1/orders", customer); w.Code != http.StatusOK {
		t.Fatalf("list orders: expected 200, got %d", w.Code)
	}

	reports.EXPECT().Approve(gomock.Any(), "rep-1", "cust-1").DoAndReturn(
		func(_ context.Context, reportID, _ string) (entities.TechnicianReport, error) {
			return entities.TechnicianReport{ID: reportID, Status: "APPROVED", Version: 4}, nil
		})
	if w := serve(r, http.MethodPost, "/v1/reports/rep-1/approve", customer); w.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d %s", w.Code, w.Body.String())
	}
}

func TestNewRouter_RecoversFromPanic(t *testing.T) {
	r, orders, _ := newTestRouter(t)
	orders.EXPECT().ListCustomerOrders(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, entities.Caller) ([]entities.RepairOrder, error) {
			panic("boom")
		})

	w := serve(r, http.MethodGet, "/v1/orders", map[string]string{handlers.HeaderUserID: "cust-1", handlers.HeaderUserRole: "CUSTOMER"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
