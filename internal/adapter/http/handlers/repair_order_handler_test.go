package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	response "repairflow/internal/adapter/http/dto/response"
	"repairflow/internal/adapter/http/handlers/mocks"
	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
	"repairflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIRepairOrderUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRepairOrderUseCase(ctrl)
	h := NewRepairOrderHandler(uc)

	r := gin.New()
	g := r.Group("/v1/orders", RequireCaller())
	g.POST("", h.CreateOrder)
	g.GET("", h.ListOrders)
	g.GET("/:order_id", h.GetOrder)
	return r, uc
}

const orderBody = `{"item_name":"Laptop","item_condition":"cracked","issue_description":"no display","payment_method_id":"pix","desired_service_date":"2026-03-12"}`

func TestRepairOrderHandler_CreateOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), &entities.Customer{ID: "cust-1"}).DoAndReturn(
			func(_ context.Context, req *usecase.CreateRepairOrderRequest, _ *entities.Customer) (entities.RepairOrder, error) {
				if req.ItemName != "Laptop" || !req.DesiredServiceDate.Equal(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected request: %+v", req)
				}
				return entities.RepairOrder{ID: "order-1", TechnicianID: "tech-1", Status: entities.RepairOrderStatusPendingConfirmation}, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/orders", orderBody, asCustomer("cust-1"))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res response.RepairOrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.ID != "order-1" || res.Status != "PENDING_CONFIRMATION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("technician cannot create", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/orders", orderBody, asTechnician("tech-1"))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/orders", "{", asCustomer("cust-1"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/orders", `{"desired_service_date":"tomorrow"}`, asCustomer("cust-1"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation message passed through", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RepairOrder{}, errs.InvalidState("item_name is required"))

		w := doRequest(r, http.MethodPost, "/v1/orders", orderBody, asCustomer("cust-1"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Message != "invalid state: item_name is required" {
			t.Fatalf("unexpected message: %q", body.Message)
		}
	})

	t.Run("technician unavailable", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RepairOrder{}, errs.TechnicianUnavailable(errors.New("timeout")))

		w := doRequest(r, http.MethodPost, "/v1/orders", orderBody, asCustomer("cust-1"))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "TECHNICIAN_UNAVAILABLE" {
			t.Fatalf("unexpected code: %s", body.Code)
		}
	})
}

func TestRepairOrderHandler_GetAndList(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetOrder(gomock.Any(), "order-1", entities.Caller{Role: entities.RoleTechnician, ID: "tech-1"}).
			Return(entities.RepairOrder{ID: "order-1"}, nil)

		w := doRequest(r, http.MethodGet, "/v1/orders/order-1", "", asTechnician("tech-1"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetOrder(gomock.Any(), "order-9", gomock.Any()).Return(entities.RepairOrder{}, usecase.ErrRepairOrderNotFound)

		w := doRequest(r, http.MethodGet, "/v1/orders/order-9", "", asCustomer("cust-1"))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().ListCustomerOrders(gomock.Any(), entities.Caller{Role: entities.RoleCustomer, ID: "cust-1"}).
			Return([]entities.RepairOrder{{ID: "a"}, {ID: "b"}}, nil)

		w := doRequest(r, http.MethodGet, "/v1/orders", "", asCustomer("cust-1"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []response.RepairOrderResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || len(res) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing caller", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := doRequest(r, http.MethodGet, "/v1/orders", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
