package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	response "repairflow/internal/adapter/http/dto/response"
	"repairflow/internal/adapter/http/handlers/mocks"
	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
	"repairflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReportRouter(t *testing.T) (*gin.Engine, *mocks.MockIReportWorkflowUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportWorkflowUseCase(ctrl)
	h := NewTechnicianReportHandler(uc)

	r := gin.New()
	g := r.Group("/v1/reports", RequireCaller())
	g.POST("", h.CreateDraft)
	g.GET("/:report_id", h.GetReport)
	g.PATCH("/:report_id", h.UpdateDraft)
	g.DELETE("/:report_id", h.DeleteDraft)
	g.POST("/:report_id/submit", h.Submit)
	g.POST("/:report_id/approve", h.Approve)
	g.POST("/:report_id/reject", h.Reject)
	g.POST("/:report_id/start", h.StartWork)
	g.POST("/:report_id/complete", h.Complete)
	return r, uc
}

func TestTechnicianReportHandler_CreateDraft(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().CreateDraftReport(gomock.Any(), "tech-1", gomock.AssignableToTypeOf(usecase.DraftReportInput{})).
			Return(entities.TechnicianReport{ID: "rep-1", Status: "DRAFT"}, nil)

		w := doRequest(r, http.MethodPost, "/v1/reports", `{"order_id":"order-1","diagnosis":"dead battery","estimated_cost":120}`, asTechnician("tech-1"))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res response.TechnicianReportResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.ID != "rep-1" || len(res.AvailableActions) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("order id required", func(t *testing.T) {
		r, _ := newReportRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/reports", `{"diagnosis":"x"}`, asTechnician("tech-1"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().CreateDraftReport(gomock.Any(), "tech-1", gomock.Any()).Return(entities.TechnicianReport{}, usecase.ErrReportAlreadyExists)

		w := doRequest(r, http.MethodPost, "/v1/reports", `{"order_id":"order-1"}`, asTechnician("tech-1"))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestTechnicianReportHandler_Actions(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		expect  func(uc *mocks.MockIReportWorkflowUseCase)
		want    int
	}{
		{
			name:    "submit",
			path:    "/v1/reports/rep-1/submit",
			headers: asTechnician("tech-1"),
			expect: func(uc *mocks.MockIReportWorkflowUseCase) {
				uc.EXPECT().Submit(gomock.Any(), "rep-1", "tech-1").Return(entities.TechnicianReport{ID: "rep-1", Status: "SUBMITTED"}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:    "submit incomplete",
			path:    "/v1/reports/rep-1/submit",
			headers: asTechnician("tech-1"),
			expect: func(uc *mocks.MockIReportWorkflowUseCase) {
				uc.EXPECT().Submit(gomock.Any(), "rep-1", "tech-1").Return(entities.TechnicianReport{}, errs.InvalidState("diagnosis is required"))
			},
			want: http.StatusBadRequest,
		},
		{
			name:    "customer cannot submit",
			path:    "/v1/reports/rep-1/submit",
			headers: asCustomer("cust-1"),
			want:    http.StatusForbidden,
		},
		{
			name:    "approve",
			path:    "/v1/reports/rep-1/approve",
			headers: asCustomer("cust-1"),
			expect: func(uc *mocks.MockIReportWorkflowUseCase) {
				uc.EXPECT().Approve(gomock.Any(), "rep-1", "cust-1").Return(entities.TechnicianReport{ID: "rep-1", Status: "APPROVED"}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:    "reject after approval",
			path:    "/v1/reports/rep-1/reject",
			headers: asCustomer("cust-1"),
			expect: func(uc *mocks.MockIReportWorkflowUseCase) {
				uc.EXPECT().Reject(gomock.Any(), "rep-1", "cust-1").
					Return(entities.TechnicianReport{}, &errs.IllegalTransitionError{State: "APPROVED", Action: "reject"})
			},
			want: http.StatusConflict,
		},
		{
			name:    "technician cannot approve",
			path:    "/v1/reports/rep-1/approve",
			headers: asTechnician("tech-1"),
			want:    http.StatusForbidden,
		},
		{
			name:    "start work",
			path:    "/v1/reports/rep-1/start",
			headers: asTechnician("tech-1"),
			expect: func(uc *mocks.MockIReportWorkflowUseCase) {
				uc.EXPECT().StartWork(gomock.Any(), "rep-1", "tech-1").Return(entities.TechnicianReport{ID: "rep-1", Status: "IN_PROGRESS"}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:    "complete conflict",
			path:    "/v1/reports/rep-1/complete",
			headers: asTechnician("tech-1"),
			expect: func(uc *mocks.MockIReportWorkflowUseCase) {
				uc.EXPECT().Complete(gomock.Any(), "rep-1", "tech-1").Return(entities.TechnicianReport{}, errs.ErrConcurrentModification)
			},
			want: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newReportRouter(t)
			if tt.expect != nil {
				tt.expect(uc)
			}
			w := doRequest(r, http.MethodPost, tt.path, "", tt.headers)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestTechnicianReportHandler_ReadAndEdit(t *testing.T) {
	t.Run("customer reading draft is forbidden", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().GetReport(gomock.Any(), "rep-1", entities.RoleCustomer, "cust-1").Return(entities.TechnicianReport{}, errs.IllegalAccess("draft"))

		w := doRequest(r, http.MethodGet, "/v1/reports/rep-1", "", asCustomer("cust-1"))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("update draft", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().UpdateDraftReport(gomock.Any(), "rep-1", "tech-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, patch usecase.DraftReportPatch) (entities.TechnicianReport, error) {
				if patch.ActionPlan == nil || *patch.ActionPlan != "swap battery" || patch.Diagnosis != nil {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.TechnicianReport{ID: "rep-1", Status: "DRAFT"}, nil
			},
		)

		w := doRequest(r, http.MethodPatch, "/v1/reports/rep-1", `{"action_plan":"swap battery"}`, asTechnician("tech-1"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		r, _ := newReportRouter(t)
		w := doRequest(r, http.MethodPatch, "/v1/reports/rep-1", `{}`, asTechnician("tech-1"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete draft", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().DeleteDraftReport(gomock.Any(), "rep-1", "tech-1").Return(nil)

		w := doRequest(r, http.MethodDelete, "/v1/reports/rep-1", "", asTechnician("tech-1"))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
