package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"repairflow/internal/domain/errs"
	"repairflow/internal/usecase"
	"repairflow/pkg"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func asCustomer(id string) map[string]string {
	return map[string]string{HeaderUserID: id, HeaderUserRole: "CUSTOMER"}
}

func asTechnician(id string) map[string]string {
	return map[string]string{HeaderUserID: id, HeaderUserRole: "technician"}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestRequireCaller(t *testing.T) {
	r := gin.New()
	r.GET("/who", RequireCaller(), func(c *gin.Context) {
		caller, _ := callerFrom(c)
		c.String(http.StatusOK, "%s:%s", caller.Role, caller.ID)
	})

	tests := []struct {
		name    string
		headers map[string]string
		want    int
		body    string
	}{
		{name: "customer", headers: asCustomer("cust-1"), want: http.StatusOK, body: "CUSTOMER:cust-1"},
		{name: "role is case insensitive", headers: asTechnician("tech-1"), want: http.StatusOK, body: "TECHNICIAN:tech-1"},
		{name: "missing id", headers: map[string]string{HeaderUserRole: "CUSTOMER"}, want: http.StatusUnauthorized},
		{name: "missing role", headers: map[string]string{HeaderUserID: "x"}, want: http.StatusUnauthorized},
		{name: "unknown role", headers: map[string]string{HeaderUserID: "x", HeaderUserRole: "ADMIN"}, want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/who", "", tt.headers)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Fatalf("unexpected body %q", w.Body.String())
			}
		})
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
		code string
	}{
		{err: errs.InvalidState("diagnosis is required"), want: http.StatusBadRequest, code: "INVALID_STATE"},
		{err: &errs.IllegalTransitionError{State: "APPROVED", Action: "reject"}, want: http.StatusConflict, code: "ILLEGAL_STATE_TRANSITION"},
		{err: errs.IllegalAccess("nope"), want: http.StatusForbidden, code: "ILLEGAL_ACCESS"},
		{err: errs.TechnicianUnavailable(nil), want: http.StatusServiceUnavailable, code: "TECHNICIAN_UNAVAILABLE"},
		{err: errs.NewDatabaseError("get", errors.New("boom")), want: http.StatusInternalServerError, code: "DATABASE_ERROR"},
		{err: errs.UnknownState("ON_HOLD"), want: http.StatusInternalServerError, code: "UNKNOWN_STATE"},
		{err: errs.ErrConcurrentModification, want: http.StatusConflict, code: "CONCURRENT_MODIFICATION"},
		{err: usecase.ErrRepairOrderNotFound, want: http.StatusNotFound, code: "ORDER_NOT_FOUND"},
		{err: usecase.ErrReportNotFound, want: http.StatusNotFound, code: "REPORT_NOT_FOUND"},
		{err: usecase.ErrReportAlreadyExists, want: http.StatusConflict, code: "REPORT_ALREADY_EXISTS"},
		{err: usecase.ErrInvalidReportID, want: http.StatusBadRequest, code: "INVALID_STATE"},
		{err: fmt.Errorf("wrapped: %w", errors.New("other")), want: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		got := mapDomainError(tt.err)
		if got.HTTPStatus != tt.want || got.Code != tt.code {
			t.Fatalf("%v: got %d %s, want %d %s", tt.err, got.HTTPStatus, got.Code, tt.want, tt.code)
		}
	}
}
