package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidServiceDate = errors.New("desired_service_date must be YYYY-MM-DD or RFC 3339")

// CreateRepairOrderRequest is the intake form a customer submits.
// Field rules are enforced by the use case; binding only checks the JSON shape.
type CreateRepairOrderRequest struct {
	ItemName           string `json:"item_name"`
	ItemCondition      string `json:"item_condition"`
	IssueDescription   string `json:"issue_description"`
	PaymentMethodID    string `json:"payment_method_id"`
	DesiredServiceDate string `json:"desired_service_date"`
}

// ResolveDesiredServiceDate parses the service date. An empty value yields the zero time.
func (r CreateRepairOrderRequest) ResolveDesiredServiceDate() (time.Time, error) {
	raw := strings.TrimSpace(r.DesiredServiceDate)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidServiceDate
}
