package interfaces

import (
	"context"

	"repairflow/internal/domain/entities"
)

// ITechnicianReportRepository abstracts DynamoDB persistence for TechnicianReport.
//
// Every write is conditioned on the version the caller read (optimistic locking);
// a stale write fails with errs.ErrConcurrentModification.
//
// The workflow must be able to:
//   - create a draft for an order (one report per order: the report id is the
//     order id, and Create fails with errs.ErrAlreadyExists when one exists)
//   - update or delete a draft
//   - commit a transition: report state + order status in one transaction
type ITechnicianReportRepository interface {
	Create(ctx context.Context, r entities.TechnicianReport) (entities.TechnicianReport, error)
	GetByID(ctx context.Context, id string) (entities.TechnicianReport, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.TechnicianReport, error)
	Update(ctx context.Context, r entities.TechnicianReport, expectedVersion int64) (entities.TechnicianReport, error)
	Delete(ctx context.Context, id string, expectedVersion int64) error
	CommitTransition(ctx context.Context, r entities.TechnicianReport, expectedVersion int64, orderStatus entities.RepairOrderStatus) (entities.TechnicianReport, error)
}
