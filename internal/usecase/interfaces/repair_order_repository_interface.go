package interfaces

import (
	"context"

	"repairflow/internal/domain/entities"
)

// IRepairOrderRepository abstracts DynamoDB persistence for RepairOrder.
//
// GetByID returns a zero-value order (empty ID) when nothing is stored under id.
// Status changes driven by the report workflow go through
// ITechnicianReportRepository.CommitTransition so both items move together.
type IRepairOrderRepository interface {
	Create(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error)
	GetByID(ctx context.Context, id string) (entities.RepairOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.RepairOrder, error)
}
