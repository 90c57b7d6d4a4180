package interfaces

import (
	"context"

	"repairflow/internal/domain/entities"
)

// ICompletionPublisher announces finished repairs to downstream consumers
// (billing, ratings). Publishing is best effort: callers log failures and move on.
type ICompletionPublisher interface {
	PublishCompletion(ctx context.Context, event entities.CompletionEvent) error
}
