package interfaces

import "context"

// ITechnicianDirectory resolves an available technician from the external directory.
//
// found == false with a nil error is the expected "no capacity" answer.
// Implementations make exactly one call and never retry.
type ITechnicianDirectory interface {
	GetRandomTechnician(ctx context.Context) (technicianID string, found bool, err error)
}
