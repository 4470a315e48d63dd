package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for placed orders
type Repository interface {
	Save(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindBySession(ctx context.Context, sessionID string) ([]Order, error)
}
