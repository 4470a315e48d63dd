package promotion

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/shared"
)

// Resolver validates user-supplied promotion codes against the known
// code table
type Resolver struct {
	repo Repository
}

// NewResolver creates a new Resolver
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve normalizes a raw code and looks it up. An unknown code yields
// shared.ErrInvalidPromoCode; a mistyped code is an expected,
// recoverable user input condition, never a fault.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*Promotion, error) {
	code := NormalizeCode(raw)
	if code == "" {
		return nil, shared.ErrInvalidPromoCode
	}

	promo, err := r.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidPromoCode
		}
		return nil, err
	}
	return promo, nil
}
