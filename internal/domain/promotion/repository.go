package promotion

import "context"

// Repository provides lookup of promotion codes.
// FindByCode expects a normalized code and returns shared.ErrNotFound
// for unknown codes.
type Repository interface {
	FindByCode(ctx context.Context, code string) (*Promotion, error)
	All(ctx context.Context) ([]Promotion, error)
	Save(ctx context.Context, promo *Promotion) error
}
