package cart

import "context"

// Repository defines persistence for carts, keyed by session.
//
// Every mutation in the application layer is followed by a synchronous
// Save before the call returns (write-through), so callers may assume
// durability immediately afterwards. Loading a session with no stored
// cart, or with data that fails to deserialize, yields an empty cart
// rather than an error; availability is favored over strict validation.
type Repository interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, sessionID string) error
}
