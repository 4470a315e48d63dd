package cart

import (
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// Line is one product+quantity entry within a cart.
// Quantity is always a positive integer; an operation that would drive
// it to zero or below removes the line instead.
type Line struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is the ordered collection of lines for one shopper session.
// Order is insertion order; it matters for display only, never for
// pricing. At most one line exists per product.
type Cart struct {
	SessionID string
	Lines     []Line
	UpdatedAt time.Time
}

// New creates an empty cart for the given session
func New(sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, shared.NewDomainError("INVALID_SESSION", "Session ID cannot be empty")
	}
	return &Cart{
		SessionID: sessionID,
		Lines:     make([]Line, 0),
		UpdatedAt: time.Now(),
	}, nil
}

// AddItem adds quantity of a product to the cart. If a line for the
// product already exists its quantity is incremented; otherwise a new
// line is appended.
func (c *Cart) AddItem(productID string, quantity int) error {
	if productID == "" {
		return shared.ErrProductNotFound
	}
	if quantity <= 0 {
		return shared.ErrInvalidQuantity
	}

	for idx := range c.Lines {
		if c.Lines[idx].ProductID == productID {
			c.Lines[idx].Quantity += quantity
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	c.Lines = append(c.Lines, Line{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	})
	c.UpdatedAt = time.Now()
	return nil
}

// RemoveItem deletes the line for the product. Removing a product that
// is not in the cart is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for idx := range c.Lines {
		if c.Lines[idx].ProductID == productID {
			c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// SetQuantity sets a line's quantity directly (not additive).
// A quantity of zero or below removes the line. Setting a quantity for
// a product not in the cart is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for idx := range c.Lines {
		if c.Lines[idx].ProductID == productID {
			c.Lines[idx].Quantity = quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// Increment raises a line's quantity by one
func (c *Cart) Increment(productID string) {
	if line := c.LineFor(productID); line != nil {
		c.SetQuantity(productID, line.Quantity+1)
	}
}

// Decrement lowers a line's quantity by one; decrementing from one
// removes the line
func (c *Cart) Decrement(productID string) {
	if line := c.LineFor(productID); line != nil {
		c.SetQuantity(productID, line.Quantity-1)
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Lines = make([]Line, 0)
	c.UpdatedAt = time.Now()
}

// LineFor returns the line for a product, or nil when absent
func (c *Cart) LineFor(productID string) *Line {
	for idx := range c.Lines {
		if c.Lines[idx].ProductID == productID {
			return &c.Lines[idx]
		}
	}
	return nil
}

// ItemCount returns the sum of all line quantities
func (c *Cart) ItemCount() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// IsEmpty returns true when the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
