package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState       = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrProductNotFound    = NewDomainError("PRODUCT_NOT_FOUND", "Product not found in catalog")
	ErrInvalidQuantity    = NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	ErrInvalidPromoCode   = NewDomainError("INVALID_PROMO_CODE", "Promotion code not recognized")
	ErrEmptyCart          = NewDomainError("EMPTY_CART", "Cart has no items")
	ErrStorageUnavailable = NewDomainError("STORAGE_UNAVAILABLE", "Cart storage is unavailable")
)
