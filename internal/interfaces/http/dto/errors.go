package dto

import "net/http"

// Transport-level error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeMissingSession is used when the session header is absent
	ErrCodeMissingSession = "MISSING_SESSION"
)

// Domain error codes surfaced on the wire unchanged
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeInvalidState       = "INVALID_STATE"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInvalidPromoCode   = "INVALID_PROMO_CODE"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Recoverable user-input conditions map to 4xx; only storage faults
// and unknowns turn into 5xx.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:       http.StatusInternalServerError,
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeInvalidJSON:    http.StatusBadRequest,
	ErrCodeMissingSession: http.StatusBadRequest,

	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeInvalidInput:       http.StatusBadRequest,
	ErrCodeInvalidState:       http.StatusUnprocessableEntity,
	ErrCodeProductNotFound:    http.StatusNotFound,
	ErrCodeInvalidQuantity:    http.StatusBadRequest,
	ErrCodeInvalidPromoCode:   http.StatusUnprocessableEntity,
	ErrCodeEmptyCart:          http.StatusUnprocessableEntity,
	ErrCodeStorageUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status for an error code, 500 when
// the code is unknown
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
