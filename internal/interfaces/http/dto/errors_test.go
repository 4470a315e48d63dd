package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeProductNotFound))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeInvalidQuantity))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeInvalidPromoCode))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeEmptyCart))
	assert.Equal(t, http.StatusServiceUnavailable, GetHTTPStatus(ErrCodeStorageUnavailable))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeEmptyCart, "Cart has no items", "req-1")
	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeEmptyCart, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
}
