package dto

// Response represents a standard API response envelope
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithRequestID creates an error response carrying the
// request ID for correlation
func NewErrorResponseWithRequestID(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}
}

// AddItemRequest adds a product to the cart. Quantity is a pointer so
// an omitted value can default to one while an explicit zero still
// reaches the domain validation.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

// SetQuantityRequest replaces a line's quantity. A pointer is used so
// an explicit zero (line removal) binds.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// ApplyPromotionRequest applies a promotion code to the session
type ApplyPromotionRequest struct {
	Code string `json:"code" binding:"required"`
}
