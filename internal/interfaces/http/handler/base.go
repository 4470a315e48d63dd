package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// SessionHeader identifies the shopper session on every cart request
const SessionHeader = "X-Session-ID"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// getSessionID extracts the shopper session from the request header.
// Cart state is keyed by this value; a request without it has no cart
// to operate on.
func getSessionID(c *gin.Context) (string, bool) {
	return c.GetHeader(SessionHeader), c.GetHeader(SessionHeader) != ""
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response with an explicit status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// MissingSession sends a 400 response for a request without the
// session header
func (h *BaseHandler) MissingSession(c *gin.Context) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeMissingSession, SessionHeader+" header is required")
}

// HandleError converts domain errors to HTTP responses. Unknown error
// types become 500s without leaking internals.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}
