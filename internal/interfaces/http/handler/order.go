package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcart "github.com/storefront/backend/internal/application/cart"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// OrderHandler serves read access to placed orders
type OrderHandler struct {
	BaseHandler
	service *appcart.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *appcart.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers order routes on the given group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
	}
}

// List returns the session's placed orders
func (h *OrderHandler) List(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	resp, err := h.service.Orders(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get returns one placed order by id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, "Invalid order ID")
		return
	}

	resp, err := h.service.Order(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
