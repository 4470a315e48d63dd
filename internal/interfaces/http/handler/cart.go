package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcart "github.com/storefront/backend/internal/application/cart"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// CartHandler serves cart, promotion, and checkout endpoints
type CartHandler struct {
	BaseHandler
	service *appcart.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service *appcart.Service) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers cart routes on the given group
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.DELETE("", h.Clear)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:productID", h.SetQuantity)
		cart.DELETE("/items/:productID", h.RemoveItem)
		cart.POST("/items/:productID/increment", h.Increment)
		cart.POST("/items/:productID/decrement", h.Decrement)
		cart.POST("/promotion", h.ApplyPromotion)
		cart.DELETE("/promotion", h.RemovePromotion)
		cart.POST("/checkout", h.Checkout)
	}
}

// Get returns the cart with its priced summary
func (h *CartHandler) Get(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddItem adds a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	resp, err := h.service.AddItem(c.Request.Context(), sessionID, req.ProductID, quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetQuantity replaces a line's quantity; zero removes the line
func (h *CartHandler) SetQuantity(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.service.SetQuantity(c.Request.Context(), sessionID, c.Param("productID"), *req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveItem removes a product's line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	resp, err := h.service.RemoveItem(c.Request.Context(), sessionID, c.Param("productID"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Increment raises a line's quantity by one
func (h *CartHandler) Increment(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	resp, err := h.service.Increment(c.Request.Context(), sessionID, c.Param("productID"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Decrement lowers a line's quantity by one
func (h *CartHandler) Decrement(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	resp, err := h.service.Decrement(c.Request.Context(), sessionID, c.Param("productID"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Clear empties the cart and drops any applied promotion
func (h *CartHandler) Clear(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	resp, err := h.service.Clear(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ApplyPromotion validates and applies a promotion code
func (h *CartHandler) ApplyPromotion(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	var req dto.ApplyPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	resp, err := h.service.ApplyPromotion(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemovePromotion clears the applied promotion code
func (h *CartHandler) RemovePromotion(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	resp, err := h.service.RemovePromotion(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Checkout freezes the cart into an order and resets the session
func (h *CartHandler) Checkout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		h.MissingSession(c)
		return
	}

	resp, err := h.service.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("Order placed",
		zap.String("order_number", resp.OrderNumber),
		zap.String("total", resp.Total),
	)
	h.Created(c, resp)
}
