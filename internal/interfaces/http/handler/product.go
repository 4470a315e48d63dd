package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/storefront/backend/internal/application/catalog"
)

// ProductHandler serves read-only catalog endpoints
type ProductHandler struct {
	BaseHandler
	service *appcatalog.Service
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *appcatalog.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers catalog routes on the given group
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)
	}
}

// List returns the catalog, optionally filtered by ?category=
func (h *ProductHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Get returns one product by id
func (h *ProductHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
