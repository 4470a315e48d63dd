package catalog

import "github.com/storefront/backend/internal/domain/catalog"

// ProductResponse is the catalog view served to the storefront
type ProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	UnitPrice     string `json:"unit_price"`
	OriginalPrice string `json:"original_price,omitempty"`
	Savings       string `json:"savings,omitempty"`
	Status        string `json:"status"`
}

func toProductResponse(p *catalog.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		UnitPrice:   p.UnitPriceMoney().StringFixed(2),
		Status:      string(p.Status),
	}
	if p.OriginalPrice != nil {
		resp.OriginalPrice = p.OriginalPrice.StringFixed(2)
	}
	if savings := p.Savings(); savings.IsPositive() {
		resp.Savings = savings.StringFixed(2)
	}
	return resp
}
