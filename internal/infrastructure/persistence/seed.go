package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

type seedProduct struct {
	id            string
	name          string
	description   string
	category      string
	price         string
	originalPrice string // empty when not discounted
}

var seedProducts = []seedProduct{
	{"classic-smash-burger", "Classic Smash Burger", "Double smashed patties with cheddar and house sauce", "burgers", "12.99", "15.99"},
	{"bbq-bacon-beast", "BBQ Bacon Beast", "Smoky BBQ burger stacked with crispy bacon", "burgers", "14.99", ""},
	{"veggie-delight-burger", "Veggie Delight Burger", "Grilled plant-based patty with avocado", "burgers", "11.99", ""},
	{"margherita-classica", "Margherita Classica", "San Marzano tomatoes, fresh mozzarella, basil", "pizza", "16.99", ""},
	{"pepperoni-feast", "Pepperoni Feast", "Loaded with double pepperoni", "pizza", "18.99", "21.99"},
	{"four-cheese-heaven", "Four Cheese Heaven", "Mozzarella, gorgonzola, parmesan, ricotta", "pizza", "19.99", ""},
	{"dragon-roll", "Dragon Roll", "Shrimp tempura topped with avocado and eel", "sushi", "15.99", ""},
	{"rainbow-sashimi", "Rainbow Sashimi", "Chef's selection of fresh sashimi", "sushi", "22.99", ""},
	{"caesar-supreme", "Caesar Supreme", "Romaine, parmesan crisps, garlic croutons", "salads", "10.99", ""},
	{"molten-lava-cake", "Molten Lava Cake", "Warm chocolate cake with flowing center", "desserts", "8.99", "10.99"},
	{"fresh-lemonade", "Fresh Lemonade", "House-squeezed with mint", "beverages", "4.99", ""},
	{"iced-matcha-latte", "Iced Matcha Latte", "Ceremonial grade matcha over oat milk", "beverages", "5.99", ""},
}

type seedPromotion struct {
	code  string
	kind  promotion.Kind
	value string
}

var seedPromotions = []seedPromotion{
	{"SAVE10", promotion.KindPercent, "10"},
	{"SAVE20", promotion.KindPercent, "20"},
	{"FLAT5", promotion.KindFixed, "5"},
	{"FREEDEL", promotion.KindFreeDelivery, "0"},
}

// SeedCatalog loads the reference product catalog. Existing rows with
// the same id are overwritten, so seeding is idempotent.
func SeedCatalog(ctx context.Context, repo catalog.ProductRepository) error {
	for _, sp := range seedProducts {
		price, err := valueobject.NewMoneyUSDFromString(sp.price)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", sp.id, err)
		}
		product, err := catalog.NewProduct(sp.id, sp.name, sp.category, price)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", sp.id, err)
		}
		product.Description = sp.description
		if sp.originalPrice != "" {
			original, err := valueobject.NewMoneyUSDFromString(sp.originalPrice)
			if err != nil {
				return fmt.Errorf("seed product %s: %w", sp.id, err)
			}
			if err := product.SetOriginalPrice(original); err != nil {
				return fmt.Errorf("seed product %s: %w", sp.id, err)
			}
		}
		if err := repo.Save(ctx, product); err != nil {
			return fmt.Errorf("seed product %s: %w", sp.id, err)
		}
	}
	return nil
}

// SeedPromotions loads the reference promotion code table
func SeedPromotions(ctx context.Context, repo promotion.Repository) error {
	for _, sp := range seedPromotions {
		value, err := decimal.NewFromString(sp.value)
		if err != nil {
			return fmt.Errorf("seed promotion %s: %w", sp.code, err)
		}
		promo, err := promotion.NewPromotion(sp.code, sp.kind, value)
		if err != nil {
			return fmt.Errorf("seed promotion %s: %w", sp.code, err)
		}
		if err := repo.Save(ctx, promo); err != nil {
			return fmt.Errorf("seed promotion %s: %w", sp.code, err)
		}
	}
	return nil
}
