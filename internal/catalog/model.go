package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	// Prices are decimals end to end to avoid float rounding on totals.
	Price           decimal.Decimal  `json:"price"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice"`
	SKU             string           `json:"sku"`
	Category        string           `json:"category"`
	Images          []string         `json:"images"`
	Material        string           `json:"material"`
	Dimensions      string           `json:"dimensions"`
	Weight          string           `json:"weight"`
	InStock         bool             `json:"inStock"`
	IsFeatured      bool             `json:"isFeatured"`
	IsNew           bool             `json:"isNew"`
	IsBestSeller    bool             `json:"isBestSeller"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// UnitPrice is the price a shopper actually pays for one unit.
func (p Product) UnitPrice() decimal.Decimal {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// NewProduct is the insert payload; the repository assigns id and createdAt.
// swagger:model NewProduct
type NewProduct struct {
	Name            string           `json:"name" example:"Medicine Buddha"`
	Slug            string           `json:"slug" example:"medicine-buddha"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price" example:"289"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice"`
	SKU             string           `json:"sku" example:"MB-001"`
	Category        string           `json:"category" example:"buddhas"`
	Images          []string         `json:"images"`
	Material        string           `json:"material"`
	Dimensions      string           `json:"dimensions"`
	Weight          string           `json:"weight"`
	InStock         bool             `json:"inStock"`
	IsFeatured      bool             `json:"isFeatured"`
	IsNew           bool             `json:"isNew"`
	IsBestSeller    bool             `json:"isBestSeller"`
}

// swagger:model NewCategory
type NewCategory struct {
	Name        string `json:"name" example:"Buddhas"`
	Slug        string `json:"slug" example:"buddhas"`
	Icon        string `json:"icon" example:"fas fa-om"`
	Description string `json:"description"`
}
