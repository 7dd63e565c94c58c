package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

func price(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func pricePtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

var defaultCategories = []NewCategory{
	{Name: "Buddhas", Slug: "buddhas", Icon: "fas fa-om", Description: "Hand-crafted Buddha statues in various poses and materials"},
	{Name: "Bodhisattvas", Slug: "bodhisattvas", Icon: "fas fa-praying-hands", Description: "Statues of enlightened beings who have delayed nirvana to help others"},
	{Name: "Gurus", Slug: "gurus", Icon: "fas fa-user-alt", Description: "Representations of spiritual teachers and masters"},
	{Name: "Protectors", Slug: "protectors", Icon: "fas fa-shield-alt", Description: "Protective deities and guardians of Buddhist teachings"},
	{Name: "Singing Bowls", Slug: "singing-bowls", Icon: "fas fa-bell", Description: "Traditional meditation and healing instruments"},
	{Name: "Custom Orders", Slug: "custom-orders", Icon: "fas fa-magic", Description: "Personalized Buddhist art made to your specifications"},
}

var defaultProducts = []NewProduct{
	{
		Name:        "Medicine Buddha",
		Slug:        "medicine-buddha",
		Description: "Hand-carved copper statue with turquoise inlay. The Medicine Buddha represents the healing aspect of the Buddha nature and is believed to help overcome physical and mental illness.",
		Price:       price(289),
		SKU:         "MB-001",
		Category:    "buddhas",
		Images: []string{
			"https://images.unsplash.com/photo-1566873535350-a3f5d4a6e43d?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
			"https://images.unsplash.com/photo-1610037944410-3a03697ec8e6?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
			"https://images.unsplash.com/photo-1600077106724-946750eeaf3c?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
		},
		Material:   "Copper with turquoise",
		Dimensions: "Height: 20cm, Width: 15cm, Depth: 12cm",
		Weight:     "1.5kg",
		InStock:    true,
		IsFeatured: true,
		IsNew:      true,
	},
	{
		Name:        "Tibetan Singing Bowl",
		Slug:        "tibetan-singing-bowl",
		Description: "Seven-metal singing bowl with wooden striker. Each bowl is hand-hammered with traditional techniques and tuned to a perfect pitch.",
		Price:       price(119),
		SKU:         "SB-001",
		Category:    "singing-bowls",
		Images: []string{
			"https://images.unsplash.com/photo-1580502088924-fbd827d8b736?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
			"https://images.unsplash.com/photo-1593248514630-6feb79a9d7d5?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
		},
		Material:     "Seven-metal alloy",
		Dimensions:   "Diameter: 12cm, Height: 6cm",
		Weight:       "0.8kg",
		InStock:      true,
		IsFeatured:   true,
		IsBestSeller: true,
	},
	{
		Name:        "Green Tara",
		Slug:        "green-tara",
		Description: "Fully gold-plated brass statue with gemstone inlays. Green Tara represents active compassion and protection from fear and dangers.",
		Price:       price(349),
		SKU:         "GT-001",
		Category:    "bodhisattvas",
		Images: []string{
			"https://images.unsplash.com/photo-1558626056-c993f101d505?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
			"https://images.unsplash.com/photo-1585848705532-c999dcd95557?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
		},
		Material:   "Brass with gold plating",
		Dimensions: "Height: 25cm, Width: 18cm, Depth: 15cm",
		Weight:     "2.2kg",
		InStock:    true,
		IsFeatured: true,
	},
	{
		Name:        "Prayer Wheel",
		Slug:        "prayer-wheel",
		Description: "Hand-carved wooden prayer wheel with embedded mantras. Each rotation of the wheel is said to have the same spiritual benefit as reciting the mantras it contains.",
		Price:       price(89),
		SKU:         "PW-001",
		Category:    "custom-orders",
		Images: []string{
			"https://images.unsplash.com/photo-1557173823-d6f38e36fae5?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
			"https://images.unsplash.com/photo-1550722617-2e52cc9ec18e?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
		},
		Material:   "Wood with brass details",
		Dimensions: "Height: 30cm, Width: 10cm",
		Weight:     "0.6kg",
		InStock:    true,
		IsFeatured: true,
		IsNew:      true,
	},
	{
		Name:            "Avalokiteshvara",
		Slug:            "avalokiteshvara",
		Description:     "Four-armed compassion deity statue. Avalokiteshvara embodies the compassion of all Buddhas and is one of the most widely revered bodhisattvas.",
		Price:           price(399),
		DiscountedPrice: pricePtr(349),
		SKU:             "AV-001",
		Category:        "bodhisattvas",
		Images: []string{
			"https://images.unsplash.com/photo-1599639668273-a295bcfd16ac?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
			"https://images.unsplash.com/photo-1577729571322-0acbfff3e68b?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
		},
		Material:   "Bronze",
		Dimensions: "Height: 30cm, Width: 22cm, Depth: 18cm",
		Weight:     "3.0kg",
		InStock:    true,
	},
	{
		Name:        "Mahakala Mask",
		Slug:        "mahakala-mask",
		Description: "Traditional handcrafted protective deity mask. Mahakala is a wrathful deity and protector of the dharma in Tibetan Buddhism.",
		Price:       price(199),
		SKU:         "MM-001",
		Category:    "protectors",
		Images: []string{
			"https://images.unsplash.com/photo-1566743136192-817d040b8bf9?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
			"https://images.unsplash.com/photo-1509024644558-2f56ce76c490?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&h=500&q=80",
		},
		Material:   "Wood with acrylic paint",
		Dimensions: "Height: 40cm, Width: 30cm, Depth: 15cm",
		Weight:     "1.2kg",
		InStock:    true,
	},
}

// Seed loads the fixture categories and products. Meant for the in-memory
// store at process start.
func Seed(ctx context.Context, repo Repository) error {
	for _, c := range defaultCategories {
		if _, err := repo.CreateCategory(ctx, c); err != nil {
			return err
		}
	}
	for _, p := range defaultProducts {
		if _, err := repo.CreateProduct(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
