package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func seededRepo(t *testing.T) *MemRepo {
	t.Helper()
	repo := NewMemRepo()
	if err := Seed(context.Background(), repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo
}

func TestGetProductBySlug(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	all, err := repo.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range all {
		got, err := repo.GetProductBySlug(ctx, p.Slug)
		if err != nil {
			t.Fatalf("slug %q: %v", p.Slug, err)
		}
		if got.Slug != p.Slug {
			t.Fatalf("slug %q: got %q", p.Slug, got.Slug)
		}
	}

	if _, err := repo.GetProductBySlug(ctx, "no-such-product"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFeaturedProducts(t *testing.T) {
	repo := seededRepo(t)

	featured, err := repo.FeaturedProducts(context.Background())
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(featured) == 0 {
		t.Fatal("fixtures should contain featured products")
	}
	for _, p := range featured {
		if !p.IsFeatured {
			t.Fatalf("product %q is not featured", p.Slug)
		}
	}
}

func TestRelatedProducts(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	// unknown slug: empty list, no error
	related, err := repo.RelatedProducts(ctx, "no-such-product")
	if err != nil {
		t.Fatalf("unknown slug: %v", err)
	}
	if len(related) != 0 {
		t.Fatalf("unknown slug: expected empty list, got %d items", len(related))
	}

	// green-tara shares the bodhisattvas category with avalokiteshvara
	related, err = repo.RelatedProducts(ctx, "green-tara")
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) == 0 || len(related) > 4 {
		t.Fatalf("related len=%d, expected 1..4", len(related))
	}
	for _, p := range related {
		if p.Slug == "green-tara" {
			t.Fatal("related list must not contain the product itself")
		}
		if p.Category != "bodhisattvas" {
			t.Fatalf("related product %q has category %q", p.Slug, p.Category)
		}
	}
}

func TestRelatedProductsCap(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()
	for _, slug := range []string{"a", "b", "c", "d", "e", "f"} {
		if _, err := repo.CreateProduct(ctx, NewProduct{
			Name: slug, Slug: slug, Price: decimal.NewFromInt(10), Category: "bowls",
		}); err != nil {
			t.Fatalf("create %q: %v", slug, err)
		}
	}

	related, err := repo.RelatedProducts(ctx, "a")
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 4 {
		t.Fatalf("related len=%d, expected cap of 4", len(related))
	}
}

func TestCreateProductValidation(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	// duplicate slug
	if _, err := repo.CreateProduct(ctx, NewProduct{
		Name: "Copy", Slug: "medicine-buddha", Price: decimal.NewFromInt(10),
	}); !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}

	// discounted price above price
	bad := decimal.NewFromInt(500)
	if _, err := repo.CreateProduct(ctx, NewProduct{
		Name: "Bad", Slug: "bad-discount", Price: decimal.NewFromInt(100), DiscountedPrice: &bad,
	}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestUnitPrice(t *testing.T) {
	repo := seededRepo(t)

	p, err := repo.GetProductBySlug(context.Background(), "avalokiteshvara")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !p.UnitPrice().Equal(decimal.NewFromInt(349)) {
		t.Fatalf("unit price=%s, expected discounted 349", p.UnitPrice())
	}

	p, err = repo.GetProductBySlug(context.Background(), "green-tara")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !p.UnitPrice().Equal(decimal.NewFromInt(349)) {
		t.Fatalf("unit price=%s, expected list price 349", p.UnitPrice())
	}
}
