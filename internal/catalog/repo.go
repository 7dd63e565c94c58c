// Package catalog provides the repository interface and implementations for
// products and categories.
package catalog

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateSlug = errors.New("slug already in use")
	ErrInvalidPrice  = errors.New("discounted price exceeds price")
)

// relatedLimit caps how many products RelatedProducts returns.
const relatedLimit = 4

type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	FeaturedProducts(ctx context.Context) ([]Product, error)
	// RelatedProducts returns up to 4 products sharing the category of the
	// product identified by slug, excluding that product. An unknown slug
	// yields an empty list, not an error.
	RelatedProducts(ctx context.Context, slug string) ([]Product, error)
	CreateProduct(ctx context.Context, in NewProduct) (*Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, in NewCategory) (*Category, error)
}
