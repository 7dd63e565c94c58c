package catalog

import (
	"context"
	"sync"
	"time"
)

// MemRepo keeps products and categories in insertion-ordered slices. Lookups
// are linear scans, which is fine at fixture scale.
type MemRepo struct {
	mu             sync.RWMutex
	products       []Product
	categories     []Category
	nextProductID  int
	nextCategoryID int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{nextProductID: 1, nextCategoryID: 1}
}

func (r *MemRepo) ListProducts(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Product(nil), r.products...), nil
}

func (r *MemRepo) GetProductByID(ctx context.Context, id int) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			cp := r.products[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].Slug == slug {
			cp := r.products[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) FeaturedProducts(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Product{}
	for _, p := range r.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemRepo) RelatedProducts(ctx context.Context, slug string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ref *Product
	for i := range r.products {
		if r.products[i].Slug == slug {
			ref = &r.products[i]
			break
		}
	}
	out := []Product{}
	if ref == nil {
		return out, nil
	}
	for _, p := range r.products {
		if p.Slug != slug && p.Category == ref.Category {
			out = append(out, p)
			if len(out) == relatedLimit {
				break
			}
		}
	}
	return out, nil
}

func (r *MemRepo) CreateProduct(ctx context.Context, in NewProduct) (*Product, error) {
	if in.DiscountedPrice != nil && in.DiscountedPrice.GreaterThan(in.Price) {
		return nil, ErrInvalidPrice
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Slug == in.Slug {
			return nil, ErrDuplicateSlug
		}
	}
	p := Product{
		ID:              r.nextProductID,
		Name:            in.Name,
		Slug:            in.Slug,
		Description:     in.Description,
		Price:           in.Price,
		DiscountedPrice: in.DiscountedPrice,
		SKU:             in.SKU,
		Category:        in.Category,
		Images:          append([]string(nil), in.Images...),
		Material:        in.Material,
		Dimensions:      in.Dimensions,
		Weight:          in.Weight,
		InStock:         in.InStock,
		IsFeatured:      in.IsFeatured,
		IsNew:           in.IsNew,
		IsBestSeller:    in.IsBestSeller,
		CreatedAt:       time.Now().UTC(),
	}
	r.nextProductID++
	r.products = append(r.products, p)
	return &p, nil
}

func (r *MemRepo) ListCategories(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Category(nil), r.categories...), nil
}

func (r *MemRepo) CreateCategory(ctx context.Context, in NewCategory) (*Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Slug == in.Slug {
			return nil, ErrDuplicateSlug
		}
	}
	c := Category{
		ID:          r.nextCategoryID,
		Name:        in.Name,
		Slug:        in.Slug,
		Icon:        in.Icon,
		Description: in.Description,
	}
	r.nextCategoryID++
	r.categories = append(r.categories, c)
	return &c, nil
}
