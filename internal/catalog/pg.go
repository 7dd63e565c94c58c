package catalog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const productCols = `id, name, slug, description, price::text, discounted_price::text,
	sku, category, images, material, dimensions, weight,
	in_stock, is_featured, is_new, is_best_seller, created_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p          Product
		price      string
		discounted *string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &price, &discounted,
		&p.SKU, &p.Category, &p.Images, &p.Material, &p.Dimensions, &p.Weight,
		&p.InStock, &p.IsFeatured, &p.IsNew, &p.IsBestSeller, &p.CreatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.Price = d
	if discounted != nil {
		d, err := decimal.NewFromString(*discounted)
		if err != nil {
			return nil, err
		}
		p.DiscountedPrice = &d
	}
	return &p, nil
}

func (r *PGRepo) queryProducts(ctx context.Context, sql string, args ...any) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListProducts(ctx context.Context) ([]Product, error) {
	return r.queryProducts(ctx, `SELECT `+productCols+` FROM products ORDER BY id`)
}

func (r *PGRepo) GetProductByID(ctx context.Context, id int) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id=$1`, id))
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *PGRepo) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE slug=$1`, slug))
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *PGRepo) FeaturedProducts(ctx context.Context) ([]Product, error) {
	return r.queryProducts(ctx, `SELECT `+productCols+` FROM products WHERE is_featured ORDER BY id`)
}

func (r *PGRepo) RelatedProducts(ctx context.Context, slug string) ([]Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productCols+` FROM products
		WHERE slug <> $1
		  AND category = (SELECT category FROM products WHERE slug = $1)
		ORDER BY id LIMIT $2
	`, slug, relatedLimit)
}

func (r *PGRepo) CreateProduct(ctx context.Context, in NewProduct) (*Product, error) {
	if in.DiscountedPrice != nil && in.DiscountedPrice.GreaterThan(in.Price) {
		return nil, ErrInvalidPrice
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var discounted *string
	if in.DiscountedPrice != nil {
		s := in.DiscountedPrice.String()
		discounted = &s
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO products (name, slug, description, price, discounted_price, sku, category,
			images, material, dimensions, weight, in_stock, is_featured, is_new, is_best_seller, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,NOW())
		RETURNING `+productCols+`
	`, in.Name, in.Slug, in.Description, in.Price.String(), discounted, in.SKU, in.Category,
		in.Images, in.Material, in.Dimensions, in.Weight, in.InStock, in.IsFeatured, in.IsNew, in.IsBestSeller)
	p, err := scanProduct(row)
	if err != nil {
		// slug carries a UNIQUE constraint
		return nil, ErrDuplicateSlug
	}
	return p, nil
}

func (r *PGRepo) ListCategories(ctx context.Context) ([]Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, name, slug, icon, description FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateCategory(ctx context.Context, in NewCategory) (*Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Category
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name, slug, icon, description)
		VALUES ($1,$2,$3,$4)
		RETURNING id, name, slug, icon, description
	`, in.Name, in.Slug, in.Icon, in.Description).Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.Description)
	if err != nil {
		return nil, ErrDuplicateSlug
	}
	return &c, nil
}
