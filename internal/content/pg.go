package content

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const postCols = `id, title, slug, content, excerpt, cover_image, author, published, created_at`

func (r *PGRepo) queryPosts(ctx context.Context, sql string, args ...any) ([]BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BlogPost{}
	for rows.Next() {
		var p BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
			&p.CoverImage, &p.Author, &p.Published, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) ListBlogPosts(ctx context.Context) ([]BlogPost, error) {
	return r.queryPosts(ctx, `
		SELECT `+postCols+` FROM blog_posts
		WHERE published ORDER BY created_at DESC
	`)
}

func (r *PGRepo) RecentBlogPosts(ctx context.Context, limit int) ([]BlogPost, error) {
	if limit <= 0 {
		limit = recentPostsDefault
	}
	return r.queryPosts(ctx, `
		SELECT `+postCols+` FROM blog_posts
		WHERE published ORDER BY created_at DESC LIMIT $1
	`, limit)
}

func (r *PGRepo) GetBlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p BlogPost
	err := r.db.QueryRow(ctx, `
		SELECT `+postCols+` FROM blog_posts WHERE slug=$1 AND published
	`, slug).Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
		&p.CoverImage, &p.Author, &p.Published, &p.CreatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *PGRepo) CreateBlogPost(ctx context.Context, in NewBlogPost) (*BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	var p BlogPost
	err := r.db.QueryRow(ctx, `
		INSERT INTO blog_posts (title, slug, content, excerpt, cover_image, author, published, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+postCols+`
	`, in.Title, in.Slug, in.Content, in.Excerpt, in.CoverImage, in.Author, in.Published, createdAt).
		Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
			&p.CoverImage, &p.Author, &p.Published, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, location, avatar, rating, content, published
		FROM testimonials WHERE published ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Testimonial{}
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Location, &t.Avatar, &t.Rating, &t.Content, &t.Published); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateTestimonial(ctx context.Context, in NewTestimonial) (*Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t Testimonial
	err := r.db.QueryRow(ctx, `
		INSERT INTO testimonials (name, location, avatar, rating, content, published)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, name, location, avatar, rating, content, published
	`, in.Name, in.Location, in.Avatar, in.Rating, in.Content, in.Published).
		Scan(&t.ID, &t.Name, &t.Location, &t.Avatar, &t.Rating, &t.Content, &t.Published)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGRepo) AddSubscriber(ctx context.Context, email string) (*Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Subscriber
	err := r.db.QueryRow(ctx, `
		INSERT INTO subscribers (email, created_at)
		VALUES ($1, NOW())
		RETURNING id, email, created_at
	`, email).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		// email carries a UNIQUE constraint
		return nil, ErrDuplicateEmail
	}
	return &s, nil
}

func (r *PGRepo) AddContactMessage(ctx context.Context, in NewContactMessage) (*ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var m ContactMessage
	err := r.db.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, phone, message, created_at)
		VALUES ($1,$2,$3,$4,NOW())
		RETURNING id, name, email, phone, message, created_at
	`, in.Name, in.Email, in.Phone, in.Message).
		Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
