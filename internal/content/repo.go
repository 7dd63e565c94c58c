// Package content covers the storefront's editorial side: blog posts,
// testimonials, newsletter subscribers and contact messages.
package content

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("blog post not found")
	ErrDuplicateEmail = errors.New("email already subscribed")
)

const recentPostsDefault = 3

type Repository interface {
	// ListBlogPosts returns published posts only, newest first.
	ListBlogPosts(ctx context.Context) ([]BlogPost, error)
	// RecentBlogPosts truncates the published list to limit; limit <= 0
	// falls back to the default of 3.
	RecentBlogPosts(ctx context.Context, limit int) ([]BlogPost, error)
	// GetBlogPostBySlug never returns an unpublished post.
	GetBlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error)
	CreateBlogPost(ctx context.Context, in NewBlogPost) (*BlogPost, error)

	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	CreateTestimonial(ctx context.Context, in NewTestimonial) (*Testimonial, error)

	// AddSubscriber rejects an exact-match duplicate email with
	// ErrDuplicateEmail.
	AddSubscriber(ctx context.Context, email string) (*Subscriber, error)

	AddContactMessage(ctx context.Context, in NewContactMessage) (*ContactMessage, error)
}
