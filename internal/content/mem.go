package content

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemRepo struct {
	mu                sync.RWMutex
	posts             []BlogPost
	testimonials      []Testimonial
	subscribers       []Subscriber
	messages          []ContactMessage
	nextPostID        int
	nextTestimonialID int
	nextSubscriberID  int
	nextMessageID     int
}

func NewMemRepo() *MemRepo {
	return &MemRepo{nextPostID: 1, nextTestimonialID: 1, nextSubscriberID: 1, nextMessageID: 1}
}

func (r *MemRepo) publishedPosts() []BlogPost {
	out := []BlogPost{}
	for _, p := range r.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *MemRepo) ListBlogPosts(ctx context.Context) ([]BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.publishedPosts(), nil
}

func (r *MemRepo) RecentBlogPosts(ctx context.Context, limit int) ([]BlogPost, error) {
	if limit <= 0 {
		limit = recentPostsDefault
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := r.publishedPosts()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemRepo) GetBlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.posts {
		if r.posts[i].Slug == slug && r.posts[i].Published {
			cp := r.posts[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemRepo) CreateBlogPost(ctx context.Context, in NewBlogPost) (*BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	p := BlogPost{
		ID:         r.nextPostID,
		Title:      in.Title,
		Slug:       in.Slug,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		CoverImage: in.CoverImage,
		Author:     in.Author,
		Published:  in.Published,
		CreatedAt:  createdAt,
	}
	r.nextPostID++
	r.posts = append(r.posts, p)
	return &p, nil
}

func (r *MemRepo) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Testimonial{}
	for _, t := range r.testimonials {
		if t.Published {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *MemRepo) CreateTestimonial(ctx context.Context, in NewTestimonial) (*Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := Testimonial{
		ID:        r.nextTestimonialID,
		Name:      in.Name,
		Location:  in.Location,
		Avatar:    in.Avatar,
		Rating:    in.Rating,
		Content:   in.Content,
		Published: in.Published,
	}
	r.nextTestimonialID++
	r.testimonials = append(r.testimonials, t)
	return &t, nil
}

func (r *MemRepo) AddSubscriber(ctx context.Context, email string) (*Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subscribers {
		if s.Email == email {
			return nil, ErrDuplicateEmail
		}
	}
	s := Subscriber{
		ID:        r.nextSubscriberID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	r.nextSubscriberID++
	r.subscribers = append(r.subscribers, s)
	return &s, nil
}

func (r *MemRepo) AddContactMessage(ctx context.Context, in NewContactMessage) (*ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := ContactMessage{
		ID:        r.nextMessageID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	r.nextMessageID++
	r.messages = append(r.messages, m)
	return &m, nil
}
