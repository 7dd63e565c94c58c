package content

import (
	"context"
	"errors"
	"testing"
	"time"
)

func seededRepo(t *testing.T) *MemRepo {
	t.Helper()
	repo := NewMemRepo()
	if err := Seed(context.Background(), repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo
}

func TestListBlogPostsPublishedAndSorted(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateBlogPost(ctx, NewBlogPost{
		Title: "Draft", Slug: "draft-post", Published: false,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	posts, err := repo.ListBlogPosts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range posts {
		if !p.Published {
			t.Fatalf("unpublished post %q in list", p.Slug)
		}
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Fatalf("posts not sorted newest first at index %d", i)
		}
	}
}

func TestRecentBlogPostsLimit(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	recent, err := repo.RecentBlogPosts(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("recent len=%d, expected default of 3", len(recent))
	}

	recent, err = repo.RecentBlogPosts(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent len=%d, expected 2", len(recent))
	}
	if recent[0].Slug != "symbolism-buddha-statues" {
		t.Fatalf("newest post=%q, expected symbolism-buddha-statues", recent[0].Slug)
	}
}

func TestGetBlogPostBySlugSkipsUnpublished(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateBlogPost(ctx, NewBlogPost{
		Title: "Draft", Slug: "draft-post", Published: false,
	}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	if _, err := repo.GetBlogPostBySlug(ctx, "draft-post"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for draft, got %v", err)
	}
	if _, err := repo.GetBlogPostBySlug(ctx, "no-such-post"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown slug, got %v", err)
	}
	p, err := repo.GetBlogPostBySlug(ctx, "meet-master-craftsmen")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Author != "Dorje Lama" {
		t.Fatalf("author=%q", p.Author)
	}
}

func TestListTestimonialsPublishedOnly(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateTestimonial(ctx, NewTestimonial{
		Name: "Hidden", Rating: 1, Published: false,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := repo.ListTestimonials(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len=%d, expected the 3 published fixtures", len(list))
	}
	for _, tm := range list {
		if !tm.Published {
			t.Fatalf("unpublished testimonial %q in list", tm.Name)
		}
	}
}

func TestAddSubscriberDuplicate(t *testing.T) {
	repo := NewMemRepo()
	ctx := context.Background()

	first, err := repo.AddSubscriber(ctx, "sarah@example.com")
	if err != nil {
		t.Fatalf("first subscribe: %v", err)
	}
	if first.ID == 0 || first.CreatedAt.IsZero() {
		t.Fatalf("subscriber not fully populated: %+v", first)
	}

	if _, err := repo.AddSubscriber(ctx, "sarah@example.com"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// case-sensitive exact match: different casing is a new subscriber
	if _, err := repo.AddSubscriber(ctx, "Sarah@example.com"); err != nil {
		t.Fatalf("different casing should subscribe: %v", err)
	}
}

func TestAddContactMessage(t *testing.T) {
	repo := NewMemRepo()

	m, err := repo.AddContactMessage(context.Background(), NewContactMessage{
		Name: "Sarah J.", Email: "sarah@example.com", Message: "Do you ship to the US?",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if m.ID != 1 || m.CreatedAt.IsZero() {
		t.Fatalf("message not fully populated: %+v", m)
	}
}
