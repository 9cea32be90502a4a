package service

import (
	"context"
	"time"

	"blog-api/internal/domain"
)

// CreatePostInput carries the fields accepted when creating a post.
type CreatePostInput struct {
	Title       string
	Content     string
	IsDraft     bool
	PublishedAt *time.Time
}

// PostServiceInterface defines the interface for post operations.
// Used for dependency injection and mocking in tests.
type PostServiceInterface interface {
	// List returns one page of the posts visible now.
	List(ctx context.Context, page int) (*domain.PostPage, error)
	// Create stores a new post owned by user.
	Create(ctx context.Context, user *domain.User, in CreatePostInput) (*domain.Post, error)
	// Get returns a visible post.
	Get(ctx context.Context, id string) (*domain.Post, error)
	// Update applies patch to a post owned by user.
	Update(ctx context.Context, user *domain.User, id string, patch domain.PostPatch) (*domain.Post, error)
	// Delete removes a post owned by user.
	Delete(ctx context.Context, user *domain.User, id string) error
}

// UserServiceInterface defines the interface for account operations.
// Used for dependency injection and mocking in tests.
type UserServiceInterface interface {
	// Register creates an account.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Authenticate checks credentials and returns the matching account.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// GetByID returns an account.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ListCache stores listing pages. A nil ListCache disables caching.
type ListCache interface {
	Generation(ctx context.Context) (int64, error)
	GetPage(ctx context.Context, gen int64, page int) (*domain.PostPage, error)
	// SetPage stores p under gen. A positive ttl shortens the cache's own expiry.
	SetPage(ctx context.Context, gen int64, p *domain.PostPage, ttl time.Duration) error
	InvalidateAll(ctx context.Context) error
}
