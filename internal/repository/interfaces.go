package repository

import (
	"context"
	"time"

	"blog-api/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a user. A duplicate email answers domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// PostRepository defines methods for post data access.
// Lookups answer domain.ErrNotFound for missing rows and attach the author.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	// ListVisible returns one page of the posts visible at now, newest first,
	// together with the total number of visible posts.
	ListVisible(ctx context.Context, now time.Time, page, perPage int) ([]domain.Post, int, error)
	// NextScheduledAfter returns the earliest publish date after now among posts
	// that are not drafts, or nil when none is scheduled.
	NextScheduledAfter(ctx context.Context, now time.Time) (*time.Time, error)
}
