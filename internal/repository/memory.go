package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"blog-api/internal/domain"
)

// MemoryUserRepository implements UserRepository in process memory.
// It backs STORAGE_DRIVER=memory and the service tests.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

// NewMemoryUserRepository creates an empty MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

// Create stores a copy of user.
func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	email := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[email]; taken {
		return domain.ErrEmailTaken
	}
	if _, exists := r.byID[user.ID]; exists {
		return fmt.Errorf("insert user: duplicate id %s", user.ID)
	}
	u := *user
	u.Email = email
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	return nil
}

// GetByID retrieves a user by ID.
func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

// GetByEmail retrieves a user by email, case-insensitively.
func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *MemoryUserRepository) author(id string) *domain.Author {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil
	}
	return domain.AuthorOf(&u)
}

// MemoryPostRepository implements PostRepository in process memory.
// Visibility filtering uses domain.Post.IsVisible directly.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts map[string]domain.Post
	users *MemoryUserRepository
}

// NewMemoryPostRepository creates an empty MemoryPostRepository resolving authors from users.
func NewMemoryPostRepository(users *MemoryUserRepository) *MemoryPostRepository {
	return &MemoryPostRepository{
		posts: make(map[string]domain.Post),
		users: users,
	}
}

// Create stores a copy of post. The owner must exist.
func (r *MemoryPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.users.author(post.UserID) == nil {
		return fmt.Errorf("insert post: unknown user %s", post.UserID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[post.ID]; exists {
		return fmt.Errorf("insert post: duplicate id %s", post.ID)
	}
	p := *post
	p.Author = nil
	r.posts[p.ID] = p
	return nil
}

// GetByID retrieves a post and its author regardless of visibility.
func (r *MemoryPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	p, ok := r.posts[id]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Author = r.users.author(p.UserID)
	return &p, nil
}

// Update writes the mutable fields of post. The owner is never rewritten.
func (r *MemoryPostRepository) Update(ctx context.Context, post *domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.posts[post.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Title = post.Title
	stored.Content = post.Content
	stored.IsDraft = post.IsDraft
	stored.PublishedAt = post.PublishedAt
	stored.UpdatedAt = post.UpdatedAt
	r.posts[post.ID] = stored
	return nil
}

// Delete permanently removes a post.
func (r *MemoryPostRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

// NextScheduledAfter returns the earliest future publish date of a non-draft post.
func (r *MemoryPostRepository) NextScheduledAfter(ctx context.Context, now time.Time) (*time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var next *time.Time
	for _, p := range r.posts {
		if p.IsDraft || p.PublishedAt == nil || !p.PublishedAt.After(now) {
			continue
		}
		if next == nil || p.PublishedAt.Before(*next) {
			at := *p.PublishedAt
			next = &at
		}
	}
	return next, nil
}

// ListVisible returns one page of visible posts ordered by published_at, created_at and id, all descending.
func (r *MemoryPostRepository) ListVisible(ctx context.Context, now time.Time, page, perPage int) ([]domain.Post, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	visible := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if p.IsVisible(now) {
			visible = append(visible, p)
		}
	}
	r.mu.RUnlock()

	sort.Slice(visible, func(i, j int) bool {
		a, b := visible[i], visible[j]
		if !a.PublishedAt.Equal(*b.PublishedAt) {
			return a.PublishedAt.After(*b.PublishedAt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	total := len(visible)
	start, ok := domain.PageOffset(page, perPage)
	if !ok || start >= total {
		return []domain.Post{}, total, nil
	}
	end := total
	if total-start > perPage {
		end = start + perPage
	}

	items := make([]domain.Post, 0, end-start)
	for _, p := range visible[start:end] {
		p.Author = r.users.author(p.UserID)
		items = append(items, p)
	}
	return items, total, nil
}
