package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-api/internal/domain"
)

// visiblePredicate is the SQL rendering of domain.Post.IsVisible; $1 is now.
const visiblePredicate = `p.is_draft = FALSE AND p.published_at IS NOT NULL AND p.published_at <= $1`

const selectPostWithAuthor = `
	SELECT p.id, p.title, p.content, p.is_draft, p.published_at, p.user_id,
		p.created_at, p.updated_at, u.id, u.name
	FROM posts p
	JOIN users u ON u.id = p.user_id`

// PostgresPostRepository implements PostRepository using PostgreSQL.
type PostgresPostRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPostRepository creates a new PostgresPostRepository.
func NewPostgresPostRepository(pool *pgxpool.Pool) *PostgresPostRepository {
	return &PostgresPostRepository{pool: pool}
}

// Create inserts a new post.
func (r *PostgresPostRepository) Create(ctx context.Context, post *domain.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, content, is_draft, published_at, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, post.ID, post.Title, post.Content, post.IsDraft, post.PublishedAt, post.UserID, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID retrieves a post and its author regardless of visibility.
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, selectPostWithAuthor+` WHERE p.id = $1`, id)
	post, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

// Update writes the mutable fields of post. The owner is never rewritten.
func (r *PostgresPostRepository) Update(ctx context.Context, post *domain.Post) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $2, content = $3, is_draft = $4, published_at = $5, updated_at = $6
		WHERE id = $1
	`, post.ID, post.Title, post.Content, post.IsDraft, post.PublishedAt, post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete permanently removes a post.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListVisible returns one page of visible posts ordered by published_at, created_at and id, all descending.
func (r *PostgresPostRepository) ListVisible(ctx context.Context, now time.Time, page, perPage int) ([]domain.Post, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM posts p WHERE `+visiblePredicate, now,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count visible posts: %w", err)
	}

	posts := make([]domain.Post, 0, perPage)
	offset, ok := domain.PageOffset(page, perPage)
	if !ok || total == 0 || offset >= total {
		return posts, total, nil
	}

	rows, err := r.pool.Query(ctx, selectPostWithAuthor+`
		WHERE `+visiblePredicate+`
		ORDER BY p.published_at DESC, p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`, now, perPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list visible posts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, total, nil
}

// NextScheduledAfter returns the earliest publish date after now among non-draft posts.
func (r *PostgresPostRepository) NextScheduledAfter(ctx context.Context, now time.Time) (*time.Time, error) {
	var next *time.Time
	if err := r.pool.QueryRow(ctx,
		`SELECT MIN(published_at) FROM posts WHERE is_draft = FALSE AND published_at > $1`, now,
	).Scan(&next); err != nil {
		return nil, fmt.Errorf("next scheduled post: %w", err)
	}
	return next, nil
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	var author domain.Author
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.IsDraft, &p.PublishedAt, &p.UserID,
		&p.CreatedAt, &p.UpdatedAt, &author.ID, &author.Name); err != nil {
		return nil, err
	}
	p.Author = &author
	return &p, nil
}
