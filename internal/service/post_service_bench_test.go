package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
	"blog-api/internal/validator"
)

func newBenchService(b *testing.B, n int) *PostService {
	b.Helper()
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	users := repository.NewMemoryUserRepository()
	posts := repository.NewMemoryPostRepository(users)
	owner := &domain.User{ID: uuid.New().String(), Name: "Bench", Email: "bench@example.com", CreatedAt: now, UpdatedAt: now}
	if err := users.Create(ctx, owner); err != nil {
		b.Fatal(err)
	}

	for i := 0; i < n; i++ {
		published := now.Add(-time.Duration(i) * time.Minute)
		// every fourth post is a draft, every fifth is scheduled in the future
		if i%5 == 0 {
			published = now.Add(time.Hour)
		}
		post := &domain.Post{
			ID:          uuid.New().String(),
			Title:       fmt.Sprintf("Post %d", i),
			Content:     "content",
			IsDraft:     i%4 == 0,
			PublishedAt: &published,
			UserID:      owner.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := posts.Create(ctx, post); err != nil {
			b.Fatal(err)
		}
	}

	return NewPostService(posts, validator.NewValidator(), nil, func() time.Time { return now })
}

func BenchmarkList1000Posts(b *testing.B) {
	svc := newBenchService(b, 1000)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.List(ctx, i%10+1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsVisible(b *testing.B) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	published := now.Add(-time.Hour)
	post := &domain.Post{PublishedAt: &published}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = post.IsVisible(now)
	}
}
