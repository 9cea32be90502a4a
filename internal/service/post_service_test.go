package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-api/internal/domain"
	"blog-api/internal/mocks"
	"blog-api/internal/repository"
	"blog-api/internal/service"
	"blog-api/internal/validator"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type postFixture struct {
	svc   *service.PostService
	users *repository.MemoryUserRepository
	posts *repository.MemoryPostRepository
	now   *time.Time
	alice *domain.User
	bob   *domain.User
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	users := repository.NewMemoryUserRepository()
	posts := repository.NewMemoryPostRepository(users)
	now := fixedNow
	f := &postFixture{
		users: users,
		posts: posts,
		now:   &now,
	}
	f.svc = service.NewPostService(posts, validator.NewValidator(), nil, func() time.Time { return *f.now })
	f.alice = f.addUser(t, "Alice")
	f.bob = f.addUser(t, "Bob")
	return f
}

func (f *postFixture) addUser(t *testing.T, name string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		CreatedAt:    fixedNow,
		UpdatedAt:    fixedNow,
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *postFixture) create(t *testing.T, user *domain.User, title string, draft bool, publishedAt *time.Time) *domain.Post {
	t.Helper()
	post, err := f.svc.Create(context.Background(), user, service.CreatePostInput{
		Title:       title,
		Content:     title + " content",
		IsDraft:     draft,
		PublishedAt: publishedAt,
	})
	require.NoError(t, err)
	return post
}

func at(t time.Time) *time.Time {
	return &t
}

func strPtr(s string) *string {
	return &s
}

func assertValidationFields(t *testing.T, err error, want map[string]string) {
	t.Helper()
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	assert.Equal(t, want, ve.Fields())
}

func TestPostService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("only published posts are listed, newest first", func(t *testing.T) {
		f := newPostFixture(t)
		f.create(t, f.alice, "Draft", true, at(fixedNow.Add(-time.Hour)))
		f.create(t, f.alice, "Future", false, at(fixedNow.Add(24*time.Hour)))
		oldest := f.create(t, f.alice, "First", false, at(fixedNow.Add(-72*time.Hour)))
		middle := f.create(t, f.bob, "Second", false, at(fixedNow.Add(-48*time.Hour)))
		newest := f.create(t, f.alice, "Third", false, at(fixedNow.Add(-24*time.Hour)))

		page, err := f.svc.List(ctx, 1)
		require.NoError(t, err)

		require.Len(t, page.Items, 3)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, domain.PostsPerPage, page.PerPage)
		assert.Equal(t, 1, page.LastPage())
		assert.Equal(t, newest.ID, page.Items[0].ID)
		assert.Equal(t, middle.ID, page.Items[1].ID)
		assert.Equal(t, oldest.ID, page.Items[2].ID)
		require.NotNil(t, page.Items[1].Author)
		assert.Equal(t, "Bob", page.Items[1].Author.Name)
	})

	t.Run("unscheduled posts are not listed", func(t *testing.T) {
		f := newPostFixture(t)
		f.create(t, f.alice, "Unscheduled", false, nil)

		page, err := f.svc.List(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Zero(t, page.Total)
	})

	t.Run("scheduled post appears once due", func(t *testing.T) {
		f := newPostFixture(t)
		f.create(t, f.alice, "Soon", false, at(fixedNow.Add(time.Minute)))

		page, err := f.svc.List(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, page.Items)

		*f.now = fixedNow.Add(time.Minute)
		page, err = f.svc.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
	})

	t.Run("pages hold twenty posts", func(t *testing.T) {
		f := newPostFixture(t)
		for i := 0; i < 45; i++ {
			f.create(t, f.alice, fmt.Sprintf("Post %d", i), false, at(fixedNow.Add(-time.Duration(i+1)*time.Minute)))
		}

		first, err := f.svc.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, first.Items, 20)
		assert.Equal(t, 45, first.Total)
		assert.Equal(t, 3, first.LastPage())

		third, err := f.svc.List(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, third.Items, 5)
		assert.Equal(t, "Post 40", third.Items[0].Title)
	})

	t.Run("page below one reads the first page", func(t *testing.T) {
		f := newPostFixture(t)
		f.create(t, f.alice, "Only", false, at(fixedNow.Add(-time.Minute)))

		for _, p := range []int{0, -3} {
			page, err := f.svc.List(ctx, p)
			require.NoError(t, err)
			assert.Equal(t, 1, page.CurrentPage)
			assert.Len(t, page.Items, 1)
		}
	})
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous callers cannot create", func(t *testing.T) {
		f := newPostFixture(t)
		_, err := f.svc.Create(ctx, nil, service.CreatePostInput{Title: "T", Content: "C"})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("empty title and content name both fields", func(t *testing.T) {
		f := newPostFixture(t)
		_, err := f.svc.Create(ctx, f.alice, service.CreatePostInput{Title: "", Content: "   "})
		assertValidationFields(t, err, map[string]string{
			"title":   "title_required",
			"content": "content_required",
		})

		page, err := f.svc.List(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, page.Total, "nothing is persisted")
	})

	t.Run("title longer than 255 characters", func(t *testing.T) {
		f := newPostFixture(t)
		long := make([]rune, 256)
		for i := range long {
			long[i] = 'é'
		}
		_, err := f.svc.Create(ctx, f.alice, service.CreatePostInput{Title: string(long), Content: "C"})
		assertValidationFields(t, err, map[string]string{"title": "title_too_long"})
	})

	t.Run("creates an owned post with defaults", func(t *testing.T) {
		f := newPostFixture(t)
		post, err := f.svc.Create(ctx, f.alice, service.CreatePostInput{Title: "  Hello  ", Content: "World"})
		require.NoError(t, err)

		_, parseErr := uuid.Parse(post.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, "Hello", post.Title)
		assert.False(t, post.IsDraft)
		assert.Nil(t, post.PublishedAt)
		assert.Equal(t, f.alice.ID, post.UserID)
		require.NotNil(t, post.Author)
		assert.Equal(t, "Alice", post.Author.Name)
		assert.True(t, fixedNow.Equal(post.CreatedAt))

		stored, err := f.posts.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hello", stored.Title)
	})

	t.Run("publish time is stored in UTC", func(t *testing.T) {
		f := newPostFixture(t)
		zone := time.FixedZone("UTC+3", 3*3600)
		local := time.Date(2024, 5, 1, 15, 0, 0, 0, zone)
		post := f.create(t, f.alice, "Zoned", false, &local)

		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, time.UTC, post.PublishedAt.Location())
		assert.True(t, local.Equal(*post.PublishedAt))
	})
}

func TestPostService_Get(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	visible := f.create(t, f.alice, "Visible", false, at(fixedNow.Add(-time.Hour)))
	draft := f.create(t, f.alice, "Draft", true, at(fixedNow.Add(-time.Hour)))
	future := f.create(t, f.alice, "Future", false, at(fixedNow.Add(time.Hour)))
	unscheduled := f.create(t, f.alice, "Unscheduled", false, nil)

	t.Run("visible post", func(t *testing.T) {
		post, err := f.svc.Get(ctx, visible.ID)
		require.NoError(t, err)
		assert.Equal(t, "Visible", post.Title)
		require.NotNil(t, post.Author)
		assert.Equal(t, f.alice.ID, post.Author.ID)
	})

	hidden := map[string]string{
		"draft":       draft.ID,
		"future":      future.ID,
		"unscheduled": unscheduled.ID,
		"missing":     uuid.New().String(),
		"malformed":   "not-a-uuid",
	}
	for name, id := range hidden {
		t.Run(name+" is not found", func(t *testing.T) {
			_, err := f.svc.Get(ctx, id)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("owner renames and non-owner is forbidden", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Old Title", false, at(fixedNow.Add(-time.Hour)))

		updated, err := f.svc.Update(ctx, f.alice, post.ID, domain.PostPatch{Title: strPtr("New Title")})
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "Old Title content", updated.Content, "absent fields are unchanged")

		got, err := f.svc.Get(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Title", got.Title)

		_, err = f.svc.Update(ctx, f.bob, post.ID, domain.PostPatch{Title: strPtr("Hijacked")})
		assert.ErrorIs(t, err, domain.ErrForbidden)

		got, err = f.svc.Get(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Title", got.Title)
	})

	t.Run("owner edits own draft", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Draft", true, nil)

		updated, err := f.svc.Update(ctx, f.alice, post.ID, domain.PostPatch{Content: strPtr("Better")})
		require.NoError(t, err)
		assert.Equal(t, "Better", updated.Content)
		assert.True(t, updated.IsDraft)
	})

	t.Run("non-owner is forbidden on a hidden post", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Draft", true, nil)

		_, err := f.svc.Update(ctx, f.bob, post.ID, domain.PostPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("forbidden is reported before validation", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Mine", false, nil)

		_, err := f.svc.Update(ctx, f.bob, post.ID, domain.PostPatch{Title: strPtr("")})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("publish and unschedule", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Later", true, nil)

		published := fixedNow.Add(-time.Minute)
		_, err := f.svc.Update(ctx, f.alice, post.ID, domain.PostPatch{
			IsDraft:        func() *bool { b := false; return &b }(),
			PublishedAt:    &published,
			PublishedAtSet: true,
		})
		require.NoError(t, err)

		_, err = f.svc.Get(ctx, post.ID)
		require.NoError(t, err, "post is visible after publishing")

		updated, err := f.svc.Update(ctx, f.alice, post.ID, domain.PostPatch{PublishedAtSet: true})
		require.NoError(t, err)
		assert.Nil(t, updated.PublishedAt)

		_, err = f.svc.Get(ctx, post.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("present fields must be valid", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Valid", false, nil)

		_, err := f.svc.Update(ctx, f.alice, post.ID, domain.PostPatch{Title: strPtr(" "), Content: strPtr("")})
		assertValidationFields(t, err, map[string]string{
			"title":   "title_required",
			"content": "content_required",
		})

		stored, err := f.posts.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Valid", stored.Title)
	})

	t.Run("missing post", func(t *testing.T) {
		f := newPostFixture(t)
		_, err := f.svc.Update(ctx, f.alice, uuid.New().String(), domain.PostPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = f.svc.Update(ctx, f.alice, "123", domain.PostPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Mine", false, nil)
		_, err := f.svc.Update(ctx, nil, post.ID, domain.PostPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("updated_at moves with the clock", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Mine", false, nil)

		*f.now = fixedNow.Add(time.Hour)
		updated, err := f.svc.Update(ctx, f.alice, post.ID, domain.PostPatch{Title: strPtr("Changed")})
		require.NoError(t, err)
		assert.True(t, fixedNow.Add(time.Hour).Equal(updated.UpdatedAt))
		assert.True(t, fixedNow.Equal(updated.CreatedAt))
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("non-owner is forbidden and owner deletes", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Doomed", false, at(fixedNow.Add(-time.Hour)))

		assert.ErrorIs(t, f.svc.Delete(ctx, f.bob, post.ID), domain.ErrForbidden)
		_, err := f.svc.Get(ctx, post.ID)
		require.NoError(t, err, "post survives a forbidden delete")

		require.NoError(t, f.svc.Delete(ctx, f.alice, post.ID))
		_, err = f.svc.Get(ctx, post.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		assert.ErrorIs(t, f.svc.Delete(ctx, f.alice, post.ID), domain.ErrNotFound)
	})

	t.Run("owner deletes a draft", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Draft", true, nil)
		require.NoError(t, f.svc.Delete(ctx, f.alice, post.ID))
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f := newPostFixture(t)
		post := f.create(t, f.alice, "Mine", false, nil)
		assert.ErrorIs(t, f.svc.Delete(ctx, nil, post.ID), domain.ErrUnauthenticated)
	})
}

func TestPostService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("connection reset")
	user := &domain.User{ID: uuid.New().String(), Name: "Alice"}

	t.Run("list", func(t *testing.T) {
		repo := mocks.NewMockPostRepository(t)
		repo.EXPECT().ListVisible(mock.Anything, fixedNow, 1, domain.PostsPerPage).Return(nil, 0, storeErr)

		svc := service.NewPostService(repo, validator.NewValidator(), nil, func() time.Time { return fixedNow })
		_, err := svc.List(ctx, 1)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("create", func(t *testing.T) {
		repo := mocks.NewMockPostRepository(t)
		repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Post")).Return(storeErr)

		svc := service.NewPostService(repo, validator.NewValidator(), nil, func() time.Time { return fixedNow })
		_, err := svc.Create(ctx, user, service.CreatePostInput{Title: "T", Content: "C"})
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("validation stops before the store", func(t *testing.T) {
		repo := mocks.NewMockPostRepository(t)

		svc := service.NewPostService(repo, validator.NewValidator(), nil, func() time.Time { return fixedNow })
		_, err := svc.Create(ctx, user, service.CreatePostInput{})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("update", func(t *testing.T) {
		id := uuid.New().String()
		repo := mocks.NewMockPostRepository(t)
		repo.EXPECT().GetByID(mock.Anything, id).Return(&domain.Post{ID: id, Title: "T", Content: "C", UserID: user.ID}, nil)
		repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Post")).Return(storeErr)

		svc := service.NewPostService(repo, validator.NewValidator(), nil, func() time.Time { return fixedNow })
		_, err := svc.Update(ctx, user, id, domain.PostPatch{Title: strPtr("New")})
		assert.ErrorIs(t, err, storeErr)
	})
}
