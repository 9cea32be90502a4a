package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"blog-api/internal/domain"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/validator"
)

const (
	listCacheName = "post_list"
	// listFillTimeout bounds a shared listing fill once it no longer follows any one caller.
	listFillTimeout = 10 * time.Second
)

// PostService implements the post use cases: visibility on reads, ownership on writes.
type PostService struct {
	posts     repository.PostRepository
	validator *validator.Validator
	cache     ListCache
	group     singleflight.Group
	now       func() time.Time
}

// NewPostService creates a new PostService. cache may be nil; now defaults to time.Now.
func NewPostService(posts repository.PostRepository, v *validator.Validator, cache ListCache, now func() time.Time) *PostService {
	if now == nil {
		now = time.Now
	}
	return &PostService{
		posts:     posts,
		validator: v,
		cache:     cache,
		now:       now,
	}
}

// List returns one page of the posts visible now. Pages below 1 are read as page 1.
func (s *PostService) List(ctx context.Context, page int) (result *domain.PostPage, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObservePostOperation("list", resultOf(err), timer.Seconds()) }()

	page = domain.NormalizePage(page)
	if s.cache == nil {
		return s.loadPage(ctx, page, s.now())
	}

	log := logger.FromContext(ctx)
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		metrics.CacheError(listCacheName)
		log.WarnContext(ctx, "Listing cache unavailable", slog.String("error", err.Error()))
		return s.loadPage(ctx, page, s.now())
	}

	cached, err := s.cache.GetPage(ctx, gen, page)
	switch {
	case err != nil:
		metrics.CacheError(listCacheName)
		log.WarnContext(ctx, "Listing cache read failed", slog.Int("page", page), slog.String("error", err.Error()))
	case cached != nil:
		metrics.CacheHit(listCacheName)
		return cached, nil
	default:
		metrics.CacheMiss(listCacheName)
	}

	key := strconv.FormatInt(gen, 10) + ":" + strconv.Itoa(page)
	v, err, _ := s.group.Do(key, func() (any, error) {
		// the fill serves every caller waiting on key, not just this one
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), listFillTimeout)
		defer cancel()

		now := s.now()
		p, err := s.loadPage(fillCtx, page, now)
		if err != nil {
			return nil, err
		}
		ttl, ok := s.pageTTL(fillCtx, now)
		if !ok {
			return p, nil
		}
		if err := s.cache.SetPage(fillCtx, gen, p, ttl); err != nil {
			log.WarnContext(ctx, "Listing cache write failed", slog.Int("page", page), slog.String("error", err.Error()))
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.PostPage), nil
}

// pageTTL returns how long a page loaded at now stays correct: until the next
// scheduled post becomes visible. A zero ttl means no post is scheduled. ok is
// false when the page must not be cached.
func (s *PostService) pageTTL(ctx context.Context, now time.Time) (ttl time.Duration, ok bool) {
	next, err := s.posts.NextScheduledAfter(ctx, now)
	if err != nil {
		metrics.CacheError(listCacheName)
		logger.FromContext(ctx).WarnContext(ctx, "Listing schedule lookup failed", slog.String("error", err.Error()))
		return 0, false
	}
	if next == nil {
		return 0, true
	}
	ttl = next.Sub(now)
	if ttl < time.Millisecond {
		return 0, false
	}
	return ttl, true
}

func (s *PostService) loadPage(ctx context.Context, page int, now time.Time) (*domain.PostPage, error) {
	items, total, err := s.posts.ListVisible(ctx, now, page, domain.PostsPerPage)
	if err != nil {
		return nil, err
	}
	return &domain.PostPage{
		Items:       items,
		CurrentPage: page,
		PerPage:     domain.PostsPerPage,
		Total:       total,
	}, nil
}

// Create stores a new post owned by user.
func (s *PostService) Create(ctx context.Context, user *domain.User, in CreatePostInput) (post *domain.Post, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObservePostOperation("create", resultOf(err), timer.Seconds()) }()

	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	now := s.timestamp()
	post = &domain.Post{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(in.Title),
		Content:     strings.TrimSpace(in.Content),
		IsDraft:     in.IsDraft,
		PublishedAt: normalizeTime(in.PublishedAt),
		UserID:      user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.validator.ValidatePost(post); err != nil {
		return nil, err
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	post.Author = domain.AuthorOf(user)
	s.invalidate(ctx)

	logger.FromContext(ctx).InfoContext(ctx, "Post created",
		slog.String("post_id", post.ID),
		slog.String("user_id", user.ID),
		slog.Bool("is_draft", post.IsDraft),
	)
	return post, nil
}

// Get returns a post if it is visible now. Hidden and missing posts are both ErrNotFound.
func (s *PostService) Get(ctx context.Context, id string) (post *domain.Post, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObservePostOperation("get", resultOf(err), timer.Seconds()) }()

	post, err = s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.IsVisible(s.now()) {
		return nil, domain.ErrNotFound
	}
	return post, nil
}

// Update applies patch to a post owned by user. Drafts and scheduled posts are reachable.
func (s *PostService) Update(ctx context.Context, user *domain.User, id string, patch domain.PostPatch) (post *domain.Post, err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObservePostOperation("update", resultOf(err), timer.Seconds()) }()

	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	post, err = s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanModify(user, post) {
		return nil, domain.ErrForbidden
	}

	patch.Title = trimPtr(patch.Title)
	patch.Content = trimPtr(patch.Content)
	patch.PublishedAt = normalizeTime(patch.PublishedAt)
	if err := s.validator.ValidatePostPatch(&patch); err != nil {
		return nil, err
	}

	patch.Apply(post)
	post.UpdatedAt = s.timestamp()
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	logger.FromContext(ctx).InfoContext(ctx, "Post updated",
		slog.String("post_id", post.ID),
		slog.String("user_id", user.ID),
	)
	return post, nil
}

// Delete permanently removes a post owned by user.
func (s *PostService) Delete(ctx context.Context, user *domain.User, id string) (err error) {
	timer := metrics.NewTimer()
	defer func() { metrics.ObservePostOperation("delete", resultOf(err), timer.Seconds()) }()

	if user == nil {
		return domain.ErrUnauthenticated
	}
	post, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDelete(user, post) {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, post.ID); err != nil {
		return err
	}
	s.invalidate(ctx)

	logger.FromContext(ctx).InfoContext(ctx, "Post deleted",
		slog.String("post_id", post.ID),
		slog.String("user_id", user.ID),
	)
	return nil
}

// find loads a post without the visibility filter. Malformed ids are ErrNotFound.
func (s *PostService) find(ctx context.Context, id string) (*domain.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		metrics.CacheError(listCacheName)
		logger.FromContext(ctx).ErrorContext(ctx, "Listing cache invalidation failed", slog.String("error", err.Error()))
	}
}

// timestamp returns now in UTC at the precision Postgres stores.
func (s *PostService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func normalizeTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := t.UTC().Truncate(time.Microsecond)
	return &n
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// resultOf maps an operation error to a metrics result label.
func resultOf(err error) string {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrForbidden):
		return metrics.ResultForbidden
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		return metrics.ResultUnauthorized
	case errors.As(err, &ve), errors.Is(err, domain.ErrEmailTaken):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}
