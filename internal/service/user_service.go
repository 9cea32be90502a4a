package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-api/internal/domain"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/validator"
)

// UserService handles registration and credential checks.
type UserService struct {
	users     repository.UserRepository
	validator *validator.Validator
	cost      int
	// dummyHash is compared against when the email is unknown so both failure paths cost one bcrypt run.
	dummyHash []byte
	now       func() time.Time
}

// NewUserService creates a new UserService hashing with the given bcrypt cost.
func NewUserService(users repository.UserRepository, v *validator.Validator, cost int) (*UserService, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range", cost)
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &UserService{
		users:     users,
		validator: v,
		cost:      cost,
		dummyHash: dummy,
		now:       time.Now,
	}, nil
}

// Register creates an account. The email is stored lower-cased.
func (s *UserService) Register(ctx context.Context, name, email, password string) (user *domain.User, err error) {
	defer func() { metrics.ObserveAuthEvent("register", resultOf(err)) }()

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if err := s.validator.ValidateRegistration(name, email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC().Truncate(time.Microsecond)
	user = &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.NewValidationError(map[string]string{"email": "email_taken"})
		}
		return nil, err
	}

	logger.FromContext(ctx).InfoContext(ctx, "User registered", slog.String("user_id", user.ID))
	return user, nil
}

// Authenticate returns the account matching email and password, or domain.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (user *domain.User, err error) {
	defer func() { metrics.ObserveAuthEvent("login", resultOf(err)) }()

	email = normalizeEmail(email)
	if err := s.validator.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	user, err = s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.FromContext(ctx).InfoContext(ctx, "Login rejected", slog.String("user_id", user.ID))
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns an account. Malformed ids are domain.ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	return s.users.GetByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
