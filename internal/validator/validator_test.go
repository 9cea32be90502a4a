package validator

import (
	"errors"
	"strings"
	"testing"
	"time"

	"blog-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestValidatePost(t *testing.T) {
	v := NewValidator()
	now := time.Now()

	tests := []struct {
		name       string
		post       *domain.Post
		wantFields []string
	}{
		{
			name: "valid post",
			post: &domain.Post{
				Title:   "Hello",
				Content: "World",
				UserID:  "123e4567-e89b-12d3-a456-426614174001",
			},
		},
		{
			name: "valid scheduled draft",
			post: &domain.Post{
				Title:       "Hello",
				Content:     "World",
				IsDraft:     true,
				PublishedAt: &now,
				UserID:      "123e4567-e89b-12d3-a456-426614174001",
			},
		},
		{
			name: "missing title",
			post: &domain.Post{
				Content: "World",
				UserID:  "123e4567-e89b-12d3-a456-426614174001",
			},
			wantFields: []string{"title"},
		},
		{
			name: "missing title and content",
			post: &domain.Post{
				UserID: "123e4567-e89b-12d3-a456-426614174001",
			},
			wantFields: []string{"content", "title"},
		},
		{
			name: "title too long",
			post: &domain.Post{
				Title:   strings.Repeat("a", 256),
				Content: "World",
				UserID:  "123e4567-e89b-12d3-a456-426614174001",
			},
			wantFields: []string{"title"},
		},
		{
			name: "missing owner",
			post: &domain.Post{
				Title:   "Hello",
				Content: "World",
			},
			wantFields: []string{"user_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePost(tt.post)
			assertFields(t, err, tt.wantFields)
		})
	}
}

func TestValidatePostPatch(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		patch      *domain.PostPatch
		wantFields []string
	}{
		{
			name:  "empty patch",
			patch: &domain.PostPatch{},
		},
		{
			name:  "title only",
			patch: &domain.PostPatch{Title: strPtr("New Title")},
		},
		{
			name:       "empty title supplied",
			patch:      &domain.PostPatch{Title: strPtr("")},
			wantFields: []string{"title"},
		},
		{
			name:       "empty title and content supplied",
			patch:      &domain.PostPatch{Title: strPtr(""), Content: strPtr("")},
			wantFields: []string{"content", "title"},
		},
		{
			name:       "title too long",
			patch:      &domain.PostPatch{Title: strPtr(strings.Repeat("b", 300))},
			wantFields: []string{"title"},
		},
		{
			name:  "unschedule",
			patch: &domain.PostPatch{PublishedAtSet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePostPatch(tt.patch)
			assertFields(t, err, tt.wantFields)
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		userName   string
		email      string
		password   string
		wantFields []string
	}{
		{"valid", "Alice", "alice@example.com", "secret-pass", nil},
		{"missing name", "", "alice@example.com", "secret-pass", []string{"name"}},
		{"invalid email", "Alice", "not-an-email", "secret-pass", []string{"email"}},
		{"short password", "Alice", "alice@example.com", "short", []string{"password"}},
		{"password too long", "Alice", "alice@example.com", strings.Repeat("p", 73), []string{"password"}},
		{"everything missing", "", "", "", []string{"email", "name", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegistration(tt.userName, tt.email, tt.password)
			assertFields(t, err, tt.wantFields)
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	v := NewValidator()

	assertFields(t, v.ValidateCredentials("alice@example.com", "x"), nil)
	assertFields(t, v.ValidateCredentials("", ""), []string{"email", "password"})
}

func assertFields(t *testing.T, err error, want []string) {
	t.Helper()
	if len(want) == 0 {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	if len(ve.Errors) != len(want) {
		t.Fatalf("got %d field errors (%v), want %v", len(ve.Errors), ve.Errors, want)
	}
	for i, field := range want {
		if ve.Errors[i].Field != field {
			t.Errorf("field[%d] = %q, want %q", i, ve.Errors[i].Field, field)
		}
	}
}
