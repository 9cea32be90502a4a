package handler

import "blog-api/internal/domain"

// AuthorResponse is the public identity of a post owner.
type AuthorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostResponse represents a post in the API response.
type PostResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	IsDraft     bool            `json:"is_draft"`
	PublishedAt *string         `json:"published_at"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	Author      *AuthorResponse `json:"author"`
}

// PageMeta describes the position of a listing page.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// PostListResponse is the listing envelope.
type PostListResponse struct {
	Items []PostResponse `json:"items"`
	Meta  PageMeta       `json:"meta"`
}

// UserResponse represents an account in the API response.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// SessionResponse is returned by login and register.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// toPostResponse converts a domain.Post to a PostResponse.
func toPostResponse(p *domain.Post) PostResponse {
	response := PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		IsDraft:   p.IsDraft,
		CreatedAt: p.CreatedAt.UTC().Format(TimeFormat),
		UpdatedAt: p.UpdatedAt.UTC().Format(TimeFormat),
	}
	if p.PublishedAt != nil {
		publishedAt := p.PublishedAt.UTC().Format(TimeFormat)
		response.PublishedAt = &publishedAt
	}
	if p.Author != nil {
		response.Author = &AuthorResponse{ID: p.Author.ID, Name: p.Author.Name}
	}
	return response
}

// toPostListResponse converts a listing page to its envelope.
func toPostListResponse(page *domain.PostPage) PostListResponse {
	items := make([]PostResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toPostResponse(&page.Items[i]))
	}
	return PostListResponse{
		Items: items,
		Meta: PageMeta{
			CurrentPage: page.CurrentPage,
			PerPage:     page.PerPage,
			Total:       page.Total,
			LastPage:    page.LastPage(),
		},
	}
}

// toUserResponse converts a domain.User to a UserResponse.
func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(TimeFormat),
	}
}
