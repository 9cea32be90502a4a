package domain

import (
	"math"
	"time"
)

// PostsPerPage is the fixed page size of the public post listing.
const PostsPerPage = 20

// Post represents a blog post entity in the system.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	IsDraft     bool       `json:"is_draft"`
	PublishedAt *time.Time `json:"published_at"`
	UserID      string     `json:"user_id"`
	Author      *Author    `json:"author,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsVisible reports whether the post may be shown to the public at now.
// A post is hidden while it is a draft, while it has no publish date, and
// until its publish date has been reached.
func (p *Post) IsVisible(now time.Time) bool {
	if p.IsDraft {
		return false
	}
	if p.PublishedAt == nil {
		return false
	}
	return !p.PublishedAt.After(now)
}

// PostPatch carries the fields of a partial update. Nil fields are left unchanged.
// PublishedAtSet distinguishes an explicit null (unschedule) from an absent field.
type PostPatch struct {
	Title          *string
	Content        *string
	IsDraft        *bool
	PublishedAt    *time.Time
	PublishedAtSet bool
}

// Apply copies the supplied fields of the patch onto p.
func (pp PostPatch) Apply(p *Post) {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Content != nil {
		p.Content = *pp.Content
	}
	if pp.IsDraft != nil {
		p.IsDraft = *pp.IsDraft
	}
	if pp.PublishedAtSet {
		p.PublishedAt = pp.PublishedAt
	}
}

// PostPage is one page of the public listing.
type PostPage struct {
	Items       []Post `json:"items"`
	CurrentPage int    `json:"current_page"`
	PerPage     int    `json:"per_page"`
	Total       int    `json:"total"`
}

// LastPage returns the number of the last page, at least 1.
func (p PostPage) LastPage() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// NormalizePage clamps a requested page number to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// PageOffset returns the number of rows that precede page. ok is false when
// the offset does not fit in an int, in which case no row can be on page.
func PageOffset(page, perPage int) (offset int, ok bool) {
	page = NormalizePage(page)
	if perPage <= 0 || page-1 > math.MaxInt/perPage {
		return 0, false
	}
	return (page - 1) * perPage, true
}
