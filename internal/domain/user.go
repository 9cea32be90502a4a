package domain

import "time"

// User represents an account that can own posts.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Author is the public identity of a post owner.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthorOf returns the public identity of u.
func AuthorOf(u *User) *Author {
	if u == nil {
		return nil
	}
	return &Author{ID: u.ID, Name: u.Name}
}

// CanModify reports whether user may update post. Only the owner may.
func CanModify(user *User, post *Post) bool {
	return isOwner(user, post)
}

// CanDelete reports whether user may delete post. Only the owner may.
func CanDelete(user *User, post *Post) bool {
	return isOwner(user, post)
}

func isOwner(user *User, post *Post) bool {
	if user == nil || post == nil || user.ID == "" {
		return false
	}
	return user.ID == post.UserID
}
