// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Blog represents a stored blog post. UserID records the creator and is
// immutable after creation; many blogs may reference one user.
type Blog struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Title     string    `gorm:"not null" json:"-"`
	Author    string    `json:"-"`
	URL       string    `gorm:"not null" json:"-"`
	Likes     int       `gorm:"not null;default:0" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// PublicBlog is the external representation of a Blog. The identifier is
// always exposed as "id" and the owner is denormalized to its own public
// projection.
type PublicBlog struct {
	ID     uint       `json:"id"`
	Title  string     `json:"title"`
	Author string     `json:"author"`
	URL    string     `json:"url"`
	Likes  int        `json:"likes"`
	User   PublicUser `json:"user"`
}

// Public returns the external representation of the blog.
func (b *Blog) Public() PublicBlog {
	return PublicBlog{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		User:   b.User.Public(),
	}
}
