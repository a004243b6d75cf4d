// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account in the bloglist application.
// PasswordHash is settable only at creation and is never serialized; every
// API response goes through PublicUser instead.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Username     string    `gorm:"uniqueIndex;not null" json:"-"`
	Name         string    `json:"-"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	Blogs        []Blog    `gorm:"foreignKey:UserID" json:"-"`
}

// PublicUser is the external representation of a User. Handlers must only
// ever serialize this projection, so the password hash cannot leak through
// a forgotten struct tag.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Public returns the external representation of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}
}
