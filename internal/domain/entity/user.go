// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a point-of-sale account able to log in with email and password.
type User struct {
	ID             uuid.UUID // Generated by the store on creation, never changes.
	Email          string    // Unique across all users, case-sensitive as stored.
	Username       string    // Display name, 3 to 100 characters.
	HashedPassword string    // bcrypt output. Never leaves the service layer.
	IsActive       bool      // Inactive users cannot log in.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser builds an active user ready to be persisted.
func NewUser(email, username, hashedPassword string) *User {
	return &User{
		Email:          email,
		Username:       username,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}
}

// CanLogin reports whether the account is allowed to start a session.
func (u *User) CanLogin() bool {
	return u != nil && u.IsActive
}
