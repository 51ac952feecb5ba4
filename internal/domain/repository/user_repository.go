// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pos/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the store's unique constraint on email rejects an insert.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository is the credential store consumed by the auth service.
type UserRepository interface {
	// FindByEmail retrieves a user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create inserts the user and fills in the generated id and timestamps.
	// A concurrent insert of the same email fails with ErrDuplicateEmail.
	Create(ctx context.Context, user *entity.User) error
}
