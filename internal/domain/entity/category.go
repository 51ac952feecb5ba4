package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalogue.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory builds an active category ready to be persisted.
func NewCategory(name, description string) *Category {
	return &Category{
		Name:        name,
		Description: description,
		IsActive:    true,
	}
}
