package repository

import (
	"context"
	"errors"

	"pos/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when no category matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence operations for product categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// FindByIDForUpdate loads the category and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
}
