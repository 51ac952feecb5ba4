package usecase

import (
	"context"
	"time"

	"pos/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CategoryOutput is the outward view of a category.
type CategoryOutput struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryOutput copies category into its outward view.
func NewCategoryOutput(category *entity.Category) *CategoryOutput {
	return &CategoryOutput{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// CategoryUsecase defines catalogue category management.
type CategoryUsecase interface {
	Create(ctx context.Context, input *CategoryInput) (*CategoryOutput, error)
	ListActive(ctx context.Context) ([]*CategoryOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*CategoryOutput, error)
	Update(ctx context.Context, id uuid.UUID, input *CategoryInput) (*CategoryOutput, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*CategoryOutput, error)
}
