package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxCategoryNameLength        = 100
	maxCategoryDescriptionLength = 500
)

type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new active category.
func (srv *categoryService) Create(ctx context.Context, input *usecase.CategoryInput) (*usecase.CategoryOutput, error) {
	name, description, err := normalizeCategoryInput(input)
	if err != nil {
		return nil, err
	}

	category := entity.NewCategory(name, description)
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID))

	return usecase.NewCategoryOutput(category), nil
}

// ListActive returns every active category.
func (srv *categoryService) ListActive(ctx context.Context) ([]*usecase.CategoryOutput, error) {
	categories, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active categories")
	}

	outputs := make([]*usecase.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		outputs = append(outputs, usecase.NewCategoryOutput(category))
	}

	return outputs, nil
}

// Get returns a single category regardless of its active flag.
func (srv *categoryService) Get(ctx context.Context, id uuid.UUID) (*usecase.CategoryOutput, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCategoryLookupError(err)
	}

	return usecase.NewCategoryOutput(category), nil
}

// Update replaces the name and description of a category.
func (srv *categoryService) Update(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*usecase.CategoryOutput, error) {
	name, description, err := normalizeCategoryInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := srv.mutate(ctx, id, func(category *entity.Category) {
		category.Name = name
		category.Description = description
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category updated", slog.Any("categoryID", id))

	return usecase.NewCategoryOutput(updated), nil
}

// SetActive activates or deactivates a category.
func (srv *categoryService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*usecase.CategoryOutput, error) {
	updated, err := srv.mutate(ctx, id, func(category *entity.Category) {
		category.IsActive = active
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category active flag changed", slog.Any("categoryID", id), slog.Bool("active", active))

	return usecase.NewCategoryOutput(updated), nil
}

// mutate loads the category under a row lock, applies change and saves it in one transaction.
func (srv *categoryService) mutate(ctx context.Context, id uuid.UUID, change func(*entity.Category)) (*entity.Category, error) {
	var updated *entity.Category

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapCategoryLookupError(err)
		}

		change(category)

		if err := categoryRepo.Update(ctx, category); err != nil {
			return errors.Wrap(err, "failed to save category")
		}
		updated = category

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute category transaction")
	}

	return updated, nil
}

func mapCategoryLookupError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound.WrapMessage("category lookup failed")
	}

	return errors.Wrap(err, "failed to load category")
}

func normalizeCategoryInput(input *usecase.CategoryInput) (name, description string, err error) {
	if input == nil {
		return "", "", domainerrors.ErrValidationFailed.WithDetails("category payload is required")
	}

	name = strings.TrimSpace(input.Name)
	description = strings.TrimSpace(input.Description)

	switch {
	case name == "":
		return "", "", domainerrors.ErrValidationFailed.WithDetails("name is required")
	case len([]rune(name)) > maxCategoryNameLength:
		return "", "", domainerrors.ErrValidationFailed.WithDetails("name must be at most 100 characters")
	case len([]rune(description)) > maxCategoryDescriptionLength:
		return "", "", domainerrors.ErrValidationFailed.WithDetails("description must be at most 500 characters")
	}

	return name, description, nil
}
