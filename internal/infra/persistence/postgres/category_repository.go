package postgres

import (
	"context"
	"time"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(dbresolver.Write), id)
}

// FindByIDForUpdate issues SELECT ... FOR UPDATE; callers must be inside a transaction.
func (repo *categoryRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *categoryRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := db.Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categoryMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list active categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toCategoryDomain(&categoryMs[i]))
	}

	return categories, nil
}

// Update writes every editable column, including a false is_active.
func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	updatedAt := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
			"is_active":   category.IsActive,
			"updated_at":  updatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}
	category.UpdatedAt = updatedAt

	return nil
}

func toCategoryDomain(categoryM *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          categoryM.ID,
		Name:        categoryM.Name,
		Description: categoryM.Description,
		IsActive:    categoryM.IsActive,
		CreatedAt:   categoryM.CreatedAt,
		UpdatedAt:   categoryM.UpdatedAt,
	}
}

func fromCategoryDomain(category *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
