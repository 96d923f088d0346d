package usecase

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
	"myshop/pkg/logger"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

func (uc *CategoryUseCase) Create(ctx context.Context, label string) (*entity.InsertResult, error) {
	result, err := uc.categoryRepo.Create(ctx, &entity.Category{Category: label})
	if err != nil {
		return nil, err
	}

	logger.Info("created category %q", label)
	return result, nil
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

// Get returns nil when no category has the ID.
func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

func (uc *CategoryUseCase) Rename(ctx context.Context, id, label string) (*entity.UpdateResult, error) {
	result, err := uc.categoryRepo.UpdateLabel(ctx, id, label)
	if err != nil {
		return nil, err
	}

	logger.Info("category %s renamed to %q", id, label)
	return result, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := uc.categoryRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("deleted category %s (deleted %d)", id, result.DeletedCount)
	return result, nil
}
