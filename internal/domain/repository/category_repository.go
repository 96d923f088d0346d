package repository

import (
	"context"

	"myshop/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) (*entity.InsertResult, error)
	// GetByID returns nil without error when the category does not exist.
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	UpdateLabel(ctx context.Context, id, label string) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}
