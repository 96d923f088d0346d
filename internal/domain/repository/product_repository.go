package repository

import (
	"context"

	"myshop/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (*entity.InsertResult, error)
	// GetByID returns nil without error when the product does not exist.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	ListBySeller(ctx context.Context, email string) ([]entity.Product, error)
	Update(ctx context.Context, id string, update entity.ProductUpdate) (*entity.UpdateResult, error)
	UpdateDiscount(ctx context.Context, id string, discount float64) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}
