package repository

import (
	"context"

	"myshop/internal/domain/entity"
)

type CartRepository interface {
	Create(ctx context.Context, item *entity.CartItem) (*entity.InsertResult, error)
	// FindItem returns nil without error when the product is not in the user's cart.
	FindItem(ctx context.Context, productID, email string) (*entity.CartItem, error)
	List(ctx context.Context) ([]entity.CartItem, error)
	ListByEmail(ctx context.Context, email string) ([]entity.CartItem, error)
	UpdateCount(ctx context.Context, id string, count int) (*entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}
