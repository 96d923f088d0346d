package repository

import (
	"context"

	"myshop/internal/domain/entity"
)

type WishlistRepository interface {
	Create(ctx context.Context, item *entity.WishlistItem) (*entity.InsertResult, error)
	// FindItem returns nil without error when the user has not saved the product.
	FindItem(ctx context.Context, productID, email string) (*entity.WishlistItem, error)
	List(ctx context.Context) ([]entity.WishlistItem, error)
	ListByEmail(ctx context.Context, email string) ([]entity.WishlistItem, error)
	Delete(ctx context.Context, id string) (*entity.DeleteResult, error)
}
