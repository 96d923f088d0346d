package usecase

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
	"myshop/pkg/errors"
	"myshop/pkg/logger"
)

const msgProductAdded = "Product already added"

type CartUseCase struct {
	cartRepo repository.CartRepository
}

func NewCartUseCase(cartRepo repository.CartRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
	}
}

// AddItem puts a product in a buyer's cart once. Two concurrent requests for
// the same pair can both pass the lookup and insert twice unless the store
// enforces a unique index.
func (uc *CartUseCase) AddItem(ctx context.Context, item *entity.CartItem) (*entity.InsertResult, error) {
	existing, err := uc.cartRepo.FindItem(ctx, item.ProductID, item.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return entity.Skipped(msgProductAdded), nil
	}

	if item.Count < 1 {
		item.Count = 1
	}

	result, err := uc.cartRepo.Create(ctx, item)
	if errors.Is(err, "CONFLICT") {
		return entity.Skipped(msgProductAdded), nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info("added product %s to cart of %s", item.ProductID, item.Email)
	return result, nil
}

func (uc *CartUseCase) List(ctx context.Context) ([]entity.CartItem, error) {
	return uc.cartRepo.List(ctx)
}

func (uc *CartUseCase) ListByEmail(ctx context.Context, email string) ([]entity.CartItem, error) {
	return uc.cartRepo.ListByEmail(ctx, email)
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := uc.cartRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("removed cart item %s (deleted %d)", id, result.DeletedCount)
	return result, nil
}

func (uc *CartUseCase) UpdateCount(ctx context.Context, id string, count int) (*entity.UpdateResult, error) {
	result, err := uc.cartRepo.UpdateCount(ctx, id, count)
	if err != nil {
		return nil, err
	}

	logger.Info("cart item %s count set to %d", id, count)
	return result, nil
}
