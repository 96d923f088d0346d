package usecase

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
	"myshop/pkg/errors"
	"myshop/pkg/logger"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// AddItem saves a product to a buyer's wishlist once, with the same
// lookup-then-insert behavior as carts.
func (uc *WishlistUseCase) AddItem(ctx context.Context, item *entity.WishlistItem) (*entity.InsertResult, error) {
	existing, err := uc.wishlistRepo.FindItem(ctx, item.ProductID, item.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return entity.Skipped(msgProductAdded), nil
	}

	result, err := uc.wishlistRepo.Create(ctx, item)
	if errors.Is(err, "CONFLICT") {
		return entity.Skipped(msgProductAdded), nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info("added product %s to wishlist of %s", item.ProductID, item.Email)
	return result, nil
}

func (uc *WishlistUseCase) List(ctx context.Context) ([]entity.WishlistItem, error) {
	return uc.wishlistRepo.List(ctx)
}

func (uc *WishlistUseCase) ListByEmail(ctx context.Context, email string) ([]entity.WishlistItem, error) {
	return uc.wishlistRepo.ListByEmail(ctx, email)
}

func (uc *WishlistUseCase) RemoveItem(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := uc.wishlistRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("removed wishlist item %s (deleted %d)", id, result.DeletedCount)
	return result, nil
}
