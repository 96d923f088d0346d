package usecase

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
	"myshop/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

func (uc *ProductUseCase) Create(ctx context.Context, product *entity.Product) (*entity.InsertResult, error) {
	result, err := uc.productRepo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	logger.Info("seller %s listed product %q", product.Email, product.ProductName)
	return result, nil
}

func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	return uc.productRepo.List(ctx)
}

// Get returns nil when no product has the ID.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListBySeller(ctx context.Context, email string) ([]entity.Product, error) {
	return uc.productRepo.ListBySeller(ctx, email)
}

func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := uc.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("deleted product %s (deleted %d)", id, result.DeletedCount)
	return result, nil
}

// Update replaces every editable field of the product. Fields missing from
// update are cleared; fields outside the editable set are kept.
func (uc *ProductUseCase) Update(ctx context.Context, id string, update entity.ProductUpdate) (*entity.UpdateResult, error) {
	result, err := uc.productRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	logger.Info("updated product %s (matched %d, modified %d)", id, result.MatchedCount, result.ModifiedCount)
	return result, nil
}

func (uc *ProductUseCase) UpdateDiscount(ctx context.Context, id string, discount float64) (*entity.UpdateResult, error) {
	result, err := uc.productRepo.UpdateDiscount(ctx, id, discount)
	if err != nil {
		return nil, err
	}

	logger.Info("product %s discount set to %v", id, discount)
	return result, nil
}
