package repository

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
)

type documentProductRepository struct {
	coll repository.Collection
}

func NewDocumentProductRepository(store repository.Store) repository.ProductRepository {
	return &documentProductRepository{
		coll: store.Collection(repository.CollectionProducts),
	}
}

func (r *documentProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.InsertResult, error) {
	result, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	found, err := findOne(ctx, r.coll, repository.ByID(id), &product)
	if err != nil || !found {
		return nil, err
	}
	return &product, nil
}

func (r *documentProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	return findAll[entity.Product](ctx, r.coll, repository.Filter{})
}

func (r *documentProductRepository) ListBySeller(ctx context.Context, email string) ([]entity.Product, error) {
	return findAll[entity.Product](ctx, r.coll, repository.Filter{"email": email})
}

// Update overwrites all editable fields at once. Fields left nil in update are
// removed from the stored product.
func (r *documentProductRepository) Update(ctx context.Context, id string, update entity.ProductUpdate) (*entity.UpdateResult, error) {
	fields := repository.Fields{
		entity.FieldProductName:      orUnset(update.ProductName),
		entity.FieldBrand:            orUnset(update.Brand),
		entity.FieldCategory:         orUnset(update.Category),
		entity.FieldStock:            orUnset(update.Stock),
		entity.FieldPrice:            orUnset(update.Price),
		entity.FieldDiscount:         orUnset(update.Discount),
		entity.FieldShortDescription: orUnset(update.ShortDescription),
		entity.FieldDescription:      orUnset(update.Description),
	}

	result, err := r.coll.UpdateOne(ctx, repository.ByID(id), fields)
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentProductRepository) UpdateDiscount(ctx context.Context, id string, discount float64) (*entity.UpdateResult, error) {
	result, err := r.coll.UpdateOne(ctx, repository.ByID(id), repository.Fields{entity.FieldDiscount: discount})
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentProductRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := r.coll.DeleteOne(ctx, repository.ByID(id))
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}
