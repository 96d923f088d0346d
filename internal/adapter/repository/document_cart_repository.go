package repository

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
)

type documentCartRepository struct {
	coll repository.Collection
}

func NewDocumentCartRepository(store repository.Store) repository.CartRepository {
	return &documentCartRepository{
		coll: store.Collection(repository.CollectionCarts),
	}
}

func (r *documentCartRepository) Create(ctx context.Context, item *entity.CartItem) (*entity.InsertResult, error) {
	result, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentCartRepository) FindItem(ctx context.Context, productID, email string) (*entity.CartItem, error) {
	var item entity.CartItem
	found, err := findOne(ctx, r.coll, repository.Filter{"productId": productID, "email": email}, &item)
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}

func (r *documentCartRepository) List(ctx context.Context) ([]entity.CartItem, error) {
	return findAll[entity.CartItem](ctx, r.coll, repository.Filter{})
}

func (r *documentCartRepository) ListByEmail(ctx context.Context, email string) ([]entity.CartItem, error) {
	return findAll[entity.CartItem](ctx, r.coll, repository.Filter{"email": email})
}

func (r *documentCartRepository) UpdateCount(ctx context.Context, id string, count int) (*entity.UpdateResult, error) {
	result, err := r.coll.UpdateOne(ctx, repository.ByID(id), repository.Fields{"count": count})
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentCartRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := r.coll.DeleteOne(ctx, repository.ByID(id))
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}
