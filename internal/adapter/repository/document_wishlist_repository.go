package repository

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
)

type documentWishlistRepository struct {
	coll repository.Collection
}

func NewDocumentWishlistRepository(store repository.Store) repository.WishlistRepository {
	return &documentWishlistRepository{
		coll: store.Collection(repository.CollectionWishlists),
	}
}

func (r *documentWishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) (*entity.InsertResult, error) {
	result, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentWishlistRepository) FindItem(ctx context.Context, productID, email string) (*entity.WishlistItem, error) {
	var item entity.WishlistItem
	found, err := findOne(ctx, r.coll, repository.Filter{"productId": productID, "email": email}, &item)
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}

func (r *documentWishlistRepository) List(ctx context.Context) ([]entity.WishlistItem, error) {
	return findAll[entity.WishlistItem](ctx, r.coll, repository.Filter{})
}

func (r *documentWishlistRepository) ListByEmail(ctx context.Context, email string) ([]entity.WishlistItem, error) {
	return findAll[entity.WishlistItem](ctx, r.coll, repository.Filter{"email": email})
}

func (r *documentWishlistRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := r.coll.DeleteOne(ctx, repository.ByID(id))
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}
