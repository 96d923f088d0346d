package repository

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
)

type documentBannerRepository struct {
	coll repository.Collection
}

func NewDocumentBannerRepository(store repository.Store) repository.BannerRepository {
	return &documentBannerRepository{
		coll: store.Collection(repository.CollectionBanners),
	}
}

func (r *documentBannerRepository) Create(ctx context.Context, banner entity.Banner) (*entity.InsertResult, error) {
	result, err := r.coll.InsertOne(ctx, banner)
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentBannerRepository) List(ctx context.Context) ([]entity.Banner, error) {
	return findAll[entity.Banner](ctx, r.coll, repository.Filter{})
}
