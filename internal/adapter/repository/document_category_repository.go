package repository

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
)

type documentCategoryRepository struct {
	coll repository.Collection
}

func NewDocumentCategoryRepository(store repository.Store) repository.CategoryRepository {
	return &documentCategoryRepository{
		coll: store.Collection(repository.CollectionCategories),
	}
}

func (r *documentCategoryRepository) Create(ctx context.Context, category *entity.Category) (*entity.InsertResult, error) {
	result, err := r.coll.InsertOne(ctx, category)
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var category entity.Category
	found, err := findOne(ctx, r.coll, repository.ByID(id), &category)
	if err != nil || !found {
		return nil, err
	}
	return &category, nil
}

func (r *documentCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	return findAll[entity.Category](ctx, r.coll, repository.Filter{})
}

func (r *documentCategoryRepository) UpdateLabel(ctx context.Context, id, label string) (*entity.UpdateResult, error) {
	result, err := r.coll.UpdateOne(ctx, repository.ByID(id), repository.Fields{"category": label})
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentCategoryRepository) Delete(ctx context.Context, id string) (*entity.DeleteResult, error) {
	result, err := r.coll.DeleteOne(ctx, repository.ByID(id))
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}
