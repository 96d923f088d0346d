package repository

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
)

type documentUserRepository struct {
	coll repository.Collection
}

func NewDocumentUserRepository(store repository.Store) repository.UserRepository {
	return &documentUserRepository{
		coll: store.Collection(repository.CollectionUsers),
	}
}

func (r *documentUserRepository) Create(ctx context.Context, user *entity.User) (*entity.InsertResult, error) {
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *documentUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	found, err := findOne(ctx, r.coll, repository.Filter{"email": email}, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *documentUserRepository) List(ctx context.Context) ([]entity.User, error) {
	return findAll[entity.User](ctx, r.coll, repository.Filter{})
}

func (r *documentUserRepository) ListByRole(ctx context.Context, role string) ([]entity.User, error) {
	return findAll[entity.User](ctx, r.coll, repository.Filter{"role": role})
}

func (r *documentUserRepository) ListByStatus(ctx context.Context, status string) ([]entity.User, error) {
	return findAll[entity.User](ctx, r.coll, repository.Filter{"status": status})
}

func (r *documentUserRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.UpdateResult, error) {
	result, err := r.coll.UpdateOne(ctx, repository.ByID(id), repository.Fields{"status": status})
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}
