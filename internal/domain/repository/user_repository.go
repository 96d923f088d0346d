package repository

import (
	"context"

	"myshop/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.InsertResult, error)
	// FindByEmail returns nil without error when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	ListByRole(ctx context.Context, role string) ([]entity.User, error)
	ListByStatus(ctx context.Context, status string) ([]entity.User, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.UpdateResult, error)
}
