package usecase

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
	"myshop/pkg/errors"
	"myshop/pkg/logger"
)

const msgUserExists = "user already exist"

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type CreateUserInput struct {
	Email  string
	Name   string
	Photo  string
	Role   string
	Status string
}

// Create registers a user unless one with the same email already exists, in
// which case nothing is written and a skipped acknowledgement is returned.
// The lookup and the insert are separate store calls.
func (uc *UserUseCase) Create(ctx context.Context, input CreateUserInput) (*entity.InsertResult, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return entity.Skipped(msgUserExists), nil
	}

	user := &entity.User{
		Email:  input.Email,
		Name:   input.Name,
		Photo:  input.Photo,
		Role:   input.Role,
		Status: input.Status,
	}
	if user.Role == "" {
		user.Role = entity.RoleBuyer
	}
	if user.Role == entity.RoleSeller && user.Status == "" {
		user.Status = entity.StatusPending
	}

	result, err := uc.userRepo.Create(ctx, user)
	if errors.Is(err, "CONFLICT") {
		return entity.Skipped(msgUserExists), nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info("created user %s with role %s", user.Email, user.Role)
	return result, nil
}

func (uc *UserUseCase) List(ctx context.Context) ([]entity.User, error) {
	return uc.userRepo.List(ctx)
}

func (uc *UserUseCase) ListByRole(ctx context.Context, role string) ([]entity.User, error) {
	return uc.userRepo.ListByRole(ctx, role)
}

func (uc *UserUseCase) ListByStatus(ctx context.Context, status string) ([]entity.User, error) {
	return uc.userRepo.ListByStatus(ctx, status)
}

// UpdateSellerStatus sets the status of the user with the given ID. A missing
// user is not an error; the result reports zero matches.
func (uc *UserUseCase) UpdateSellerStatus(ctx context.Context, id, status string) (*entity.UpdateResult, error) {
	result, err := uc.userRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	logger.Info("seller %s status set to %s (matched %d)", id, status, result.MatchedCount)
	return result, nil
}
