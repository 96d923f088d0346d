package usecase

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
	"myshop/pkg/errors"
	"myshop/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenService) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// IssueToken signs a token for the submitted identity, embedding the role of
// the user registered under its email.
func (uc *AuthUseCase) IssueToken(ctx context.Context, identity entity.Identity) (string, error) {
	user, err := uc.userRepo.FindByEmail(ctx, identity.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.Unauthorized("Invalid Credentials", nil)
	}

	token, err := uc.tokens.Issue(identity, user.ID, user.Role)
	if err != nil {
		return "", errors.Internal("Failed to generate authentication token", err)
	}

	logger.Info("issued token for %s (role %s)", identity.Email, user.Role)
	return token, nil
}

// Authenticate verifies a bearer token.
func (uc *AuthUseCase) Authenticate(token string) (*entity.Session, error) {
	session, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, errors.Forbidden("forbidden access", err)
	}
	return session, nil
}
