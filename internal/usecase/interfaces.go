package usecase

import (
	"context"

	"myshop/internal/domain/entity"
)

type TokenService interface {
	Issue(identity entity.Identity, userID, role string) (string, error)
	Verify(token string) (*entity.Session, error)
}

// StorePinger reports whether the document store answers.
type StorePinger interface {
	Ping(ctx context.Context) error
}
