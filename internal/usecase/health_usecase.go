package usecase

import (
	"context"

	"myshop/pkg/errors"
)

type HealthUseCase struct {
	store StorePinger
}

func NewHealthUseCase(store StorePinger) *HealthUseCase {
	return &HealthUseCase{
		store: store,
	}
}

func (uc *HealthUseCase) CheckStore(ctx context.Context) error {
	if err := uc.store.Ping(ctx); err != nil {
		return errors.ServiceUnavailable("document store unreachable", err)
	}
	return nil
}
