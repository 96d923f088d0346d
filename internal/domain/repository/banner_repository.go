package repository

import (
	"context"

	"myshop/internal/domain/entity"
)

type BannerRepository interface {
	Create(ctx context.Context, banner entity.Banner) (*entity.InsertResult, error)
	List(ctx context.Context) ([]entity.Banner, error)
}
