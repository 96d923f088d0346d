package usecase

import (
	"context"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
	"myshop/pkg/logger"
)

type BannerUseCase struct {
	bannerRepo repository.BannerRepository
}

func NewBannerUseCase(bannerRepo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{
		bannerRepo: bannerRepo,
	}
}

func (uc *BannerUseCase) Create(ctx context.Context, banner entity.Banner) (*entity.InsertResult, error) {
	result, err := uc.bannerRepo.Create(ctx, banner)
	if err != nil {
		return nil, err
	}

	logger.Info("created banner %q", banner.Title())
	return result, nil
}

func (uc *BannerUseCase) List(ctx context.Context) ([]entity.Banner, error) {
	return uc.bannerRepo.List(ctx)
}
