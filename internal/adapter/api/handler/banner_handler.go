package handler

import (
	"github.com/labstack/echo/v4"

	"myshop/internal/domain/entity"
	"myshop/internal/usecase"
	"myshop/pkg/errors"
	"myshop/pkg/response"
)

type BannerHandler struct {
	bannerUseCase *usecase.BannerUseCase
}

func NewBannerHandler(bannerUseCase *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{
		bannerUseCase: bannerUseCase,
	}
}

// CreateBanner stores any JSON object as-is. A client-supplied _id is dropped
// so the store assigns one.
func (h *BannerHandler) CreateBanner(c echo.Context) error {
	var banner entity.Banner
	if err := c.Bind(&banner); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if banner == nil {
		banner = entity.Banner{}
	}
	delete(banner, "_id")

	result, err := h.bannerUseCase.Create(c.Request().Context(), banner)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *BannerHandler) ListBanners(c echo.Context) error {
	banners, err := h.bannerUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, banners)
}
