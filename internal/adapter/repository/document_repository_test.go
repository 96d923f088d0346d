package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
	"myshop/internal/infrastructure/memstore"
	apperrors "myshop/pkg/errors"
)

func float(v float64) *float64 { return &v }
func str(v string) *string     { return &v }
func num(v int) *int           { return &v }

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentUserRepository(memstore.New())

	missing, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	res, err := repo.Create(ctx, &entity.User{Email: "a@x.com", Role: entity.RoleSeller, Status: entity.StatusPending})
	require.NoError(t, err)
	require.NotNil(t, res.InsertedID)
	assert.True(t, res.Acknowledged)

	_, err = repo.Create(ctx, &entity.User{Email: "b@x.com", Role: entity.RoleBuyer})
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *res.InsertedID, found.ID)

	sellers, err := repo.ListByRole(ctx, entity.RoleSeller)
	require.NoError(t, err)
	assert.Len(t, sellers, 1)

	pending, err := repo.ListByStatus(ctx, entity.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	upd, err := repo.UpdateStatus(ctx, found.ID, entity.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	upd, err = repo.UpdateStatus(ctx, found.ID, entity.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(0), upd.ModifiedCount)

	_, err = repo.UpdateStatus(ctx, "not-an-id", entity.StatusActive)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestProductRepositoryUpdateClearsAbsentFields(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentProductRepository(memstore.New())

	res, err := repo.Create(ctx, &entity.Product{
		ProductName: "Lamp",
		Brand:       "Acme",
		Price:       float(10),
		Stock:       num(3),
		Email:       "s@x.com",
	})
	require.NoError(t, err)
	id := *res.InsertedID

	upd, err := repo.Update(ctx, id, entity.ProductUpdate{ProductName: str("Desk lamp"), Price: float(12.5)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)

	product, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Desk lamp", product.ProductName)
	assert.Equal(t, 12.5, *product.Price)
	assert.Empty(t, product.Brand)
	assert.Nil(t, product.Stock)
	assert.Equal(t, "s@x.com", product.Email)

	_, err = repo.UpdateDiscount(ctx, id, 0)
	require.NoError(t, err)
	product, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, product.Discount)
	assert.Equal(t, 0.0, *product.Discount)

	bySeller, err := repo.ListBySeller(ctx, "s@x.com")
	require.NoError(t, err)
	assert.Len(t, bySeller, 1)

	del, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	gone, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)

	del, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount)
}

func TestCartRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDocumentCartRepository(memstore.New())

	_, err := repo.Create(ctx, &entity.CartItem{ProductID: "p1", Email: "a@x.com", Count: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.CartItem{ProductID: "p1", Email: "b@x.com", Count: 2})
	require.NoError(t, err)

	item, err := repo.FindItem(ctx, "p1", "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, item)

	none, err := repo.FindItem(ctx, "p2", "a@x.com")
	require.NoError(t, err)
	assert.Nil(t, none)

	mine, err := repo.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	upd, err := repo.UpdateCount(ctx, item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	item, err = repo.FindItem(ctx, "p1", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 5, item.Count)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = repo.Delete(ctx, item.ID)
	require.NoError(t, err)
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestWishlistRepositoryDuplicate(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(memstore.WithUniqueIndex(repository.CollectionWishlists, "productId", "email"))
	repo := NewDocumentWishlistRepository(store)

	_, err := repo.Create(ctx, &entity.WishlistItem{ProductID: "p1", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &entity.WishlistItem{ProductID: "p1", Email: "a@x.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDuplicate))
	assert.Equal(t, 409, apperrors.StatusOf(err))
}

func TestCategoryAndBannerRepositories(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	categories := NewDocumentCategoryRepository(store)
	banners := NewDocumentBannerRepository(store)

	res, err := categories.Create(ctx, &entity.Category{Category: "Lighting"})
	require.NoError(t, err)

	_, err = categories.UpdateLabel(ctx, *res.InsertedID, "Lamps")
	require.NoError(t, err)

	category, err := categories.GetByID(ctx, *res.InsertedID)
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, "Lamps", category.Category)

	_, err = categories.GetByID(ctx, "xyz")
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	list, err := banners.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.Banner{}, list)

	inserted, err := banners.Create(ctx, entity.Banner{
		"title": "Sale",
		"color": "red",
		"style": map[string]interface{}{"bg": "#fff"},
	})
	require.NoError(t, err)

	list, err = banners.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sale", list[0].Title())
	assert.Equal(t, "red", list[0]["color"])
	assert.Equal(t, entity.Banner{"bg": "#fff"}, list[0]["style"])

	raw, err := json.Marshal(list[0])
	require.NoError(t, err)
	var flat map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.Equal(t, *inserted.InsertedID, flat["_id"])
	assert.Equal(t, "red", flat["color"])
	assert.Equal(t, map[string]interface{}{"bg": "#fff"}, flat["style"])
}

func TestTranslate(t *testing.T) {
	assert.Nil(t, translate(nil))
	assert.True(t, apperrors.Is(translate(repository.ErrInvalidID), "VALIDATION_ERROR"))
	assert.True(t, apperrors.Is(translate(context.DeadlineExceeded), "SERVICE_UNAVAILABLE"))

	conflict := translate(repository.ErrDuplicate)
	assert.True(t, apperrors.Is(conflict, "CONFLICT"))
	assert.True(t, errors.Is(conflict, repository.ErrDuplicate))
	assert.Equal(t, 409, apperrors.StatusOf(conflict))

	err := translate(errors.New("connection reset"))
	assert.True(t, apperrors.Is(err, "STORE_ERROR"))
	assert.Equal(t, 500, apperrors.StatusOf(err))
}
