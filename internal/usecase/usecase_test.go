package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "myshop/internal/adapter/repository"
	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
	"myshop/internal/infrastructure/memstore"
	apperrors "myshop/pkg/errors"
)

type stubTokens struct {
	issued []string
	err    error
}

func (s *stubTokens) Issue(identity entity.Identity, userID, role string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.issued = append(s.issued, identity.Email)
	return "token-for-" + identity.Email + "-" + role, nil
}

func (s *stubTokens) Verify(token string) (*entity.Session, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &entity.Session{Email: "a@x.com", Role: entity.RoleAdmin}, nil
}

type failingPinger struct{ err error }

func (p failingPinger) Ping(ctx context.Context) error { return p.err }

func TestUserCreateIsIdempotentByEmail(t *testing.T) {
	ctx := context.Background()
	users := adapterrepo.NewDocumentUserRepository(memstore.New())
	uc := NewUserUseCase(users)

	first, err := uc.Create(ctx, CreateUserInput{Email: "a@x.com", Role: entity.RoleSeller})
	require.NoError(t, err)
	require.NotNil(t, first.InsertedID)

	second, err := uc.Create(ctx, CreateUserInput{Email: "a@x.com", Role: entity.RoleBuyer})
	require.NoError(t, err)
	assert.Nil(t, second.InsertedID)
	assert.Equal(t, "user already exist", second.Message)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.RoleSeller, all[0].Role)
	assert.Equal(t, entity.StatusPending, all[0].Status)
}

func TestUserCreateDefaultsRole(t *testing.T) {
	ctx := context.Background()
	uc := NewUserUseCase(adapterrepo.NewDocumentUserRepository(memstore.New()))

	_, err := uc.Create(ctx, CreateUserInput{Email: "b@x.com"})
	require.NoError(t, err)

	buyers, err := uc.ListByRole(ctx, entity.RoleBuyer)
	require.NoError(t, err)
	require.Len(t, buyers, 1)
	assert.Empty(t, buyers[0].Status)

	sellers, err := uc.ListByRole(ctx, entity.RoleSeller)
	require.NoError(t, err)
	assert.Empty(t, sellers)
}

func TestUpdateSellerStatus(t *testing.T) {
	ctx := context.Background()
	uc := NewUserUseCase(adapterrepo.NewDocumentUserRepository(memstore.New()))

	res, err := uc.Create(ctx, CreateUserInput{Email: "s@x.com", Role: entity.RoleSeller})
	require.NoError(t, err)

	pending, err := uc.ListByStatus(ctx, entity.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	upd, err := uc.UpdateSellerStatus(ctx, *res.InsertedID, entity.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	pending, err = uc.ListByStatus(ctx, entity.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, pending)

	upd, err = uc.UpdateSellerStatus(ctx, "64b000000000000000000009", entity.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, int64(0), upd.MatchedCount)
}

func TestIssueToken(t *testing.T) {
	ctx := context.Background()
	users := adapterrepo.NewDocumentUserRepository(memstore.New())
	tokens := &stubTokens{}
	_, err := NewUserUseCase(users).Create(ctx, CreateUserInput{Email: "a@x.com", Role: entity.RoleSeller})
	require.NoError(t, err)

	uc := NewAuthUseCase(users, tokens)

	token, err := uc.IssueToken(ctx, entity.Identity{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-a@x.com-seller", token)

	_, err = uc.IssueToken(ctx, entity.Identity{Email: "nobody@x.com"})
	require.Error(t, err)
	assert.Equal(t, 401, apperrors.StatusOf(err))
	assert.Contains(t, err.Error(), "Invalid Credentials")

	tokens.err = errors.New("boom")
	_, err = uc.IssueToken(ctx, entity.Identity{Email: "a@x.com"})
	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
}

func TestAuthenticate(t *testing.T) {
	uc := NewAuthUseCase(adapterrepo.NewDocumentUserRepository(memstore.New()), &stubTokens{})

	session, err := uc.Authenticate("good")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, session.Role)

	_, err = uc.Authenticate("bad")
	assert.Equal(t, 403, apperrors.StatusOf(err))
}

func TestProductDiscountLeavesOtherFields(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUseCase(adapterrepo.NewDocumentProductRepository(memstore.New()))

	price, stock := 20.0, 4
	res, err := uc.Create(ctx, &entity.Product{
		ProductName: "Chair",
		Brand:       "Acme",
		Category:    "Furniture",
		Stock:       &stock,
		Price:       &price,
		Description: "Oak",
		Email:       "s@x.com",
		Images:      []string{"a.png"},
	})
	require.NoError(t, err)
	id := *res.InsertedID

	before, err := uc.Get(ctx, id)
	require.NoError(t, err)

	_, err = uc.UpdateDiscount(ctx, id, 15)
	require.NoError(t, err)

	after, err := uc.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, after.Discount)
	assert.Equal(t, 15.0, *after.Discount)

	after.Discount = before.Discount
	assert.Equal(t, before, after)
}

func TestProductGetMissing(t *testing.T) {
	uc := NewProductUseCase(adapterrepo.NewDocumentProductRepository(memstore.New()))

	product, err := uc.Get(context.Background(), "64b000000000000000000001")
	require.NoError(t, err)
	assert.Nil(t, product)

	_, err = uc.Get(context.Background(), "bogus")
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestCartAddItemGuardsDuplicates(t *testing.T) {
	ctx := context.Background()
	uc := NewCartUseCase(adapterrepo.NewDocumentCartRepository(memstore.New()))

	first, err := uc.AddItem(ctx, &entity.CartItem{ProductID: "p1", Email: "a@x.com"})
	require.NoError(t, err)
	require.NotNil(t, first.InsertedID)

	second, err := uc.AddItem(ctx, &entity.CartItem{ProductID: "p1", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Nil(t, second.InsertedID)
	assert.Equal(t, "Product already added", second.Message)

	items, err := uc.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Count)

	_, err = uc.UpdateCount(ctx, items[0].ID, 3)
	require.NoError(t, err)
	items, err = uc.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 3, items[0].Count)

	del, err := uc.RemoveItem(ctx, items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
}

func TestConcurrentAddsWithUniqueIndexInsertOnce(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(memstore.WithUniqueIndex(repository.CollectionWishlists, "productId", "email"))
	uc := NewWishlistUseCase(adapterrepo.NewDocumentWishlistRepository(store))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddItem(ctx, &entity.WishlistItem{ProductID: "p1", Email: "a@x.com"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := NewCategoryUseCase(adapterrepo.NewDocumentCategoryRepository(memstore.New()))

	res, err := uc.Create(ctx, "Electronics")
	require.NoError(t, err)
	id := *res.InsertedID

	_, err = uc.Rename(ctx, id, "Gadgets")
	require.NoError(t, err)

	category, err := uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Gadgets", category.Category)

	del, err := uc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	category, err = uc.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestBannerCreateAndList(t *testing.T) {
	ctx := context.Background()
	uc := NewBannerUseCase(adapterrepo.NewDocumentBannerRepository(memstore.New()))

	_, err := uc.Create(ctx, entity.Banner{"title": "Summer sale", "priority": 2})
	require.NoError(t, err)

	banners, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, banners, 1)
	assert.Equal(t, "Summer sale", banners[0].Title())
	assert.EqualValues(t, 2, banners[0]["priority"])
}

func TestCheckStore(t *testing.T) {
	assert.NoError(t, NewHealthUseCase(memstore.New()).CheckStore(context.Background()))

	err := NewHealthUseCase(failingPinger{err: errors.New("down")}).CheckStore(context.Background())
	assert.Equal(t, 503, apperrors.StatusOf(err))
}
