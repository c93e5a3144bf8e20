package cartservice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	databaseerrors "shopapi/internal/database"
	"shopapi/internal/models"
	serviceerrors "shopapi/internal/service"
	cartservice "shopapi/internal/service/cart"
	"shopapi/internal/service/cart/mocks"
	"shopapi/pkg/lib/logger/slogdiscard"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService(storage *mocks.Storage) *cartservice.CartService {
	logger := slogdiscard.NewDiscardLogger()
	return cartservice.New(logger, storage)
}

func supermanWithCart(items ...models.Item) models.User {
	cart := models.Cart{Id: 10, Items: items}
	cart.RecomputeTotal()
	return models.User{
		Id:       1,
		Username: "superman",
		Cart:     cart,
	}
}

func book() models.Item {
	return models.Item{Id: 1, Name: "book", Price: decimal.RequireFromString("2.5")}
}

func TestAddToCart_EmptyCart(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	item := book()
	mockStorage.On("GetUserByUsername", mock.Anything, "superman").Return(supermanWithCart(), nil)
	mockStorage.On("GetItem", mock.Anything, 1).Return(item, nil)
	mockStorage.On("SaveCart", mock.Anything, mock.MatchedBy(func(c models.Cart) bool {
		return c.Id == 10 &&
			len(c.Items) == 3 &&
			c.Items[0].Id == 1 &&
			c.Total.Equal(decimal.RequireFromString("7.5"))
	})).Return(nil, nil).Once()

	cart, err := svc.AddToCart(context.Background(), "superman", 1, 3)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 3)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("7.5")))

	mockStorage.AssertExpectations(t)
}

func TestAddToCart_AppendsToExistingEntries(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	item := book()
	other := models.Item{Id: 2, Name: "pencil", Price: decimal.RequireFromString("1.25")}
	mockStorage.On("GetUserByUsername", mock.Anything, "superman").Return(supermanWithCart(other), nil)
	mockStorage.On("GetItem", mock.Anything, 1).Return(item, nil)
	mockStorage.On("SaveCart", mock.Anything, mock.MatchedBy(func(c models.Cart) bool {
		return len(c.Items) == 3 &&
			c.Items[0].Id == 2 &&
			c.Total.Equal(decimal.RequireFromString("6.25"))
	})).Return(nil, nil).Once()

	cart, err := svc.AddToCart(context.Background(), "superman", 1, 2)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 3)

	mockStorage.AssertExpectations(t)
}

func TestAddToCart_UserNotFound(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	mockStorage.On("GetUserByUsername", mock.Anything, "username_not_found").
		Return(models.User{}, databaseerrors.ErrNotFound)

	_, err := svc.AddToCart(context.Background(), "username_not_found", 1, 3)
	assert.ErrorIs(t, err, serviceerrors.ErrNotFound)

	mockStorage.AssertExpectations(t)
	mockStorage.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything)
}

func TestAddToCart_ItemNotFound(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	mockStorage.On("GetUserByUsername", mock.Anything, "superman").Return(supermanWithCart(), nil)
	mockStorage.On("GetItem", mock.Anything, 999).Return(models.Item{}, databaseerrors.ErrNotFound)

	_, err := svc.AddToCart(context.Background(), "superman", 999, 1)
	assert.ErrorIs(t, err, serviceerrors.ErrNotFound)

	mockStorage.AssertExpectations(t)
	mockStorage.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything)
}

func TestRemoveFromCart_RestoresTotal(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	item := book()
	mockStorage.On("GetUserByUsername", mock.Anything, "superman").
		Return(supermanWithCart(item, item, item), nil)
	mockStorage.On("GetItem", mock.Anything, 1).Return(item, nil)
	mockStorage.On("SaveCart", mock.Anything, mock.MatchedBy(func(c models.Cart) bool {
		return len(c.Items) == 0 && c.Total.Equal(decimal.Zero)
	})).Return(nil, nil).Once()

	cart, err := svc.RemoveFromCart(context.Background(), "superman", 1, 3)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.Equal(decimal.Zero))

	mockStorage.AssertExpectations(t)
}

func TestRemoveFromCart_KeepsOtherEntries(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	item := book()
	other := models.Item{Id: 2, Name: "pencil", Price: decimal.RequireFromString("1.25")}
	mockStorage.On("GetUserByUsername", mock.Anything, "superman").
		Return(supermanWithCart(item, other, item), nil)
	mockStorage.On("GetItem", mock.Anything, 1).Return(item, nil)
	mockStorage.On("SaveCart", mock.Anything, mock.MatchedBy(func(c models.Cart) bool {
		return len(c.Items) == 2 &&
			c.Items[0].Id == 1 &&
			c.Items[1].Id == 2 &&
			c.Total.Equal(decimal.RequireFromString("3.75"))
	})).Return(nil, nil).Once()

	cart, err := svc.RemoveFromCart(context.Background(), "superman", 1, 1)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 2)

	mockStorage.AssertExpectations(t)
}

func TestRemoveFromCart_ClampsWhenQuantityExceedsEntries(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	item := book()
	mockStorage.On("GetUserByUsername", mock.Anything, "superman").
		Return(supermanWithCart(item), nil)
	mockStorage.On("GetItem", mock.Anything, 1).Return(item, nil)
	mockStorage.On("SaveCart", mock.Anything, mock.MatchedBy(func(c models.Cart) bool {
		return len(c.Items) == 0 && c.Total.Equal(decimal.Zero)
	})).Return(nil, nil).Once()

	cart, err := svc.RemoveFromCart(context.Background(), "superman", 1, 5)
	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.Equal(decimal.Zero))

	mockStorage.AssertExpectations(t)
}

func TestRemoveFromCart_UserNotFound(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	mockStorage.On("GetUserByUsername", mock.Anything, "username_not_found").
		Return(models.User{}, databaseerrors.ErrNotFound)

	_, err := svc.RemoveFromCart(context.Background(), "username_not_found", 1, 1)
	assert.ErrorIs(t, err, serviceerrors.ErrNotFound)

	mockStorage.AssertExpectations(t)
	mockStorage.AssertNotCalled(t, "SaveCart", mock.Anything, mock.Anything)
}

func TestCartService_ContextCanceled(t *testing.T) {
	t.Run("AddToCart context canceled before call", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		svc := newTestService(mockStorage)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.AddToCart(ctx, "superman", 1, 1)
		assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)

		mockStorage.AssertExpectations(t)
	})

	t.Run("RemoveFromCart context canceled before call", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		svc := newTestService(mockStorage)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.RemoveFromCart(ctx, "superman", 1, 1)
		assert.ErrorIs(t, err, serviceerrors.ErrContextCanceled)

		mockStorage.AssertExpectations(t)
	})
}

func TestCartService_DeadlineExceeded(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*10)
	defer cancel()
	time.Sleep(time.Millisecond * 15)

	_, err := svc.AddToCart(ctx, "superman", 1, 1)
	assert.ErrorIs(t, err, serviceerrors.ErrDeadlineExceeded)

	mockStorage.AssertExpectations(t)
}

func TestAddToCart_StorageFailure(t *testing.T) {
	mockStorage := new(mocks.Storage)
	svc := newTestService(mockStorage)

	item := book()
	mockStorage.On("GetUserByUsername", mock.Anything, "superman").Return(supermanWithCart(), nil)
	mockStorage.On("GetItem", mock.Anything, 1).Return(item, nil)
	mockStorage.On("SaveCart", mock.Anything, mock.Anything).
		Return(nil, errors.New("db error"))

	_, err := svc.AddToCart(context.Background(), "superman", 1, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, serviceerrors.ErrNotFound)

	mockStorage.AssertExpectations(t)
}
