package mocks

import (
	"context"

	"shopapi/internal/models"

	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.User), args.Error(1)
}
func (m *Storage) GetItem(ctx context.Context, itemId int) (models.Item, error) {
	args := m.Called(ctx, itemId)
	return args.Get(0).(models.Item), args.Error(1)
}
func (m *Storage) SaveCart(ctx context.Context, cart models.Cart) (models.Cart, error) {
	args := m.Called(ctx, cart)
	if args.Get(0) == nil {
		return cart, args.Error(1)
	}
	return args.Get(0).(models.Cart), args.Error(1)
}
