package mocks

import (
	"context"

	"shopapi/internal/models"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) AddToCart(ctx context.Context, username string, itemId int, quantity int) (models.Cart, error) {
	args := m.Called(ctx, username, itemId, quantity)
	return args.Get(0).(models.Cart), args.Error(1)
}
func (m *Service) RemoveFromCart(ctx context.Context, username string, itemId int, quantity int) (models.Cart, error) {
	args := m.Called(ctx, username, itemId, quantity)
	return args.Get(0).(models.Cart), args.Error(1)
}
