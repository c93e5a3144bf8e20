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
func (m *Storage) CreateOrder(ctx context.Context, order models.UserOrder) (models.UserOrder, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return order, args.Error(1)
	}
	return args.Get(0).(models.UserOrder), args.Error(1)
}
func (m *Storage) GetOrdersByUser(ctx context.Context, userId int) ([]models.UserOrder, error) {
	args := m.Called(ctx, userId)
	orders, _ := args.Get(0).([]models.UserOrder)
	return orders, args.Error(1)
}
