package mocks

import (
	"context"

	"shopapi/internal/models"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) Submit(ctx context.Context, username string) (models.UserOrder, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.UserOrder), args.Error(1)
}
func (m *Service) OrdersFor(ctx context.Context, username string) ([]models.UserOrder, error) {
	args := m.Called(ctx, username)
	orders, _ := args.Get(0).([]models.UserOrder)
	return orders, args.Error(1)
}
