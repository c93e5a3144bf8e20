package mocks

import (
	"context"

	"shopapi/internal/models"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) List(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}
func (m *Service) GetById(ctx context.Context, itemId int) (models.Item, error) {
	args := m.Called(ctx, itemId)
	return args.Get(0).(models.Item), args.Error(1)
}
func (m *Service) GetByName(ctx context.Context, name string) ([]models.Item, error) {
	args := m.Called(ctx, name)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}
