package mocks

import (
	"context"

	"shopapi/internal/models"

	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) GetItem(ctx context.Context, itemId int) (models.Item, error) {
	args := m.Called(ctx, itemId)
	return args.Get(0).(models.Item), args.Error(1)
}
func (m *Storage) GetItemsByName(ctx context.Context, name string) ([]models.Item, error) {
	args := m.Called(ctx, name)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}
func (m *Storage) ListItems(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]models.Item)
	return items, args.Error(1)
}
