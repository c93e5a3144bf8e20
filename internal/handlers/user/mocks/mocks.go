package mocks

import (
	"context"

	"shopapi/internal/models"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) GetById(ctx context.Context, userId int) (models.User, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).(models.User), args.Error(1)
}
func (m *Service) GetByUsername(ctx context.Context, username string) (models.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.User), args.Error(1)
}
func (m *Service) Create(ctx context.Context, username, password, confirmPassword string) (models.User, error) {
	args := m.Called(ctx, username, password, confirmPassword)
	return args.Get(0).(models.User), args.Error(1)
}
