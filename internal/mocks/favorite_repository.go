package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

// MockFavoriteRepository mocks repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, f *entity.Favorite) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFavoriteRepository) List(ctx context.Context) ([]entity.Favorite, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) ListByEmail(ctx context.Context, email string) ([]entity.Favorite, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) GetByID(ctx context.Context, id int64) (*entity.Favorite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
