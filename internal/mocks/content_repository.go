package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

// MockContentRepository mocks repository.ContentRepository.
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(ctx context.Context, c *entity.Content) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContentRepository) List(ctx context.Context) ([]entity.Content, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Content), args.Error(1)
}

func (m *MockContentRepository) GetByID(ctx context.Context, id int64) (*entity.Content, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentRepository) GetByName(ctx context.Context, name string) (*entity.Content, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Content), args.Error(1)
}

func (m *MockContentRepository) Update(ctx context.Context, c *entity.Content) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) Search(ctx context.Context, q string, limit int) ([]entity.Content, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Content), args.Error(1)
}
