package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

// MockVisitRepository mocks repository.VisitRepository.
type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) Record(ctx context.Context, wisataID int64, visitors []string, day entity.Day) (*entity.Visit, bool, error) {
	args := m.Called(ctx, wisataID, visitors, day)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.Visit), args.Bool(1), args.Error(2)
}

func (m *MockVisitRepository) ListWithContent(ctx context.Context) ([]entity.VisitWithContent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VisitWithContent), args.Error(1)
}

func (m *MockVisitRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.VisitWithContent, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VisitWithContent), args.Error(1)
}
