package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

// MockJobPublisher mocks application.JobPublisher.
type MockJobPublisher struct {
	mock.Mock
}

func (m *MockJobPublisher) PublishJSON(ctx context.Context, body any) error {
	args := m.Called(ctx, body)
	return args.Error(0)
}

// MockContentIndex mocks application.ContentIndex.
type MockContentIndex struct {
	mock.Mock
}

func (m *MockContentIndex) Index(ctx context.Context, c *entity.Content) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContentIndex) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentIndex) Search(ctx context.Context, q string, size int) ([]entity.Content, error) {
	args := m.Called(ctx, q, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Content), args.Error(1)
}

// MockObjectStore mocks the upload middleware's object store.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, objectPath, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, objectPath string) error {
	args := m.Called(ctx, objectPath)
	return args.Error(0)
}

func (m *MockObjectStore) DeleteURL(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
