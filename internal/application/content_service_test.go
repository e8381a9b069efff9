package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/domain/entity"
	repo "github.com/oksasatya/wisata-api/internal/domain/repository"
	"github.com/oksasatya/wisata-api/internal/mocks"
	"github.com/oksasatya/wisata-api/pkg/helpers"
)

func strp(s string) *string { return &s }

func TestContentService_Create(t *testing.T) {
	t.Run("indexes created content", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		idx := new(mocks.MockContentIndex)
		svc := application.NewContentService(r, idx, helpers.NewNopLogger())
		c := &entity.Content{Name: " Borobudur ", Lat: -7.6, Lon: 110.2}

		r.On("Create", mock.Anything, c).Return(nil).Once()
		idx.On("Index", mock.Anything, c).Return(nil).Once()

		require.NoError(t, svc.Create(context.Background(), c))
		assert.Equal(t, "Borobudur", c.Name)
		r.AssertExpectations(t)
		idx.AssertExpectations(t)
	})

	t.Run("second content with same name conflicts", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		svc := application.NewContentService(r, nil, helpers.NewNopLogger())
		r.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		r.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate).Once()

		require.NoError(t, svc.Create(context.Background(), &entity.Content{Name: "Prambanan"}))
		err := svc.Create(context.Background(), &entity.Content{Name: "Prambanan"})
		assert.ErrorIs(t, err, application.ErrConflict)
	})

	t.Run("coordinates out of range", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		svc := application.NewContentService(r, nil, helpers.NewNopLogger())
		err := svc.Create(context.Background(), &entity.Content{Name: "X", Lat: 91})
		assert.ErrorIs(t, err, application.ErrValidation)
		r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("index failure is not fatal", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		idx := new(mocks.MockContentIndex)
		svc := application.NewContentService(r, idx, helpers.NewNopLogger())
		r.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		idx.On("Index", mock.Anything, mock.Anything).Return(errors.New("es down")).Once()

		assert.NoError(t, svc.Create(context.Background(), &entity.Content{Name: "Y"}))
	})
}

func TestContentService_Update(t *testing.T) {
	t.Run("keeps image when none supplied", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		svc := application.NewContentService(r, nil, helpers.NewNopLogger())
		existing := &entity.Content{ID: 1, Name: "Old", ImageURL: strp("https://img/old.png"), Country: "ID"}
		r.On("GetByID", mock.Anything, int64(1)).Return(existing, nil).Once()
		r.On("Update", mock.Anything, existing).Return(nil).Once()

		got, err := svc.Update(context.Background(), 1, entity.ContentPatch{Name: strp("New")})
		require.NoError(t, err)
		assert.Equal(t, "New", got.Name)
		assert.Equal(t, "https://img/old.png", *got.ImageURL)
		assert.Equal(t, "ID", got.Country)
	})

	t.Run("replaced image is removed from the store", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		store := new(mocks.MockObjectStore)
		svc := application.NewContentService(r, nil, helpers.NewNopLogger())
		svc.Images = store
		existing := &entity.Content{ID: 1, Name: "Old", ImageURL: strp("https://img/old.png")}
		r.On("GetByID", mock.Anything, int64(1)).Return(existing, nil).Once()
		r.On("Update", mock.Anything, existing).Return(nil).Once()
		store.On("DeleteURL", mock.Anything, "https://img/old.png").Return(errors.New("gone")).Once()

		got, err := svc.Update(context.Background(), 1, entity.ContentPatch{ImageURL: strp("https://img/new.png")})
		require.NoError(t, err)
		assert.Equal(t, "https://img/new.png", *got.ImageURL)
		store.AssertExpectations(t)
	})

	t.Run("failed update keeps the old image", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		store := new(mocks.MockObjectStore)
		svc := application.NewContentService(r, nil, helpers.NewNopLogger())
		svc.Images = store
		r.On("GetByID", mock.Anything, int64(1)).Return(&entity.Content{ID: 1, Name: "A", ImageURL: strp("https://img/old.png")}, nil).Once()
		r.On("Update", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

		_, err := svc.Update(context.Background(), 1, entity.ContentPatch{ImageURL: strp("https://img/new.png")})
		require.Error(t, err)
		store.AssertNotCalled(t, "DeleteURL", mock.Anything, mock.Anything)
	})

	t.Run("missing content", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		svc := application.NewContentService(r, nil, helpers.NewNopLogger())
		r.On("GetByID", mock.Anything, int64(9)).Return(nil, repo.ErrNotFound).Once()

		_, err := svc.Update(context.Background(), 9, entity.ContentPatch{})
		assert.ErrorIs(t, err, application.ErrNotFound)
	})

	t.Run("rename onto an existing name", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		svc := application.NewContentService(r, nil, helpers.NewNopLogger())
		r.On("GetByID", mock.Anything, int64(1)).Return(&entity.Content{ID: 1, Name: "A"}, nil).Once()
		r.On("Update", mock.Anything, mock.Anything).Return(repo.ErrDuplicate).Once()

		_, err := svc.Update(context.Background(), 1, entity.ContentPatch{Name: strp("B")})
		assert.ErrorIs(t, err, application.ErrConflict)
	})
}

func TestContentService_Delete(t *testing.T) {
	r := new(mocks.MockContentRepository)
	idx := new(mocks.MockContentIndex)
	svc := application.NewContentService(r, idx, helpers.NewNopLogger())
	r.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	r.On("Delete", mock.Anything, int64(2)).Return(repo.ErrNotFound).Once()
	idx.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), application.ErrNotFound)
	idx.AssertExpectations(t)
}

func TestContentService_Search(t *testing.T) {
	t.Run("falls back to database when index fails", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		idx := new(mocks.MockContentIndex)
		svc := application.NewContentService(r, idx, helpers.NewNopLogger())
		want := []entity.Content{{ID: 1, Name: "Kuta"}}
		idx.On("Search", mock.Anything, "kuta", 20).Return(nil, errors.New("es down")).Once()
		r.On("Search", mock.Anything, "kuta", 20).Return(want, nil).Once()

		got, err := svc.Search(context.Background(), " kuta ", 0)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("uses index when available", func(t *testing.T) {
		r := new(mocks.MockContentRepository)
		idx := new(mocks.MockContentIndex)
		svc := application.NewContentService(r, idx, helpers.NewNopLogger())
		idx.On("Search", mock.Anything, "bali", 5).Return([]entity.Content{{ID: 2}}, nil).Once()

		got, err := svc.Search(context.Background(), "bali", 5)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		r.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty query", func(t *testing.T) {
		svc := application.NewContentService(new(mocks.MockContentRepository), nil, helpers.NewNopLogger())
		_, err := svc.Search(context.Background(), "  ", 10)
		assert.ErrorIs(t, err, application.ErrValidation)
	})
}
