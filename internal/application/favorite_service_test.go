package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/domain/entity"
	repo "github.com/oksasatya/wisata-api/internal/domain/repository"
	"github.com/oksasatya/wisata-api/internal/mocks"
)

var (
	alice = entity.Identity{UserID: 1, Email: "alice@example.com", Role: entity.RoleUser}
	admin = entity.Identity{UserID: 2, Email: "root@example.com", Role: entity.RoleAdmin}
)

func TestFavoriteService_Create(t *testing.T) {
	t.Run("own favorite", func(t *testing.T) {
		r := new(mocks.MockFavoriteRepository)
		svc := application.NewFavoriteService(r)
		f := &entity.Favorite{Email: "Alice@Example.com", WisataID: 4, IsFavorite: true}
		r.On("Create", mock.Anything, f).Return(nil).Once()

		require.NoError(t, svc.Create(context.Background(), alice, f))
		assert.Equal(t, "alice@example.com", f.Email)
	})

	t.Run("empty email defaults to caller", func(t *testing.T) {
		r := new(mocks.MockFavoriteRepository)
		svc := application.NewFavoriteService(r)
		f := &entity.Favorite{WisataID: 4}
		r.On("Create", mock.Anything, f).Return(nil).Once()

		require.NoError(t, svc.Create(context.Background(), alice, f))
		assert.Equal(t, alice.Email, f.Email)
	})

	t.Run("someone else's email is forbidden", func(t *testing.T) {
		r := new(mocks.MockFavoriteRepository)
		svc := application.NewFavoriteService(r)
		err := svc.Create(context.Background(), alice, &entity.Favorite{Email: "bob@example.com", WisataID: 4})
		assert.ErrorIs(t, err, application.ErrForbidden)
		r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("admin may act for anyone", func(t *testing.T) {
		r := new(mocks.MockFavoriteRepository)
		svc := application.NewFavoriteService(r)
		r.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		assert.NoError(t, svc.Create(context.Background(), admin, &entity.Favorite{Email: "bob@example.com", WisataID: 4}))
	})

	t.Run("missing content is a validation error", func(t *testing.T) {
		r := new(mocks.MockFavoriteRepository)
		svc := application.NewFavoriteService(r)
		r.On("Create", mock.Anything, mock.Anything).Return(repo.ErrReference).Once()
		err := svc.Create(context.Background(), alice, &entity.Favorite{WisataID: 404})
		assert.ErrorIs(t, err, application.ErrValidation)
	})
}

func TestFavoriteService_Delete(t *testing.T) {
	r := new(mocks.MockFavoriteRepository)
	svc := application.NewFavoriteService(r)
	r.On("GetByID", mock.Anything, int64(1)).Return(&entity.Favorite{ID: 1, Email: "bob@example.com"}, nil)
	r.On("GetByID", mock.Anything, int64(2)).Return(nil, repo.ErrNotFound)
	r.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	assert.ErrorIs(t, svc.Delete(context.Background(), alice, 1), application.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), alice, 2), application.ErrNotFound)
	assert.NoError(t, svc.Delete(context.Background(), admin, 1))
	r.AssertNumberOfCalls(t, "Delete", 1)
}
