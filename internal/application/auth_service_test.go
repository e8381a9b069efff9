package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/domain/entity"
	repo "github.com/oksasatya/wisata-api/internal/domain/repository"
	"github.com/oksasatya/wisata-api/internal/mocks"
	"github.com/oksasatya/wisata-api/pkg/helpers"
	"github.com/oksasatya/wisata-api/pkg/mailer"
)

func newAuth(r *mocks.MockUserRepository, pub application.JobPublisher) *application.AuthService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return application.NewAuthService(r, jwt, pub, helpers.NewNopLogger(), "wisata-api")
}

func TestAuthService_Register(t *testing.T) {
	t.Run("hashes password and enqueues welcome email", func(t *testing.T) {
		r := new(mocks.MockUserRepository)
		pub := new(mocks.MockJobPublisher)
		svc := newAuth(r, pub)

		var stored *entity.User
		r.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*entity.User)
				stored.ID = 7
			}).Return(nil).Once()
		pub.On("PublishJSON", mock.Anything, mock.MatchedBy(func(j mailer.EmailJob) bool {
			return j.To == "ana@example.com" && j.Template == "welcome"
		})).Return(nil).Once()

		u, err := svc.Register(context.Background(), application.RegisterInput{
			Email: " Ana@Example.com ", Name: "Ana", Password: "password123", Role: "pengelola",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.ID)
		assert.Equal(t, "ana@example.com", stored.Email)
		assert.Equal(t, entity.RoleManager, stored.Role)
		assert.NotEqual(t, "password123", stored.Password)
		assert.True(t, helpers.CompareHashAndPassword(stored.Password, "password123"))
		assert.Nil(t, stored.WisataName)
		r.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		r := new(mocks.MockUserRepository)
		svc := newAuth(r, nil)
		r.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate).Once()

		_, err := svc.Register(context.Background(), application.RegisterInput{
			Email: "a@b.c", Name: "A", Password: "password123", Role: "user",
		})
		assert.ErrorIs(t, err, application.ErrConflict)
	})

	t.Run("unknown wisata name is a validation error", func(t *testing.T) {
		r := new(mocks.MockUserRepository)
		svc := newAuth(r, nil)
		r.On("Create", mock.Anything, mock.Anything).Return(repo.ErrReference).Once()

		_, err := svc.Register(context.Background(), application.RegisterInput{
			Email: "a@b.c", Name: "A", Password: "password123", Role: "manager", WisataName: "Nowhere",
		})
		assert.ErrorIs(t, err, application.ErrValidation)
	})

	t.Run("bad role never reaches the repository", func(t *testing.T) {
		r := new(mocks.MockUserRepository)
		svc := newAuth(r, nil)

		_, err := svc.Register(context.Background(), application.RegisterInput{
			Email: "a@b.c", Name: "A", Password: "password123", Role: "root",
		})
		assert.ErrorIs(t, err, application.ErrValidation)
		r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail registration", func(t *testing.T) {
		r := new(mocks.MockUserRepository)
		pub := new(mocks.MockJobPublisher)
		svc := newAuth(r, pub)
		r.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		pub.On("PublishJSON", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		_, err := svc.Register(context.Background(), application.RegisterInput{
			Email: "a@b.c", Name: "A", Password: "password123", Role: "user",
		})
		assert.NoError(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := helpers.HashPassword("password123")
	require.NoError(t, err)
	user := &entity.User{ID: 3, Email: "ana@example.com", Password: hash, Role: entity.RoleAdmin}

	t.Run("token carries identity and role", func(t *testing.T) {
		r := new(mocks.MockUserRepository)
		svc := newAuth(r, nil)
		r.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil).Once()

		res, err := svc.Login(context.Background(), "ANA@example.com", "password123")
		require.NoError(t, err)

		claims, err := svc.JWT.ParseAccessToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(3), claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		r := new(mocks.MockUserRepository)
		svc := newAuth(r, nil)
		r.On("GetByEmail", mock.Anything, "ana@example.com").Return(user, nil).Once()
		r.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repo.ErrNotFound).Once()

		_, errWrong := svc.Login(context.Background(), "ana@example.com", "nope")
		_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "password123")
		assert.ErrorIs(t, errWrong, application.ErrInvalidCredentials)
		assert.Equal(t, errWrong, errUnknown)
	})

	t.Run("database failure is not reported as bad credentials", func(t *testing.T) {
		r := new(mocks.MockUserRepository)
		svc := newAuth(r, nil)
		boom := errors.New("connection reset")
		r.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, boom).Once()

		_, err := svc.Login(context.Background(), "ana@example.com", "password123")
		assert.ErrorIs(t, err, boom)
	})
}
