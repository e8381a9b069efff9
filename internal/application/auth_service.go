package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	repo "github.com/oksasatya/wisata-api/internal/domain/repository"
	"github.com/oksasatya/wisata-api/pkg/helpers"
	"github.com/oksasatya/wisata-api/pkg/mailer"
	tpl "github.com/oksasatya/wisata-api/pkg/mailer/templates"
)

type AuthService struct {
	Repo    repo.UserRepository
	JWT     *helpers.JWTManager
	Pub     JobPublisher // optional
	Logger  *logrus.Logger
	AppName string
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, pub JobPublisher, logger *logrus.Logger, appName string) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Pub: pub, Logger: logger, AppName: appName}
}

type RegisterInput struct {
	Email      string
	Name       string
	Password   string
	Role       string
	WisataName string
}

// Register creates an account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, validationf("role must be one of admin, manager, user")
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Name:     strings.TrimSpace(in.Name),
		Password: hash,
		Role:     role,
	}
	if w := strings.TrimSpace(in.WisataName); w != "" {
		u.WisataName = &w
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicate):
			return nil, ErrConflict
		case errors.Is(err, repo.ErrReference):
			return nil, validationf("wisataName %q does not exist", *u.WisataName)
		}
		return nil, err
	}
	s.enqueueWelcome(ctx, u)
	return u, nil
}

func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: tpl.Welcome,
		Data:     tpl.NewWelcomeData(s.AppName, u.Name, u.Email, string(u.Role), time.Now()),
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		helpers.LogWarn(s.Logger, "enqueue welcome email failed", err, logrus.Fields{"user_id": u.ID})
	}
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login returns ErrInvalidCredentials for an unknown email and for a wrong password alike.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		helpers.BurnPasswordCheck(password)
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		helpers.LogError(s.Logger, "generate access token failed", err, logrus.Fields{"user_id": u.ID})
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp}, nil
}
