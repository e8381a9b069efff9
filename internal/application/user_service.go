package application

import (
	"context"
	"errors"

	repo "github.com/oksasatya/wisata-api/internal/domain/repository"
)

type UserService struct {
	Repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{Repo: r}
}

// SetProfilePic stores url as the caller's profile picture.
func (s *UserService) SetProfilePic(ctx context.Context, userID int64, url string) error {
	if err := s.Repo.UpdateProfilePic(ctx, userID, url); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFoundf("user")
		}
		return err
	}
	return nil
}
