package application

import (
	"context"
	"errors"
	"strings"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	repo "github.com/oksasatya/wisata-api/internal/domain/repository"
)

type FavoriteService struct {
	Repo repo.FavoriteRepository
}

func NewFavoriteService(r repo.FavoriteRepository) *FavoriteService {
	return &FavoriteService{Repo: r}
}

// owns reports whether the caller may act on favorites of email.
func owns(caller entity.Identity, email string) bool {
	return strings.EqualFold(caller.Email, email) || caller.Role.Can(entity.PermFavoriteManageAny)
}

// Create stores a favorite. Callers may only create favorites for their own email
// unless their role can manage any favorite.
func (s *FavoriteService) Create(ctx context.Context, caller entity.Identity, f *entity.Favorite) error {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	if f.Email == "" {
		f.Email = caller.Email
	}
	if !owns(caller, f.Email) {
		return ErrForbidden
	}
	if err := s.Repo.Create(ctx, f); err != nil {
		if errors.Is(err, repo.ErrReference) {
			return validationf("user or content does not exist")
		}
		return err
	}
	return nil
}

func (s *FavoriteService) List(ctx context.Context) ([]entity.Favorite, error) {
	return s.Repo.List(ctx)
}

func (s *FavoriteService) ListByEmail(ctx context.Context, email string) ([]entity.Favorite, error) {
	return s.Repo.ListByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *FavoriteService) Delete(ctx context.Context, caller entity.Identity, id int64) error {
	f, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFoundf("favorite")
		}
		return err
	}
	if !owns(caller, f.Email) {
		return ErrForbidden
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFoundf("favorite")
		}
		return err
	}
	return nil
}
