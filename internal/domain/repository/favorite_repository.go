package repository

import (
	"context"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

type FavoriteRepository interface {
	Create(ctx context.Context, f *entity.Favorite) error
	List(ctx context.Context) ([]entity.Favorite, error)
	ListByEmail(ctx context.Context, email string) ([]entity.Favorite, error)
	GetByID(ctx context.Context, id int64) (*entity.Favorite, error)
	Delete(ctx context.Context, id int64) error
}
