package repository

import (
	"context"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

// ContentRepository persists attractions.
type ContentRepository interface {
	Create(ctx context.Context, c *entity.Content) error
	List(ctx context.Context) ([]entity.Content, error)
	GetByID(ctx context.Context, id int64) (*entity.Content, error)
	GetByName(ctx context.Context, name string) (*entity.Content, error)
	Update(ctx context.Context, c *entity.Content) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q string, limit int) ([]entity.Content, error)
}
