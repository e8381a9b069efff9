package application

import (
	"context"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

// JobPublisher enqueues background jobs (email).
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ContentIndex keeps a full-text index of contents.
type ContentIndex interface {
	Index(ctx context.Context, c *entity.Content) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q string, size int) ([]entity.Content, error)
}

// ImageRemover deletes a previously stored image by its public URL.
type ImageRemover interface {
	DeleteURL(ctx context.Context, url string) error
}
