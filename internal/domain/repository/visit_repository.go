package repository

import (
	"context"
	"time"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
)

// VisitRepository persists visits.
type VisitRepository interface {
	// Record verifies that every visitor is a registered user and then inserts the
	// visit or merges its visitors into the existing row for the same content and day,
	// all inside one transaction. inserted is false when an existing row was merged.
	Record(ctx context.Context, wisataID int64, visitors []string, day entity.Day) (v *entity.Visit, inserted bool, err error)
	ListWithContent(ctx context.Context) ([]entity.VisitWithContent, error)
	// ListBetween returns visits whose day lies in [from, to], both inclusive.
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.VisitWithContent, error)
}
