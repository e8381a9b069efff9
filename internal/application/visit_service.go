package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	repo "github.com/oksasatya/wisata-api/internal/domain/repository"
	"github.com/oksasatya/wisata-api/pkg/helpers"
)

type VisitService struct {
	Repo repo.VisitRepository
	Now  func() time.Time
}

func NewVisitService(r repo.VisitRepository) *VisitService {
	return &VisitService{Repo: r, Now: time.Now}
}

type RecordVisitInput struct {
	WisataID    int64
	ListVisitor []string
	VisitDate   string // YYYY-MM-DD or RFC3339; empty means today
}

// Record creates the visit for (content, day) or merges the visitors into it.
// created is true when a new row was inserted.
func (s *VisitService) Record(ctx context.Context, in RecordVisitInput) (v *entity.Visit, created bool, err error) {
	if in.WisataID <= 0 {
		return nil, false, validationf("wisataID is required")
	}
	visitors := entity.NormalizeVisitors(in.ListVisitor)
	if len(visitors) == 0 {
		return nil, false, validationf("listVisitor must contain at least one email")
	}

	day := entity.DayOf(s.Now())
	if strings.TrimSpace(in.VisitDate) != "" {
		t, err := helpers.ParseDay(strings.TrimSpace(in.VisitDate))
		if err != nil {
			return nil, false, validationf("visitDate: %v", err)
		}
		day = entity.DayOf(t)
	}

	v, created, err = s.Repo.Record(ctx, in.WisataID, visitors, day)
	if err != nil {
		var unreg *repo.UnregisteredVisitorsError
		switch {
		case errors.As(err, &unreg):
			return nil, false, validationf("some visitors are not registered users: %s", strings.Join(unreg.Emails, ", "))
		case errors.Is(err, repo.ErrReference):
			return nil, false, validationf("content %d does not exist", in.WisataID)
		}
		return nil, false, err
	}
	return v, created, nil
}

func (s *VisitService) List(ctx context.Context) ([]entity.VisitWithContent, error) {
	return s.Repo.ListWithContent(ctx)
}

// Window names a date range form accepted by ListWindow.
type Window string

const (
	WindowDay   Window = "date"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// Range resolves param to an inclusive [from, to] day range for the window.
func (w Window) Range(param string) (time.Time, time.Time, error) {
	var (
		from, to time.Time
		err      error
	)
	switch w {
	case WindowDay:
		from, err = helpers.ParseDay(param)
		to = from
	case WindowWeek:
		from, to, err = helpers.WeekRange(param)
	case WindowMonth:
		from, to, err = helpers.MonthRange(param)
	case WindowYear:
		from, to, err = helpers.YearRange(param)
	default:
		return time.Time{}, time.Time{}, validationf("unknown window %q", w)
	}
	if err != nil {
		return time.Time{}, time.Time{}, validationf("%v", err)
	}
	return from, to, nil
}

// ListWindow returns visits (joined with content) whose day falls inside the window.
func (s *VisitService) ListWindow(ctx context.Context, w Window, param string) ([]entity.VisitWithContent, error) {
	from, to, err := w.Range(param)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListBetween(ctx, from, to)
}
