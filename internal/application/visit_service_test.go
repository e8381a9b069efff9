package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/domain/entity"
	repo "github.com/oksasatya/wisata-api/internal/domain/repository"
	"github.com/oksasatya/wisata-api/internal/mocks"
)

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVisitService_Record(t *testing.T) {
	t.Run("normalizes visitors and defaults to today", func(t *testing.T) {
		r := new(mocks.MockVisitRepository)
		svc := application.NewVisitService(r)
		svc.Now = func() time.Time { return time.Date(2024, 5, 10, 15, 4, 5, 0, time.UTC) }
		today := entity.DayOf(utcDay(2024, 5, 10))
		want := &entity.Visit{ID: 1, WisataID: 3, ListVisitor: []string{"a@x.io", "b@x.io"}, VisitDate: today}
		r.On("Record", mock.Anything, int64(3), []string{"a@x.io", "b@x.io"}, today).Return(want, true, nil).Once()

		v, created, err := svc.Record(context.Background(), application.RecordVisitInput{
			WisataID: 3, ListVisitor: []string{"A@x.io", "b@x.io", "a@x.io "},
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, want, v)
		r.AssertExpectations(t)
	})

	t.Run("explicit date", func(t *testing.T) {
		r := new(mocks.MockVisitRepository)
		svc := application.NewVisitService(r)
		day := entity.DayOf(utcDay(2024, 1, 31))
		r.On("Record", mock.Anything, int64(3), []string{"a@x.io"}, day).
			Return(&entity.Visit{ID: 2}, false, nil).Once()

		_, created, err := svc.Record(context.Background(), application.RecordVisitInput{
			WisataID: 3, ListVisitor: []string{"a@x.io"}, VisitDate: "2024-01-31",
		})
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("unregistered visitors", func(t *testing.T) {
		r := new(mocks.MockVisitRepository)
		svc := application.NewVisitService(r)
		r.On("Record", mock.Anything, int64(3), mock.Anything, mock.Anything).
			Return(nil, false, &repo.UnregisteredVisitorsError{Emails: []string{"ghost@x.io"}}).Once()

		_, _, err := svc.Record(context.Background(), application.RecordVisitInput{
			WisataID: 3, ListVisitor: []string{"ghost@x.io"},
		})
		assert.ErrorIs(t, err, application.ErrValidation)
		assert.Contains(t, err.Error(), "ghost@x.io")
	})

	t.Run("input rejected before the repository", func(t *testing.T) {
		r := new(mocks.MockVisitRepository)
		svc := application.NewVisitService(r)
		cases := []application.RecordVisitInput{
			{WisataID: 0, ListVisitor: []string{"a@x.io"}},
			{WisataID: 1, ListVisitor: []string{" ", ""}},
			{WisataID: 1, ListVisitor: []string{"a@x.io"}, VisitDate: "31/01/2024"},
		}
		for _, in := range cases {
			_, _, err := svc.Record(context.Background(), in)
			assert.ErrorIs(t, err, application.ErrValidation)
		}
		r.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestVisitService_ListWindow(t *testing.T) {
	cases := []struct {
		window   application.Window
		param    string
		from, to time.Time
	}{
		{application.WindowDay, "2024-03-05", utcDay(2024, 3, 5), utcDay(2024, 3, 5)},
		{application.WindowWeek, "2024-03-05", utcDay(2024, 3, 5), utcDay(2024, 3, 11)},
		{application.WindowMonth, "2024-02-17", utcDay(2024, 2, 1), utcDay(2024, 2, 29)},
		{application.WindowYear, "2023", utcDay(2023, 1, 1), utcDay(2023, 12, 31)},
	}
	for _, tc := range cases {
		t.Run(string(tc.window), func(t *testing.T) {
			r := new(mocks.MockVisitRepository)
			svc := application.NewVisitService(r)
			r.On("ListBetween", mock.Anything, tc.from, tc.to).Return([]entity.VisitWithContent{}, nil).Once()

			got, err := svc.ListWindow(context.Background(), tc.window, tc.param)
			require.NoError(t, err)
			assert.Empty(t, got)
			r.AssertExpectations(t)
		})
	}

	t.Run("bad parameter", func(t *testing.T) {
		svc := application.NewVisitService(new(mocks.MockVisitRepository))
		_, err := svc.ListWindow(context.Background(), application.WindowYear, "23")
		assert.ErrorIs(t, err, application.ErrValidation)
	})
}
