package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/domain/entity"
	"github.com/oksasatya/wisata-api/internal/mocks"
	"github.com/oksasatya/wisata-api/pkg/helpers"
)

func TestWriteVisitsCSV(t *testing.T) {
	visits := []entity.VisitWithContent{{
		Visit: entity.Visit{
			ID: 5, WisataID: 9,
			ListVisitor: []string{"a@x.io", "b@x.io"},
			VisitDate:   entity.DayOf(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		},
	}}
	var buf bytes.Buffer
	require.NoError(t, WriteVisitsCSV(&buf, visits))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"id", "contentId", "visitorList", "visitDate"},
		{"5", "9", `["a@x.io","b@x.io"]`, "2024-03-05"},
	}, rows)
}

func TestWriteVisitsCSVEmptyIsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVisitsCSV(&buf, nil))
	assert.Equal(t, "id,contentId,visitorList,visitDate\n", buf.String())
}

func TestExportRemovesTransientFile(t *testing.T) {
	dir := t.TempDir()
	repo := new(mocks.MockVisitRepository)
	repo.On("ListBetween", mock.Anything, mock.Anything, mock.Anything).Return([]entity.VisitWithContent{}, nil).Once()
	h := NewVisitHandler(application.NewVisitService(repo), dir, helpers.NewNopLogger())

	r := gin.New()
	r.GET("/visits/export/by-week/:param", h.Export(application.WindowWeek))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/visits/export/by-week/2024-03-04", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "visits-week-2024-03-04.csv")
	assert.Equal(t, "id,contentId,visitorList,visitDate\n", w.Body.String())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportBadParameter(t *testing.T) {
	h := NewVisitHandler(application.NewVisitService(new(mocks.MockVisitRepository)), t.TempDir(), helpers.NewNopLogger())
	r := gin.New()
	r.GET("/visits/export/by-year/:param", h.Export(application.WindowYear))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/visits/export/by-year/twenty", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
