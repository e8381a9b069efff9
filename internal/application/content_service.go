package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	repo "github.com/oksasatya/wisata-api/internal/domain/repository"
	"github.com/oksasatya/wisata-api/pkg/helpers"
)

const defaultSearchSize = 20

type ContentService struct {
	Repo   repo.ContentRepository
	Index  ContentIndex // optional
	Images ImageRemover // optional; drops replaced images
	Logger *logrus.Logger
}

func NewContentService(r repo.ContentRepository, index ContentIndex, logger *logrus.Logger) *ContentService {
	return &ContentService{Repo: r, Index: index, Logger: logger}
}

func checkCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return validationf("lat must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return validationf("lon must be between -180 and 180")
	}
	return nil
}

func (s *ContentService) Create(ctx context.Context, c *entity.Content) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return validationf("wisataName is required")
	}
	if err := checkCoordinates(c.Lat, c.Lon); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrConflict
		}
		return err
	}
	s.reindex(ctx, c)
	return nil
}

func (s *ContentService) List(ctx context.Context) ([]entity.Content, error) {
	return s.Repo.List(ctx)
}

func (s *ContentService) GetByID(ctx context.Context, id int64) (*entity.Content, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, notFoundf("content")
	}
	return c, err
}

func (s *ContentService) GetByName(ctx context.Context, name string) (*entity.Content, error) {
	c, err := s.Repo.GetByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, notFoundf("content")
	}
	return c, err
}

// Update applies patch to content id. The image URL only changes when the patch carries one.
func (s *ContentService) Update(ctx context.Context, id int64, patch entity.ContentPatch) (*entity.Content, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var previous string
	if c.ImageURL != nil {
		previous = *c.ImageURL
	}
	patch.Apply(c)
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, validationf("wisataName must not be empty")
	}
	if err := checkCoordinates(c.Lat, c.Lon); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicate):
			return nil, ErrConflict
		case errors.Is(err, repo.ErrNotFound):
			return nil, notFoundf("content")
		}
		return nil, err
	}
	s.reindex(ctx, c)
	if patch.ImageURL != nil && previous != "" && previous != *patch.ImageURL {
		s.dropImage(ctx, id, previous)
	}
	return c, nil
}

func (s *ContentService) dropImage(ctx context.Context, id int64, url string) {
	if s.Images == nil {
		return
	}
	if err := s.Images.DeleteURL(ctx, url); err != nil {
		helpers.LogWarn(s.Logger, "delete replaced content image failed", err, logrus.Fields{"wisata_id": id, "url": url})
	}
}

func (s *ContentService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFoundf("content")
		}
		return err
	}
	if s.Index != nil {
		if err := s.Index.Delete(ctx, id); err != nil {
			helpers.LogWarn(s.Logger, "content unindex failed", err, logrus.Fields{"wisata_id": id})
		}
	}
	return nil
}

// Search uses the full-text index when present and falls back to SQL matching.
func (s *ContentService) Search(ctx context.Context, q string, size int) ([]entity.Content, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, validationf("q is required")
	}
	if size <= 0 || size > 50 {
		size = defaultSearchSize
	}
	if s.Index != nil {
		res, err := s.Index.Search(ctx, q, size)
		if err == nil {
			return res, nil
		}
		helpers.LogWarn(s.Logger, "content index search failed, using database", err, logrus.Fields{"q": q})
	}
	return s.Repo.Search(ctx, q, size)
}

func (s *ContentService) reindex(ctx context.Context, c *entity.Content) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, c); err != nil {
		helpers.LogWarn(s.Logger, "content index failed", err, logrus.Fields{"wisata_id": c.ID})
	}
}
