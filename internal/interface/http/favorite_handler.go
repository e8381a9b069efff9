package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/domain/entity"
	"github.com/oksasatya/wisata-api/pkg/response"
	"github.com/oksasatya/wisata-api/pkg/validation"
)

type FavoriteHandler struct {
	Svc    *application.FavoriteService
	Logger *logrus.Logger
}

func NewFavoriteHandler(svc *application.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc, Logger: logger}
}

type favoriteRequest struct {
	Email      string `json:"email" binding:"omitempty,email"` // defaults to the caller
	WisataID   int64  `json:"wisataID" binding:"required,gt=0"`
	IsFavorite bool   `json:"isFavorite"`
}

// Create POST /api/favorites
func (h *FavoriteHandler) Create(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	f := &entity.Favorite{Email: req.Email, WisataID: req.WisataID, IsFavorite: req.IsFavorite}
	if err := h.Svc.Create(c.Request.Context(), id, f); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, f, "favorite created", nil)
}

// List GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	h.reply(c, items, err)
}

// ListByEmail GET /api/favorites/byEmail/:email
func (h *FavoriteHandler) ListByEmail(c *gin.Context) {
	items, err := h.Svc.ListByEmail(c.Request.Context(), c.Param("email"))
	h.reply(c, items, err)
}

func (h *FavoriteHandler) reply(c *gin.Context, items []entity.Favorite, err error) {
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if len(items) == 0 {
		response.Error[any](c, http.StatusNotFound, "no favorites found", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "favorites", map[string]any{"count": len(items)})
}

// Delete DELETE /api/favorites/deleteFavorite/:id
func (h *FavoriteHandler) Delete(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), who, id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
