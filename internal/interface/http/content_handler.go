package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/domain/entity"
	"github.com/oksasatya/wisata-api/internal/interface/middleware"
	"github.com/oksasatya/wisata-api/pkg/response"
	"github.com/oksasatya/wisata-api/pkg/validation"
)

type ContentHandler struct {
	Svc    *application.ContentService
	Store  middleware.ObjectStore
	Logger *logrus.Logger
}

func NewContentHandler(svc *application.ContentService, store middleware.ObjectStore, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{Svc: svc, Store: store, Logger: logger}
}

// createContentRequest binds multipart fields or a JSON body.
type createContentRequest struct {
	Name        string   `form:"wisataName" json:"wisataName" binding:"required,max=200"`
	Description string   `form:"description" json:"description" binding:"required"`
	Address     string   `form:"address" json:"address" binding:"required"`
	Lat         *float64 `form:"lat" json:"lat" binding:"required,latitude"`
	Lon         *float64 `form:"lon" json:"lon" binding:"required,longitude"`
	Country     string   `form:"country" json:"country" binding:"required"`
}

type updateContentRequest struct {
	Name        *string  `form:"wisataName" json:"wisataName" binding:"omitempty,min=1,max=200"`
	Description *string  `form:"description" json:"description"`
	Address     *string  `form:"address" json:"address"`
	Lat         *float64 `form:"lat" json:"lat" binding:"omitempty,latitude"`
	Lon         *float64 `form:"lon" json:"lon" binding:"omitempty,longitude"`
	Country     *string  `form:"country" json:"country"`
}

// Create POST /api/contents (multipart, optional contentFile)
func (h *ContentHandler) Create(c *gin.Context) {
	var req createContentRequest
	if err := c.ShouldBind(&req); err != nil {
		discardUpload(c, h.Store, h.Logger)
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	content := &entity.Content{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Lat:         *req.Lat,
		Lon:         *req.Lon,
		Country:     req.Country,
	}
	if obj, ok := middleware.UploadedFrom(c); ok {
		content.ImageURL = &obj.URL
	}
	if err := h.Svc.Create(c.Request.Context(), content); err != nil {
		discardUpload(c, h.Store, h.Logger)
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, content, "content created", nil)
}

// List GET /api/contents
func (h *ContentHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if len(items) == 0 {
		response.Error[any](c, http.StatusNotFound, "no content found", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "contents", map[string]any{"count": len(items)})
}

// GetByID GET /api/contents/getById/:id
func (h *ContentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, item, "content", nil)
}

// GetByName GET /api/contents/getByName/:name
func (h *ContentHandler) GetByName(c *gin.Context) {
	item, err := h.Svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, item, "content", nil)
}

// Update PUT /api/contents/updateContent/:id (multipart, optional contentFile)
func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		discardUpload(c, h.Store, h.Logger)
		return
	}
	var req updateContentRequest
	if err := c.ShouldBind(&req); err != nil {
		discardUpload(c, h.Store, h.Logger)
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	patch := entity.ContentPatch{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Lat:         req.Lat,
		Lon:         req.Lon,
		Country:     req.Country,
	}
	if obj, ok := middleware.UploadedFrom(c); ok {
		patch.ImageURL = &obj.URL
	}
	item, err := h.Svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		discardUpload(c, h.Store, h.Logger)
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, item, "content updated", nil)
}

// Delete DELETE /api/contents/deleteContent/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// Search GET /api/contents/search?q=&size=
func (h *ContentHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	items, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "search results", map[string]any{"count": len(items)})
}
