package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/pkg/response"
	"github.com/oksasatya/wisata-api/pkg/validation"
)

type VisitHandler struct {
	Svc       *application.VisitService
	ExportDir string
	Logger    *logrus.Logger
}

func NewVisitHandler(svc *application.VisitService, exportDir string, logger *logrus.Logger) *VisitHandler {
	return &VisitHandler{Svc: svc, ExportDir: exportDir, Logger: logger}
}

type visitRequest struct {
	WisataID    int64    `json:"wisataID" binding:"required,gt=0"`
	ListVisitor []string `json:"listVisitor" binding:"required,min=1,dive,required,email"`
	VisitDate   string   `json:"visitDate"` // YYYY-MM-DD or RFC3339, defaults to today
}

// Create POST /api/visits. 201 when a new visit was recorded, 200 when merged.
func (h *VisitHandler) Create(c *gin.Context) {
	var req visitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	v, created, err := h.Svc.Record(c.Request.Context(), application.RecordVisitInput{
		WisataID:    req.WisataID,
		ListVisitor: req.ListVisitor,
		VisitDate:   req.VisitDate,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if created {
		response.Success(c, http.StatusCreated, v, "visit recorded", nil)
		return
	}
	response.Success(c, http.StatusOK, v, "visitors merged into existing visit", nil)
}

// List GET /api/visits
func (h *VisitHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, "visits", map[string]any{"count": len(items)})
}

// Window serves GET /api/visits/by-{window}/:param.
func (h *VisitHandler) Window(w application.Window) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Svc.ListWindow(c.Request.Context(), w, c.Param("param"))
		if err != nil {
			writeError(c, h.Logger, err)
			return
		}
		response.Success(c, http.StatusOK, items, "visits", map[string]any{"count": len(items), "window": w})
	}
}

// Export serves GET /api/visits/export/by-{window}/:param as a CSV download.
func (h *VisitHandler) Export(w application.Window) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := c.Param("param")
		items, err := h.Svc.ListWindow(c.Request.Context(), w, param)
		if err != nil {
			writeError(c, h.Logger, err)
			return
		}
		name := fmt.Sprintf("visits-%s-%s.csv", w, param)
		if err := sendVisitsCSV(c, h.ExportDir, name, items); err != nil {
			writeError(c, h.Logger, err)
		}
	}
}
