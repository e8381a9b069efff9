package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/domain/entity"
	"github.com/oksasatya/wisata-api/internal/interface/middleware"
	"github.com/oksasatya/wisata-api/pkg/helpers"
	"github.com/oksasatya/wisata-api/pkg/response"
)

// writeError maps an application error onto the response envelope.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, application.ErrValidation):
		detail := strings.TrimPrefix(err.Error(), application.ErrValidation.Error()+": ")
		response.Error[any](c, http.StatusBadRequest, detail, nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrConflict):
		response.Error[any](c, http.StatusConflict, "already exists", nil)
	default:
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
		response.Error[any](c, http.StatusInternalServerError, "internal server error", err.Error())
	}
}

// pathID parses the :name path parameter as a positive id, replying 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid "+name, c.Param(name))
		return 0, false
	}
	return id, true
}

// caller returns the authenticated identity or replies 401.
func caller(c *gin.Context) (entity.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
	}
	return id, ok
}

// discardUpload removes the object uploaded for this request after a failed write.
func discardUpload(c *gin.Context, store middleware.ObjectStore, logger *logrus.Logger) {
	if store == nil {
		return
	}
	if err := middleware.DiscardUpload(c, store); err != nil {
		helpers.LogWarn(logger, "discard uploaded object failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
	}
}
