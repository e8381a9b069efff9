package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/interface/middleware"
	"github.com/oksasatya/wisata-api/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Store  middleware.ObjectStore
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, store middleware.ObjectStore, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Store: store, Logger: logger}
}

// UploadProfilePic POST /api/users/uploadProfilePic (multipart, profilePic)
func (h *UserHandler) UploadProfilePic(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		discardUpload(c, h.Store, h.Logger)
		return
	}
	obj, ok := middleware.UploadedFrom(c)
	if !ok {
		response.Error[any](c, http.StatusBadRequest, "no file uploaded", nil)
		return
	}
	if err := h.Svc.SetProfilePic(c.Request.Context(), id.UserID, obj.URL); err != nil {
		discardUpload(c, h.Store, h.Logger)
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":  "profile picture updated",
		"filePath": obj.URL,
	}, "profile picture updated", nil)
}
