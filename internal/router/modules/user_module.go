package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	handlers "github.com/oksasatya/wisata-api/internal/interface/http"
	"github.com/oksasatya/wisata-api/internal/interface/middleware"
)

// UserModule serves the caller's own profile routes.
type UserModule struct {
	Handler *handlers.UserHandler
	Store   middleware.ObjectStore
	Guard   Guard
}

func NewUserModule(h *handlers.UserHandler, store middleware.ObjectStore, g Guard) *UserModule {
	return &UserModule{Handler: h, Store: store, Guard: g}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := m.Guard.Protected(rg, "/users")
	g.POST("/uploadProfilePic",
		middleware.Authorize(entity.PermProfileWrite),
		m.Guard.image(m.Store, "profilePic", "profilePicture", true),
		m.Handler.UploadProfilePic,
	)
}
