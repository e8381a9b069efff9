package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/wisata-api/internal/interface/http"
)

// AuthModule serves POST /api/auth/register and /api/auth/login.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Guard   Guard
}

func NewAuthModule(h *handlers.AuthHandler, g Guard) *AuthModule {
	return &AuthModule{Handler: h, Guard: g}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limiter := m.Guard.PerIP(m.Guard.AuthPerMin)
	rg.POST("/auth/register", limiter, m.Handler.Register)
	rg.POST("/auth/login", limiter, m.Handler.Login)
}
