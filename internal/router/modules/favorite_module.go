package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	handlers "github.com/oksasatya/wisata-api/internal/interface/http"
	"github.com/oksasatya/wisata-api/internal/interface/middleware"
)

type FavoriteModule struct {
	Handler *handlers.FavoriteHandler
	Guard   Guard
}

func NewFavoriteModule(h *handlers.FavoriteHandler, g Guard) *FavoriteModule {
	return &FavoriteModule{Handler: h, Guard: g}
}

func (m *FavoriteModule) Register(rg *gin.RouterGroup) {
	read := middleware.Authorize(entity.PermFavoriteRead)
	write := middleware.Authorize(entity.PermFavoriteWrite)

	g := m.Guard.Protected(rg, "/favorites")
	{
		g.POST("", write, m.Handler.Create)
		g.GET("", read, m.Handler.List)
		g.GET("/byEmail/:email", read, m.Handler.ListByEmail)
		g.DELETE("/deleteFavorite/:id", write, m.Handler.Delete)
	}
}
