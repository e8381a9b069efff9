package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	handlers "github.com/oksasatya/wisata-api/internal/interface/http"
	"github.com/oksasatya/wisata-api/internal/interface/middleware"
)

type ContentModule struct {
	Handler *handlers.ContentHandler
	Store   middleware.ObjectStore
	Guard   Guard
}

func NewContentModule(h *handlers.ContentHandler, store middleware.ObjectStore, g Guard) *ContentModule {
	return &ContentModule{Handler: h, Store: store, Guard: g}
}

func (m *ContentModule) Register(rg *gin.RouterGroup) {
	read := middleware.Authorize(entity.PermContentRead)
	write := middleware.Authorize(entity.PermContentWrite)
	upload := m.Guard.image(m.Store, "contentFile", "contents", false)

	g := m.Guard.Protected(rg, "/contents")
	{
		g.POST("", write, upload, m.Handler.Create)
		g.GET("", read, m.Handler.List)
		g.GET("/search", read, m.Handler.Search)
		g.GET("/getById/:id", read, m.Handler.GetByID)
		g.GET("/getByName/:name", read, m.Handler.GetByName)
		g.PUT("/updateContent/:id", write, upload, m.Handler.Update)
		g.DELETE("/deleteContent/:id", write, m.Handler.Delete)
	}
}
