package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/domain/entity"
	handlers "github.com/oksasatya/wisata-api/internal/interface/http"
	"github.com/oksasatya/wisata-api/internal/interface/middleware"
)

type VisitModule struct {
	Handler *handlers.VisitHandler
	Guard   Guard
}

func NewVisitModule(h *handlers.VisitHandler, g Guard) *VisitModule {
	return &VisitModule{Handler: h, Guard: g}
}

func (m *VisitModule) Register(rg *gin.RouterGroup) {
	read := middleware.Authorize(entity.PermVisitRead)
	export := middleware.Authorize(entity.PermVisitExport)

	g := m.Guard.Protected(rg, "/visits")
	{
		g.POST("", middleware.Authorize(entity.PermVisitWrite), m.Handler.Create)
		g.GET("", read, m.Handler.List)
		g.GET("/by-date/:param", read, m.Handler.Window(application.WindowDay))
		g.GET("/by-week/:param", read, m.Handler.Window(application.WindowWeek))
		g.GET("/by-month/:param", read, m.Handler.Window(application.WindowMonth))
		g.GET("/by-year/:param", read, m.Handler.Window(application.WindowYear))

		g.GET("/export/by-week/:param", export, m.Handler.Export(application.WindowWeek))
		g.GET("/export/by-month/:param", export, m.Handler.Export(application.WindowMonth))
		g.GET("/export/by-year/:param", export, m.Handler.Export(application.WindowYear))
	}
}
