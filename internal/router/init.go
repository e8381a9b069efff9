package router

import (
	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/container"
	pginfra "github.com/oksasatya/wisata-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/wisata-api/internal/interface/http"
	"github.com/oksasatya/wisata-api/internal/router/modules"
)

// InitModules builds repositories, services and handlers from ctr and
// registers every feature module with the registry.
// This function should be called once during application startup.
func InitModules(r *Registry, ctr *container.Container) {
	cfg := ctr.Config
	logger := ctr.Logger

	users := pginfra.NewUserRepository(ctr.PG)
	contents := pginfra.NewContentRepository(ctr.PG)
	favorites := pginfra.NewFavoriteRepository(ctr.PG)
	visits := pginfra.NewVisitRepository(ctr.PG)

	authSvc := application.NewAuthService(users, ctr.JWT, ctr.Publisher(), logger, cfg.AppName)
	userSvc := application.NewUserService(users)
	contentSvc := application.NewContentService(contents, ctr.ContentIndex(), logger)
	if ctr.Store != nil {
		contentSvc.Images = ctr.Store
	}
	favoriteSvc := application.NewFavoriteService(favorites)
	visitSvc := application.NewVisitService(visits)

	guard := modules.Guard{
		JWT:        ctr.JWT,
		Redis:      ctr.Redis,
		UserPerMin: cfg.RateLimitUserPerMin,
		AuthPerMin: cfg.RateLimitAuthPerMin,
		MaxUpload:  cfg.UploadMaxBytes,
	}

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), guard))
	r.Add(modules.NewContentModule(handlers.NewContentHandler(contentSvc, ctr.Store, logger), ctr.Store, guard))
	r.Add(modules.NewFavoriteModule(handlers.NewFavoriteHandler(favoriteSvc, logger), guard))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, ctr.Store, logger), ctr.Store, guard))
	r.Add(modules.NewVisitModule(handlers.NewVisitHandler(visitSvc, cfg.ExportDir, logger), guard))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(ctr.PG, guard))
	}
}
