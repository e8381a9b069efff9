package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/wisata-api/internal/interface/middleware"
	"github.com/oksasatya/wisata-api/pkg/helpers"
)

// Guard carries what every module needs to protect its routes.
type Guard struct {
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	UserPerMin int
	AuthPerMin int
	MaxUpload  int64
}

// Protected returns a group under prefix that requires a bearer token and is
// rate limited per user.
func (g Guard) Protected(rg *gin.RouterGroup, prefix string) *gin.RouterGroup {
	grp := rg.Group(prefix)
	grp.Use(
		middleware.Authenticate(g.JWT),
		middleware.RateLimit(g.Redis, g.UserPerMin, time.Minute, middleware.KeyByUserID(), nil),
	)
	return grp
}

// PerIP limits anonymous endpoints per client IP and route.
func (g Guard) PerIP(max int) gin.HandlerFunc {
	return middleware.RateLimit(g.Redis, max, time.Minute, middleware.KeyByIPAndPath(), nil)
}

func (g Guard) image(store middleware.ObjectStore, field, folder string, required bool) gin.HandlerFunc {
	return middleware.UploadImage(store, middleware.UploadOptions{
		Field:    field,
		Folder:   folder,
		MaxBytes: g.MaxUpload,
		Required: required,
	})
}
