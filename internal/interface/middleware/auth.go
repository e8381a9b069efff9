package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/wisata-api/internal/domain/entity"
	"github.com/oksasatya/wisata-api/pkg/helpers"
	"github.com/oksasatya/wisata-api/pkg/response"
)

const ctxIdentityKey = "identity"

// Authenticate validates the bearer access token and stores the caller's
// Identity in the Gin context on success.
func Authenticate(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Abort(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(strings.TrimSpace(token))
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid access token", err.Error())
			return
		}
		role, ok := entity.ParseRole(claims.Role)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "invalid access token", "unknown role")
			return
		}
		c.Set(ctxIdentityKey, entity.Identity{UserID: claims.UserID, Email: claims.Email, Role: role})
		c.Next()
	}
}

// Authorize lets the request through only when the caller's role grants perm.
func Authorize(perm entity.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		if !id.Role.Can(perm) {
			response.Abort(c, http.StatusForbidden, "forbidden", map[string]string{"permission": string(perm)})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity attached by Authenticate.
func IdentityFrom(c *gin.Context) (entity.Identity, bool) {
	v, ok := c.Get(ctxIdentityKey)
	if !ok {
		return entity.Identity{}, false
	}
	id, ok := v.(entity.Identity)
	return id, ok
}
