package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxRealIPKey = "real_ip"

// TrustProxies restricts which peers may set X-Forwarded-For / X-Real-IP.
// With no proxies the socket address is the client IP. platform names a CDN
// header to trust unconditionally ("cloudflare", "appengine") or is a raw header
// name; empty trusts none.
func TrustProxies(engine *gin.Engine, proxies []string, platform string) error {
	if len(proxies) == 0 {
		proxies = nil
	}
	if err := engine.SetTrustedProxies(proxies); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "":
		engine.TrustedPlatform = ""
	case "cloudflare":
		engine.TrustedPlatform = gin.PlatformCloudflare
	case "appengine":
		engine.TrustedPlatform = gin.PlatformGoogleAppEngine
	default:
		engine.TrustedPlatform = strings.TrimSpace(platform)
	}
	return nil
}

// RealIP stores the client IP under "real_ip" for the rate limiter and logs.
// Forwarding headers only count when TrustProxies allowed them.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxRealIPKey, realIP(c))
		c.Next()
	}
}

func realIP(c *gin.Context) string {
	return c.ClientIP()
}
