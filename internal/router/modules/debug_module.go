package modules

import (
	"expvar"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/wisata-api/internal/interface/middleware"
)

var publishPoolStats sync.Once

type DebugModule struct {
	Pool  *pgxpool.Pool
	Guard Guard
}

func NewDebugModule(pool *pgxpool.Pool, g Guard) *DebugModule {
	return &DebugModule{Pool: pool, Guard: g}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	if m.Pool != nil {
		publishPoolStats.Do(func() {
			pool := m.Pool
			expvar.Publish("pgpool", expvar.Func(func() any {
				s := pool.Stat()
				return map[string]any{
					"total_conns":    s.TotalConns(),
					"idle_conns":     s.IdleConns(),
					"acquired_conns": s.AcquiredConns(),
					"max_conns":      s.MaxConns(),
					"acquire_count":  s.AcquireCount(),
				}
			}))
		})
	}
	// expvar metrics, rate limited per IP except for private network scrapers
	rl := middleware.RateLimit(m.Guard.Redis, 120, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
