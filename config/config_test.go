package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := Load()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	cfg := Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, time.Hour, cfg.AccessTTL)
	assert.Equal(t, int64(2<<20), cfg.UploadMaxBytes)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Empty(t, cfg.ESAddrs())
	assert.Empty(t, cfg.TrustedProxyList())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_TTL", "soon")
	t.Setenv("DB_MAX_CONNS", "many")
	cfg := Load()
	assert.Equal(t, time.Hour, cfg.AccessTTL)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
}

func TestTrustedProxyList(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")
	cfg := Load()
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxyList())
}
