package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 10, cfg.Server.RateLimitBurst)
	assert.Equal(t, time.Minute, cfg.Server.CacheTTL)
	assert.Empty(t, cfg.Dashboard.FleetFile)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadFullFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 9090
  request_ip_header: X-Real-IP
  rate_limit_per_sec: 20
  rate_limit_burst: 40
  cache_ttl_seconds: 30
logging:
  level: debug
  format: console
dashboard:
  fleet_file: /etc/rental/fleet.yaml
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "X-Real-IP", cfg.Server.RequestIPHeader)
	assert.Equal(t, 20.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 40, cfg.Server.RateLimitBurst)
	assert.Equal(t, 30*time.Second, cfg.Server.CacheTTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/etc/rental/fleet.yaml", cfg.Dashboard.FleetFile)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 3000
`))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, time.Minute, cfg.Server.CacheTTL)
}

func TestLoadClampsCacheTTL(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  cache_ttl_seconds: 86400
`))
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.Server.CacheTTL, "cached responses never outlive the hour")
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "server: ["))
	assert.Error(t, err)
}
