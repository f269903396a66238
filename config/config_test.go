package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the duration of the test so no stray config.yaml is found.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:3001", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, SinkFile, cfg.Persistence.Driver)
	assert.Equal(t, "./data/data.json", cfg.Persistence.FilePath)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ORKUD_SERVER_PORT", "8080")
	t.Setenv("ORKUD_PERSISTENCE_DRIVER", SinkRedis)
	t.Setenv("ORKUD_REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, SinkRedis, cfg.Persistence.Driver)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orkud.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
persistence:
  driver: s3
  s3_key: snapshots/orkud.json
s3:
  bucket: my-bucket
  use_path_style: true
rate_limit:
  enabled: false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, SinkS3, cfg.Persistence.Driver)
	assert.Equal(t, "snapshots/orkud.json", cfg.Persistence.S3Key)
	assert.Equal(t, "my-bucket", cfg.S3.Bucket)
	assert.True(t, cfg.S3.UsePathStyle)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "us-east-1", cfg.S3.Region, "unset keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	chdir(t, t.TempDir())
	t.Setenv("ORKUD_PERSISTENCE_DRIVER", "floppy")
	_, err = Load()
	assert.ErrorContains(t, err, "floppy")

	t.Setenv("ORKUD_PERSISTENCE_DRIVER", SinkMemory)
	t.Setenv("ORKUD_SERVER_PORT", "70000")
	_, err = Load()
	assert.ErrorContains(t, err, "port")
}
