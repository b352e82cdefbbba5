package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, 8080, cfg.RESTPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, 50, cfg.MaxMazeDimension)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("REST_PORT", "9000")
		t.Setenv("STORAGE_BACKEND", StorageRedis)
		t.Setenv("REDIS_TTL_SECONDS", "60")
		t.Setenv("MAX_MAZE_DIMENSION", "20")
		cfg := Load()

		assert.Equal(t, 9000, cfg.RESTPort)
		assert.Equal(t, StorageRedis, cfg.StorageBackend)
		assert.Equal(t, 60, cfg.RedisTTLSeconds)
		assert.Equal(t, 20, cfg.MaxMazeDimension)
	})
}
