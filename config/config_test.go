package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_RedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "3")

	cfg := Load()
	require.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_RedisDBDefaultsToZero(t *testing.T) {
	t.Setenv("REDIS_DB", "")

	cfg := Load()
	require.Zero(t, cfg.Redis.DB)
}
