package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "tradepost", cfg.MongoDatabase)
	assert.Equal(t, "/api/users", cfg.UserServiceAPIPath)
	assert.Equal(t, 1, cfg.States.Published)
	assert.Equal(t, 5, cfg.States.InProcess)
	assert.Equal(t, 6, cfg.States.Approved)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("STATE_IN_PROCESS_ID", "42")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, 42, cfg.States.InProcess)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SOME_INT", "7")
	assert.Equal(t, 7, GetEnvInt("SOME_INT", 3))

	t.Setenv("SOME_INT", "not a number")
	assert.Equal(t, 3, GetEnvInt("SOME_INT", 3))

	assert.Equal(t, 3, GetEnvInt("MISSING_INT", 3))
}

func TestLoadJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	jwtCfg := LoadJWT()
	assert.Equal(t, []byte("test-secret"), jwtCfg.Secret)
	assert.Equal(t, 24, jwtCfg.TTLHours)
}
