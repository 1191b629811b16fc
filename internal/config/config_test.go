package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TASKS_PER_PAGE", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg := LoadConfig()

	require.Equal(t, 5, cfg.TasksPerPage)
	require.Equal(t, time.Hour, cfg.JWTTTL)
	require.Nil(t, cfg.TrustedProxies)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("TASKS_PER_PAGE", "20")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := LoadConfig()

	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, 20, cfg.TasksPerPage)
	require.Equal(t, 15*time.Minute, cfg.JWTTTL)
	require.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestGetEnvInt_RejectsGarbage(t *testing.T) {
	t.Setenv("TASKS_PER_PAGE", "-3")
	require.Equal(t, 5, getEnvInt("TASKS_PER_PAGE", 5))

	t.Setenv("TASKS_PER_PAGE", "five")
	require.Equal(t, 5, getEnvInt("TASKS_PER_PAGE", 5))
}

func TestParseTrustedProxies(t *testing.T) {
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, parseTrustedProxies(" 10.0.0.1, ,10.0.0.2 "))
	require.Nil(t, parseTrustedProxies(" , "))
}
