package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
	// keep a stray .env in the package dir from leaking into tests
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.AuthRequired)
	assert.False(t, cfg.ResetDB)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.Contains(t, cfg.DatabaseURL, "parseTime=True")
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "production")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("CORS_ORIGINS", "https://clinic.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, []string{"https://clinic.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoad_RequiresSecret(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
	assert.Nil(t, cfg)
}

func TestRead_SkipsSecretCheck(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "seed:seed@tcp(db:3306)/clinic")

	cfg, err := Read()
	require.NoError(t, err)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, "seed:seed@tcp(db:3306)/clinic", cfg.DatabaseURL)
}
