package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is not set. There is no
// fallback secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort   string   `mapstructure:"PORT"`
	Env          string   `mapstructure:"ENV"`
	LogLevel     string   `mapstructure:"LOG_LEVEL"`
	DatabaseURL  string   `mapstructure:"DATABASE_URL"`
	ResetDB      bool     `mapstructure:"RESET_DB"`
	RedisAddr    string   `mapstructure:"REDIS_ADDR"`
	RedisDB      int      `mapstructure:"REDIS_DB"`
	RedisPass    string   `mapstructure:"REDIS_PASSWORD"`
	JWTSecret    string   `mapstructure:"JWT_SECRET"`
	AuthRequired bool     `mapstructure:"AUTH_REQUIRED"`
	CORSOrigins  []string `mapstructure:"CORS_ORIGINS"`
	SwaggerHost  string   `mapstructure:"SWAGGER_HOST"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "DATABASE_URL", "RESET_DB",
	"REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD",
	"JWT_SECRET", "AUTH_REQUIRED", "CORS_ORIGINS", "SWAGGER_HOST",
}

// Load builds Config from the environment (and an optional .env file) with
// sensible defaults for everything except the signing secret.
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	return cfg, nil
}

// Read is Load without validation. Tools that never sign tokens, like the
// seed command, use it.
func Read() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "5001")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "clinic:clinic@tcp(localhost:3306)/clinic?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("RESET_DB", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env is optional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// viper only splits slices given as real lists, not env strings
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	return cfg, nil
}

// IsDev reports whether the service runs in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
