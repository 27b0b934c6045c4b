// Package config reads the process configuration from the environment,
// with a .env file as a development convenience.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	Env           string
	DBDriver      string
	DBDSN         string
	RedisURL      string
	BuildCacheTTL time.Duration
	CookieSecret  []byte
	CookieSecure  bool
	CORSOrigins   []string
	ThumbWidth    int
}

func (c Config) Production() bool { return c.Env == "production" }

const minSecretLen = 32

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	c := Config{
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		Env:      envOr("APP_ENV", "development"),
		DBDriver: envOr("DB_DRIVER", "mysql"),
		DBDSN:    os.Getenv("DB_DSN"),
		RedisURL: os.Getenv("REDIS_URL"),
	}

	var errs []error
	if c.DBDSN == "" {
		errs = append(errs, errors.New("DB_DSN is required"))
	}
	if c.DBDriver != "mysql" && c.DBDriver != "postgres" {
		errs = append(errs, fmt.Errorf("DB_DRIVER %q: want mysql or postgres", c.DBDriver))
	}

	c.CookieSecret = []byte(os.Getenv("COOKIE_SECRET"))

	ttl, err := time.ParseDuration(envOr("BUILD_CACHE_TTL", "10m"))
	if err != nil {
		errs = append(errs, fmt.Errorf("BUILD_CACHE_TTL: %w", err))
	}
	c.BuildCacheTTL = ttl

	secure, err := strconv.ParseBool(envOr("COOKIE_SECURE", strconv.FormatBool(c.Production())))
	if err != nil {
		errs = append(errs, fmt.Errorf("COOKIE_SECURE: %w", err))
	}
	c.CookieSecure = secure

	width, err := strconv.Atoi(envOr("IMAGE_THUMB_WIDTH", "120"))
	if err != nil || width < 0 {
		errs = append(errs, fmt.Errorf("IMAGE_THUMB_WIDTH %q: want a non-negative integer", os.Getenv("IMAGE_THUMB_WIDTH")))
	}
	c.ThumbWidth = width

	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			c.CORSOrigins = append(c.CORSOrigins, o)
		}
	}

	return c, errors.Join(errs...)
}

// ValidateWeb checks the settings only the web server needs; the CLI tools
// run without them.
func (c Config) ValidateWeb() error {
	if len(c.CookieSecret) < minSecretLen {
		return fmt.Errorf("COOKIE_SECRET must be at least %d bytes", minSecretLen)
	}
	return nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
