package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime parameters, loaded from environment variables.
type Config struct {
	Addr          string
	PublicBaseURL string

	API     APIConfig
	Cookies CookieConfig
	Storage StorageConfig
}

// APIConfig points at the store API that owns all business state.
type APIConfig struct {
	BaseURL       string
	SessionCookie string
	Timeout       time.Duration
}

// CookieConfig covers the cookies this application signs itself.
type CookieConfig struct {
	Secret []byte
	Secure bool
}

// StorageConfig configures the photo upload backing (local disk or S3).
type StorageConfig struct {
	Driver          string
	LocalDir        string
	LocalURLPrefix  string
	S3Region        string
	S3Bucket        string
	S3Prefix        string
	S3PublicBaseURL string
}

// Load reads .env when present (production uses real env vars) and validates
// the required values.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          envOr("ADDR", ":8080"),
		PublicBaseURL: envOr("PUBLIC_BASE_URL", "http://localhost:8080"),
		API: APIConfig{
			BaseURL:       os.Getenv("API_BASE_URL"),
			SessionCookie: envOr("API_SESSION_COOKIE", "session"),
			Timeout:       envDuration("API_TIMEOUT", 10*time.Second),
		},
		Cookies: CookieConfig{
			Secret: []byte(os.Getenv("COOKIE_SECRET")),
			Secure: envBool("COOKIE_SECURE", false),
		},
		Storage: StorageConfig{
			Driver:          envOr("STORAGE_DRIVER", "local"),
			LocalDir:        envOr("LOCAL_UPLOAD_DIR", "./storage/uploads"),
			LocalURLPrefix:  envOr("LOCAL_UPLOAD_URL_PREFIX", "/uploads"),
			S3Region:        os.Getenv("S3_REGION"),
			S3Bucket:        os.Getenv("S3_BUCKET"),
			S3Prefix:        envOr("S3_PREFIX", "uploads"),
			S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		},
	}

	if cfg.API.BaseURL == "" {
		return Config{}, errors.New("API_BASE_URL environment variable is required")
	}
	if len(cfg.Cookies.Secret) == 0 {
		return Config{}, errors.New("COOKIE_SECRET environment variable is required")
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
