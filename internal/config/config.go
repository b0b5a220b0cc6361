package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort          = "8080"
	defaultJWTTTL        = "24h"
	defaultUploadTimeout = "60s"
	defaultVideoFolder   = "nextjs-cloudinary"
	defaultImageFolder   = "nextjs-cloudinary/images"
)

// MediaConfig holds the media-host credentials. Read once at startup and
// never mutated; the upload handlers refuse to run when it is incomplete,
// the route gate does not need it at all.
type MediaConfig struct {
	CloudName   string
	APIKey      string
	APISecret   string
	VideoFolder string
	ImageFolder string
}

// Complete reports whether every credential required for uploads is set.
func (m MediaConfig) Complete() bool {
	return m.CloudName != "" && m.APIKey != "" && m.APISecret != ""
}

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	UploadTimeout time.Duration
	Media         MediaConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        strings.TrimSpace(getEnv("PORT", defaultPort)),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		Media: MediaConfig{
			CloudName:   strings.TrimSpace(os.Getenv("CLOUDINARY_CLOUD_NAME")),
			APIKey:      strings.TrimSpace(os.Getenv("CLOUDINARY_API_KEY")),
			APISecret:   strings.TrimSpace(os.Getenv("CLOUDINARY_API_SECRET")),
			VideoFolder: strings.TrimSpace(getEnv("VIDEO_UPLOAD_FOLDER", defaultVideoFolder)),
			ImageFolder: strings.TrimSpace(getEnv("IMAGE_UPLOAD_FOLDER", defaultImageFolder)),
		},
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.UploadTimeout, err = parseDurationEnv("UPLOAD_TIMEOUT", defaultUploadTimeout)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.UploadTimeout <= 0 {
		return fmt.Errorf("UPLOAD_TIMEOUT must be > 0")
	}
	return nil
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
