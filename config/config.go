package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Well-known resource locations, used when no override is configured.
const (
	defaultRecipesURL   = "https://assets.bakelab.dev/config/recipes.json"
	defaultTemplatesURL = "https://assets.bakelab.dev/config/step-templates.json"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost     string
	ServerPort     string
	AllowedOrigins []string

	// Configuration source (http, file or s3)
	SourceKind    string
	RecipesURL    string
	TemplatesURL  string
	RecipesPath   string
	TemplatesPath string

	// S3 source configuration
	S3Bucket       string
	S3RecipesKey   string
	S3TemplatesKey string

	// Ingredient catalog (builtin or db)
	CatalogBackend string
	CatalogDriver  string
	CatalogDSN     string

	// Redis configuration (optional; disables caching and rate
	// limiting when unset)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Admin endpoint configuration
	AdminJWTSecret string
}

// Load creates a new Config instance from environment variables and
// validates it.
func Load() (*Config, error) {
	cfg := &Config{
		ServerHost:     getenv("SERVER_HOST", "0.0.0.0"),
		ServerPort:     getenv("SERVER_PORT", "8080"),
		SourceKind:     getenv("SOURCE_KIND", "http"),
		RecipesURL:     getenv("RECIPES_URL", defaultRecipesURL),
		TemplatesURL:   getenv("TEMPLATES_URL", defaultTemplatesURL),
		RecipesPath:    os.Getenv("RECIPES_PATH"),
		TemplatesPath:  os.Getenv("TEMPLATES_PATH"),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		S3RecipesKey:   getenv("S3_RECIPES_KEY", "config/recipes.json"),
		S3TemplatesKey: getenv("S3_TEMPLATES_KEY", "config/step-templates.json"),
		CatalogBackend: getenv("CATALOG_BACKEND", "builtin"),
		CatalogDriver:  getenv("CATALOG_DRIVER", "sqlite"),
		CatalogDSN:     os.Getenv("CATALOG_DSN"),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getenv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisURL:       os.Getenv("REDIS_URL"),
		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(o))
		}
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// RedisEnabled reports whether a Redis endpoint is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != "" || c.RedisURL != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
