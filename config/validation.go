package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the configuration is internally consistent for the
// selected source kind and catalog backend.
func Validate(cfg *Config) error {
	var errors []string

	switch cfg.SourceKind {
	case "http":
		if cfg.RecipesURL == "" {
			errors = append(errors, "RECIPES_URL is required for the http source")
		}
		if cfg.TemplatesURL == "" {
			errors = append(errors, "TEMPLATES_URL is required for the http source")
		}
	case "file":
		if cfg.RecipesPath == "" {
			errors = append(errors, "RECIPES_PATH is required for the file source")
		}
		if cfg.TemplatesPath == "" {
			errors = append(errors, "TEMPLATES_PATH is required for the file source")
		}
	case "s3":
		if cfg.S3Bucket == "" {
			errors = append(errors, "S3_BUCKET_NAME is required for the s3 source")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown SOURCE_KIND %q (expected http, file or s3)", cfg.SourceKind))
	}

	switch cfg.CatalogBackend {
	case "builtin":
	case "db":
		if cfg.CatalogDSN == "" {
			errors = append(errors, "CATALOG_DSN is required for the db catalog backend")
		}
		if cfg.CatalogDriver != "sqlite" && cfg.CatalogDriver != "postgres" {
			errors = append(errors, fmt.Sprintf("unknown CATALOG_DRIVER %q (expected sqlite or postgres)", cfg.CatalogDriver))
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown CATALOG_BACKEND %q (expected builtin or db)", cfg.CatalogBackend))
	}

	if cfg.AdminJWTSecret == "" {
		errors = append(errors, "ADMIN_JWT_SECRET is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
