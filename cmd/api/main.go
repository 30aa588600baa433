package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/ovenworks/bakelab/config"
	"github.com/ovenworks/bakelab/internal/api"
	"github.com/ovenworks/bakelab/internal/catalog"
	"github.com/ovenworks/bakelab/internal/database"
	"github.com/ovenworks/bakelab/internal/loader"
	"github.com/ovenworks/bakelab/internal/middleware"
	"github.com/ovenworks/bakelab/internal/router"
	"github.com/ovenworks/bakelab/internal/server"
	"github.com/ovenworks/bakelab/internal/service"
)

func main() {
	ctx := context.Background()

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Redis is optional; the service degrades to uncached, unthrottled
	// operation without it.
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Redis unavailable, continuing without caching: %v", err)
			redisClient = nil
		}
	}

	source, err := newSource(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up configuration source: %v", err)
	}

	ingredients, err := newCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to set up ingredient catalog: %v", err)
	}

	svc := service.NewRecipeService(loader.New(source), ingredients)
	svc.Initialize(ctx)

	recipeHandler := api.NewRecipeHandler(svc, redisClient)
	adminHandler := api.NewAdminHandler(svc, redisClient)

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewQueryRateLimiter(redisClient)
	}

	engine := router.SetupRouter(cfg, recipeHandler, adminHandler, limiter)
	srv := server.New(engine, cfg.ServerHost+":"+cfg.ServerPort)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// newSource builds the configuration source selected by SOURCE_KIND.
func newSource(ctx context.Context, cfg *config.Config) (loader.Source, error) {
	switch cfg.SourceKind {
	case "file":
		return &loader.FileSource{
			RecipesPath:   cfg.RecipesPath,
			TemplatesPath: cfg.TemplatesPath,
		}, nil
	case "s3":
		s3cfg, err := config.NewS3Config(ctx, cfg.S3Bucket)
		if err != nil {
			return nil, err
		}
		return &loader.S3Source{
			Client:       s3cfg.Client,
			Bucket:       s3cfg.BucketName,
			RecipesKey:   cfg.S3RecipesKey,
			TemplatesKey: cfg.S3TemplatesKey,
		}, nil
	default:
		return loader.NewHTTPSource(cfg.RecipesURL, cfg.TemplatesURL), nil
	}
}

// newCatalog builds the ingredient catalog selected by CATALOG_BACKEND.
func newCatalog(cfg *config.Config) (catalog.Catalog, error) {
	if cfg.CatalogBackend != "db" {
		return catalog.Builtin(), nil
	}

	db, err := database.OpenCatalog(cfg.CatalogDriver, cfg.CatalogDSN)
	if err != nil {
		return nil, err
	}
	return catalog.NewDBCatalog(db), nil
}
