package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shelterapi/internal/cache"
	"shelterapi/internal/config"
	"shelterapi/internal/database"
	"shelterapi/internal/database/migration"
	handlers "shelterapi/internal/http/handler"
	"shelterapi/internal/http/middleware"
	"shelterapi/internal/otel"
	"shelterapi/internal/repository/postgres"
	"shelterapi/internal/service"
	"shelterapi/internal/storage"
)

func main() {
	ctx := context.Background()
	loc := time.UTC

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Initialize OpenTelemetry tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Redis-backed listing cache; disabled entirely when no address is set
	listCache := cache.NewNoop()
	if cfg.Redis.Addr != "" {
		listCache, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
	}
	cacheTTL := time.Duration(cfg.Redis.TTLSec) * time.Second

	// Repositories
	animalRepo := postgres.NewAnimalPostgres(db)
	breedRepo := postgres.NewBreedPostgres(db)
	userRepo := postgres.NewUserPostgres(db)
	shelterRepo := postgres.NewShelterPostgres(db)
	slotRepo := postgres.NewSlotPostgres(db)
	requestRepo := postgres.NewOwnershipRequestPostgres(db)
	activityRepo := postgres.NewActivityPostgres(db)
	fosteringRepo := postgres.NewFosteringPostgres(db)
	favoriteRepo := postgres.NewFavoritePostgres(db)
	imageRepo := postgres.NewImagePostgres(db)

	// Services
	svcs := handlers.Services{
		Animals:   service.NewAnimalService(animalRepo, breedRepo, shelterRepo, listCache, cacheTTL),
		Breeds:    service.NewBreedService(breedRepo),
		Users:     service.NewUserService(userRepo),
		Shelters:  service.NewShelterService(shelterRepo, slotRepo, userRepo),
		Ownership: service.NewOwnershipService(requestRepo, animalRepo, shelterRepo, listCache),
		Activities: service.NewActivityService(
			activityRepo, slotRepo, animalRepo, shelterRepo, requestRepo, fosteringRepo,
		),
		Fosterings: service.NewFosteringService(fosteringRepo, animalRepo, shelterRepo, listCache),
		Favorites:  service.NewFavoriteService(favoriteRepo, animalRepo),
		Images:     service.NewImageService(objStore, imageRepo, animalRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Global middleware: request IDs, actor extraction, structured logs,
	// traces, and HTTP metrics.
	app.Use(middleware.RequestID())
	app.Use(middleware.Actor())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	reg := prometheus.NewRegistry()
	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
