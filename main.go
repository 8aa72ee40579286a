package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/vouch4food/vouch4food/pkg/audit"
	"github.com/vouch4food/vouch4food/pkg/auth"
	"github.com/vouch4food/vouch4food/pkg/config"
	"github.com/vouch4food/vouch4food/pkg/database"
	"github.com/vouch4food/vouch4food/pkg/geocode"
	"github.com/vouch4food/vouch4food/pkg/handlers"
	"github.com/vouch4food/vouch4food/pkg/logging"
	"github.com/vouch4food/vouch4food/pkg/middleware"
	"github.com/vouch4food/vouch4food/pkg/repositories"
	"github.com/vouch4food/vouch4food/pkg/retry"
	"github.com/vouch4food/vouch4food/pkg/services"
	"github.com/vouch4food/vouch4food/pkg/spoonacular"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("database", logging.SanitizeConnectionString(cfg.Database.ConnectionString())))

	ctx := context.Background()

	// The database may still be starting when we are; wait it out.
	var db *database.DB
	if err := retry.Do(ctx, retry.StartupConfig(), func() error {
		var connErr error
		db, connErr = database.NewConnection(ctx, &database.Config{
			URL:            cfg.Database.ConnectionString(),
			MaxConnections: cfg.Database.MaxConnections,
		})
		return connErr
	}); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// golang-migrate drives a database/sql connection, separate from the pool.
	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := migrationDB.Close(); err != nil {
		logger.Warn("Failed to close migration connection", zap.Error(err))
	}

	auth.InitSessionStore(cfg.SessionSecret, cfg.Env == "production")

	// External search clients
	geocoder := geocode.NewClient(cfg.Geocoding, logger)
	searchClient := spoonacular.NewClient(cfg.Spoonacular, logger)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	menuItemRepo := repositories.NewMenuItemRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)

	// Services
	auditor := audit.NewSecurityAuditor(logger)
	userService := services.NewUserService(userRepo, geocoder, logger)
	restaurantService := services.NewRestaurantService(searchClient, restaurantRepo, logger)
	menuItemService := services.NewMenuItemService(searchClient, menuItemRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, restaurantRepo, menuItemRepo, auditor, logger)
	favoriteService := services.NewFavoriteService(favoriteRepo, restaurantRepo, menuItemRepo, logger)

	// Handlers
	authMiddleware := auth.NewMiddleware(logger)
	mux := http.NewServeMux()

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewAuthHandler(userService, auditor, logger).RegisterRoutes(mux)
	handlers.NewUserHandler(userService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewRestaurantHandler(restaurantService, reviewService, userService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewMenuItemHandler(menuItemService, reviewService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewReviewHandler(reviewService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewFavoriteHandler(favoriteService, logger).RegisterRoutes(mux, authMiddleware)

	handler := middleware.RequestLogger(logger)(mux)

	addr := net.JoinHostPort(cfg.BindAddr, cfg.Port)
	logger.Info("Starting vouch4food",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
