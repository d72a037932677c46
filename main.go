// main.go
package main

import (
	"log"

	"food-ordering/cmd"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/wire"
	"food-ordering/pkg/database"
	"food-ordering/pkg/ratelimit"
	"food-ordering/pkg/storage"
	"food-ordering/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := database.Migrate(config.Database.URL()); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Image storage
	imageHost, err := storage.NewMinioImageHost(config.Storage)
	if err != nil {
		logger.Fatal("Failed to init image storage", zap.Error(err))
	}

	deps := wire.Deps{
		Repo:      repository.NewRepository(db, logger),
		Tokens:    utils.NewTokenManager(config.JWT.Secret, config.JWT.TTL()),
		ImageHost: imageHost,
	}

	// Rate limiting is optional
	if config.Redis.Addr != "" {
		limiter, err := ratelimit.NewFixedWindowLimiter(
			config.Redis.Addr,
			config.Redis.Password,
			config.App.Name+":ratelimit",
			config.RateLimit.Requests,
			config.RateLimit.Window,
		)
		if err != nil {
			logger.Fatal("Failed to init rate limiter", zap.Error(err))
		}
		defer limiter.Close()
		deps.Limiter = limiter
		logger.Info("Rate limiting enabled", zap.String("redis", config.Redis.Addr))
	}

	// Wire all dependencies
	app := wire.Wiring(deps, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
