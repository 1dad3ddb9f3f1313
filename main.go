// main.go
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"movie-booking/cmd"
	"movie-booking/internal/wire"
	"movie-booking/pkg/cache"
	"movie-booking/pkg/database"
	"movie-booking/pkg/events"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using zap production logger.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}
	if config.Database.Seed {
		n, err := database.Seed(ctx, db)
		if err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
		if n > 0 {
			logger.Info("Seeded demo movies", zap.Int("count", n))
		}
	}

	// Optional movie cache
	var movieCache cache.MovieCache = cache.Noop{}
	if config.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, config.Redis.Addr, config.Redis.Password, config.Redis.DB)
		if err != nil {
			logger.Warn("Redis unavailable, movie cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			movieCache = cache.NewRedisCache(client, config.Redis.TTL)
			logger.Info("Movie cache enabled", zap.String("addr", config.Redis.Addr), zap.Duration("ttl", config.Redis.TTL))
		}
	}

	// Optional booking events
	var publisher events.Publisher = events.Noop{}
	if len(config.Kafka.Brokers) > 0 {
		writer := events.NewKafkaWriter(config.Kafka.Brokers, config.Kafka.BookingTopic, logger)
		publisher = events.NewKafkaPublisher(writer, config.Kafka.BookingTopic, logger)
		logger.Info("Booking events enabled", zap.Strings("brokers", config.Kafka.Brokers))
	}
	defer publisher.Close()

	// Wire all dependencies
	app := wire.Wiring(wire.Deps{
		DB:        db,
		Cache:     movieCache,
		Publisher: publisher,
	}, config, logger)

	if err := cmd.APIServer(ctx, app.Router, config, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
