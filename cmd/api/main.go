// cmd/api/main.go
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"stockmaster-api-server/config"
	"stockmaster-api-server/internal/api/routes"
	"stockmaster-api-server/internal/database"
	"stockmaster-api-server/internal/models"
	"stockmaster-api-server/internal/service"
	"stockmaster-api-server/internal/socket"
	"stockmaster-api-server/internal/store"
	"stockmaster-api-server/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	godotenv.Load()

	log, err := logger.New(false)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalw("could not load config", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var repo store.Repository
	switch cfg.Storage.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalw("failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
		}
		seed := database.DefaultItems(time.Now().UTC().Format(models.TimeLayout))
		repo = store.NewRedisRepository(client, seed)
		log.Infow("using redis storage", "addr", cfg.Redis.Addr)

	case "mongo":
		if cfg.Mongo.URI == "" {
			log.Fatalw("MONGO_URI is required")
		}
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			log.Fatalw("failed to connect to MongoDB", "error", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			log.Fatalw("MongoDB unreachable", "error", err)
		}
		repo = store.NewMongoRepository(client.Database(cfg.Mongo.DBName))
		log.Infow("using mongo storage", "db", cfg.Mongo.DBName)

	default:
		log.Fatalw("unknown storage driver", "driver", cfg.Storage.Driver)
	}

	if err := database.SeedIfEmpty(ctx, repo, log); err != nil {
		log.Fatalw("seeding failed", "error", err)
	}

	hub := socket.NewHub(log)
	svc := service.NewItemService(repo, hub, log)
	router := routes.SetupRouter(svc, hub, cfg)

	log.Infow("starting API server", "port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
