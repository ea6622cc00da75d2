package main

import (
	"context"
	"fmt"

	"conversation-srv/config"
	configKafka "conversation-srv/config/kafka"
	configPostgre "conversation-srv/config/postgre"
	configRedis "conversation-srv/config/redis"
	"conversation-srv/internal/httpserver"
	pkgKafka "conversation-srv/pkg/kafka"
	"conversation-srv/pkg/log"
	"conversation-srv/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// @title       Conversation Service API
// @description Conversation search and reassignment API.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register Prometheus metrics
	metrics.Init(prometheus.DefaultRegisterer)

	// 4. Initialize PostgreSQL (primary + read replica)
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer func() {
		if err := configPostgre.Disconnect(ctx); err != nil {
			logger.Errorf(ctx, "Failed to disconnect PostgreSQL: %v", err)
		}
	}()
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	readDB, err := configPostgre.ConnectReadOnly(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL read replica: ", err)
		return
	}
	if _, ok := cfg.Postgres.ReadReplica(); ok {
		logger.Infof(ctx, "PostgreSQL read replica connected to %s", cfg.Postgres.ReadHost)
	}

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer func() {
		if err := configRedis.Disconnect(); err != nil {
			logger.Errorf(ctx, "Failed to disconnect Redis: %v", err)
		}
	}()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect Kafka producer: ", err)
			return
		}
		defer func() {
			if err := configKafka.DisconnectProducer(); err != nil {
				logger.Errorf(ctx, "Failed to disconnect Kafka producer: %v", err)
			}
		}()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		logger.Infof(ctx, "Kafka disabled, reassignment events will not be published")
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,
		ReadDB:     readDB,

		// Cache & Messaging Configuration
		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,

		Config: cfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
