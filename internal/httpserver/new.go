package httpserver

import (
	"database/sql"
	"errors"

	"conversation-srv/config"
	pkgKafka "conversation-srv/pkg/kafka"
	"conversation-srv/pkg/log"
	pkgRedis "conversation-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB
	readDB     *sql.DB

	// Cache & Messaging Configuration
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer

	config *config.Config
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB
	// ReadDB serves the conversation reads. Defaults to PostgresDB.
	ReadDB *sql.DB

	// Cache & Messaging Configuration
	RedisClient pkgRedis.IRedis
	// KafkaProducer is optional; reassignment events are not published without it.
	KafkaProducer pkgKafka.IProducer

	Config *config.Config
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,
		readDB:     cfg.ReadDB,

		// Cache & Messaging Configuration
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,

		config: cfg.Config,
	}
	if srv.readDB == nil {
		srv.readDB = srv.postgresDB
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Cache Configuration
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}

	return nil
}
