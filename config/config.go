package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - campaign contacts, messages, assignments
	Postgres PostgresConfig

	// Redis - campaign contact cache
	Redis RedisConfig

	// Kafka - reassignment events
	Kafka KafkaConfig

	Conversations ConversationsConfig

	// MaxContactsPerTexter is the max_contacts value given to assignments
	// created during reassignment.
	MaxContactsPerTexter int
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres.
// Read* fields point at a read replica; an empty ReadHost means the primary is used for reads.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string

	ReadHost     string
	ReadPort     int
	ReadUser     string
	ReadPassword string
}

// ReadReplica returns the connection settings of the read replica.
func (c PostgresConfig) ReadReplica() (PostgresConfig, bool) {
	if c.ReadHost == "" {
		return c, false
	}
	r := c
	r.Host = c.ReadHost
	if c.ReadPort != 0 {
		r.Port = c.ReadPort
	}
	if c.ReadUser != "" {
		r.User = c.ReadUser
		r.Password = c.ReadPassword
	}
	return r, true
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
	Enabled  bool
}

// ConversationsConfig tunes conversation retrieval.
type ConversationsConfig struct {
	// Recent disables the default cc_id DESC ordering on paged id queries.
	Recent bool
	// CountTimeout bounds the total count query. Zero disables the bound.
	CountTimeout time.Duration
	// CacheConcurrency bounds concurrent cache updates per reassigned chunk.
	CacheConcurrency int
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("conversation-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/conversation-srv/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")
	cfg.Postgres.ReadHost = viper.GetString("postgres.read_host")
	cfg.Postgres.ReadPort = viper.GetInt("postgres.read_port")
	cfg.Postgres.ReadUser = viper.GetString("postgres.read_user")
	cfg.Postgres.ReadPassword = viper.GetString("postgres.read_password")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.PoolSize = viper.GetInt("redis.pool_size")

	// Kafka - event publishing (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")

	// Conversations
	cfg.Conversations.Recent = viper.GetBool("conversations.recent")
	cfg.Conversations.CountTimeout = time.Duration(viper.GetInt("conversations.count_timeout_ms")) * time.Millisecond
	cfg.Conversations.CacheConcurrency = viper.GetInt("conversations.cache_concurrency")

	cfg.MaxContactsPerTexter = viper.GetInt("max_contacts_per_texter")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")
	viper.SetDefault("postgres.read_host", "")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 50)

	// Kafka
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "conversation.events")
	viper.SetDefault("kafka.client_id", "conversation-srv")

	// Conversations
	viper.SetDefault("conversations.recent", false)
	viper.SetDefault("conversations.count_timeout_ms", 4000)
	viper.SetDefault("conversations.cache_concurrency", 50)

	viper.SetDefault("max_contacts_per_texter", 0)
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.Conversations.CountTimeout < 0 {
		return fmt.Errorf("conversations.count_timeout_ms must not be negative")
	}
	if cfg.MaxContactsPerTexter < 0 {
		return fmt.Errorf("max_contacts_per_texter must not be negative")
	}
	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}
	return nil
}
