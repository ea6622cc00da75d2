package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"conversation-srv/config"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 5 * time.Second
	// defaultMaxIdleConns is the maximum number of idle connections in the pool
	defaultMaxIdleConns = 25
	// defaultMaxOpenConns is the maximum number of open connections to the database
	defaultMaxOpenConns = 200
	// defaultConnMaxLifetime is the maximum amount of time a connection may be reused
	defaultConnMaxLifetime = 30 * time.Minute
	// defaultConnMaxIdleTime is the maximum amount of time a connection may be idle
	defaultConnMaxIdleTime = 5 * time.Minute
)

var (
	instance     *sql.DB
	readInstance *sql.DB
	mu           sync.RWMutex
)

// Connect opens the primary (read-write) pool. Returns the existing pool if already connected.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	db, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	instance = db
	return instance, nil
}

// ConnectReadOnly opens the read replica pool. When no replica is configured
// the primary pool is returned, so Connect must be called first.
func ConnectReadOnly(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if readInstance != nil {
		return readInstance, nil
	}

	replica, ok := cfg.ReadReplica()
	if !ok {
		if instance == nil {
			return nil, fmt.Errorf("PostgreSQL primary not initialized. Call Connect() first")
		}
		readInstance = instance
		return readInstance, nil
	}

	db, err := open(ctx, replica)
	if err != nil {
		return nil, fmt.Errorf("read replica: %w", err)
	}
	readInstance = db
	return readInstance, nil
}

func open(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	db, err := sql.Open("postgres", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	return db, nil
}

// dsn builds a lib/pq connection string.
// Supported SSL modes: disable, require, verify-ca, verify-full.
func dsn(cfg config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	searchPath := cfg.Schema
	if searchPath == "" {
		searchPath = "public"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode, searchPath)
}

// Disconnect closes both pools and resets the singletons.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	var firstErr error
	if readInstance != nil && readInstance != instance {
		if err := readInstance.Close(); err != nil {
			firstErr = fmt.Errorf("failed to close PostgreSQL read replica: %w", err)
		}
	}
	readInstance = nil

	if instance != nil {
		if err := instance.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close PostgreSQL connection: %w", err)
		}
	}
	instance = nil
	return firstErr
}

// HealthCheck pings the primary and, when distinct, the read replica.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("PostgreSQL client not initialized")
	}
	if err := instance.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %w", err)
	}
	if readInstance != nil && readInstance != instance {
		if err := readInstance.PingContext(ctx); err != nil {
			return fmt.Errorf("PostgreSQL read replica health check failed: %w", err)
		}
	}
	return nil
}
