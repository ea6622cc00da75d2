package redis

import (
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	// DefaultConnectTimeout bounds the initial ping.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultPoolSize matches the cache fan-out of one reassigned chunk.
	DefaultPoolSize = 50
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
)

// RedisConfig holds Redis configuration. Zero timeouts use the go-redis defaults.
type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (c RedisConfig) options() *goredis.Options {
	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	return &goredis.Options{
		Addr:         fmt.Sprintf("%s:%d", c.Host, c.Port),
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     poolSize,
		ReadTimeout:  c.ReadTimeout,
		WriteTimeout: c.WriteTimeout,
	}
}

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
