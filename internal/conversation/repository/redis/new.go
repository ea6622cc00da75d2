package redis

import (
	repo "conversation-srv/internal/conversation/repository"
	"conversation-srv/pkg/log"
	"conversation-srv/pkg/redis"
)

type implCacheRepository struct {
	redis redis.IRedis
	l     log.Logger
}

// New creates a new CacheRepository backed by Redis.
func New(redis redis.IRedis, l log.Logger) repo.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
