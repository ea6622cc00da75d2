package usecase

import (
	"time"

	"conversation-srv/internal/conversation"
	"conversation-srv/internal/conversation/repository"
	"conversation-srv/pkg/log"
)

// Config tunes the conversation usecase.
type Config struct {
	// Recent keeps the natural order of paged id queries instead of cc_id DESC.
	Recent bool
	// CountTimeout bounds the count query. Zero disables the bound.
	CountTimeout time.Duration
	// MaxContactsPerTexter is the quota of assignments created on reassignment.
	MaxContactsPerTexter int
	// CacheConcurrency bounds concurrent cache updates per chunk.
	CacheConcurrency int
}

// implUseCase implements the conversation.UseCase interface
type implUseCase struct {
	l        log.Logger
	repo     repository.PostgresRepository
	cache    repository.CacheRepository
	producer conversation.Producer
	cfg      Config
}

// New creates a new conversation usecase. cache and producer may be nil.
func New(
	l log.Logger,
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	producer conversation.Producer,
	cfg Config,
) conversation.UseCase {
	if cfg.CacheConcurrency <= 0 {
		cfg.CacheConcurrency = conversation.MaxCacheConcurrency
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		cache:    cache,
		producer: producer,
		cfg:      cfg,
	}
}
