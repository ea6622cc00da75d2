package postgre

import (
	"database/sql"

	"conversation-srv/internal/conversation/repository"
	"conversation-srv/pkg/log"
)

// implRepository implements repository.PostgresRepository.
// Reads that tolerate replica lag go to readDB.
type implRepository struct {
	db     *sql.DB
	readDB *sql.DB
	l      log.Logger
}

// New creates a new PostgreSQL repository for conversation domain.
// readDB may be nil, in which case db serves reads too.
func New(db, readDB *sql.DB, l log.Logger) repository.PostgresRepository {
	if readDB == nil {
		readDB = db
	}
	return &implRepository{
		db:     db,
		readDB: readDB,
		l:      l,
	}
}
