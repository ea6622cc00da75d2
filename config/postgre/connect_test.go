package postgre

import (
	"testing"

	"conversation-srv/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	got := dsn(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "spoke"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=spoke sslmode=disable search_path=public", got)

	got = dsn(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "spoke", SSLMode: "require", Schema: "app"})
	assert.Contains(t, got, "sslmode=require")
	assert.Contains(t, got, "search_path=app")
}
