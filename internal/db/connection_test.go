package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "host=localhost port=5432 user=postgres password=admin dbname=hrapi sslmode=disable", cfg.DSN())

	cfg.URL = "postgres://u:p@db:5432/hr"
	assert.Equal(t, "postgres://u:p@db:5432/hr", cfg.DSN())
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	assert.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_create_hr_schema.up.sql")
	assert.Contains(t, names, "000001_create_hr_schema.down.sql")
}
