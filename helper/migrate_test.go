package helper_test

import (
	"testing"

	"airwave/config"
	"airwave/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActions(t *testing.T) {
	assert.Equal(t, []string{"down", "drop", "step-up", "up"}, helper.Actions())
}

func TestRunnerRejectsUnknownAction(t *testing.T) {
	err := helper.Runner(&config.Config{}, "sideways")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "step-up")
}

func TestDatabaseURL(t *testing.T) {
	var cfg config.Config
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "radio"
	cfg.DB.Postgres.Write.Password = "p@ss"
	cfg.DB.Postgres.Write.Name = "airwave"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	assert.Equal(t,
		"postgres://radio:p%40ss@db:5432/test_airwave?sslmode=disable&x-migrations-table=schema_migrations",
		helper.DatabaseURL(&cfg))
}
