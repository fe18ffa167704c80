package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"

	"airwave/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

type action struct {
	run  func(*migrate.Migrate) error
	done string
}

var actions = map[string]action{
	"up":      {run: (*migrate.Migrate).Up, done: "Database migrations applied"},
	"step-up": {run: func(m *migrate.Migrate) error { return m.Steps(1) }, done: "Database migrated one step up"},
	"down":    {run: func(m *migrate.Migrate) error { return m.Steps(-1) }, done: "Database migrated one step down"},
	"drop":    {run: (*migrate.Migrate).Down, done: "Database migrations rolled back"},
}

// Actions lists the accepted Runner actions.
func Actions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// DatabaseURL is the migrate connection string for the write database.
func DatabaseURL(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	query := url.Values{}
	query.Set("sslmode", write.SSLMode)
	query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(write.Username, write.Password),
		Host:     net.JoinHostPort(write.Host, write.Port),
		Path:     cfg.DB.Postgres.Prefix + write.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Runner applies one migration action. ErrNoChange is not an error.
func Runner(cfg *config.Config, name string) error {
	act, ok := actions[name]
	if !ok {
		return fmt.Errorf("unknown migration action %q, use one of %s", name, strings.Join(Actions(), ", "))
	}

	mig, err := migrate.New(migrationsSource, DatabaseURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}
	defer mig.Close()

	if err = act.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", name, err)
	}

	log.Info().Str("action", name).Msg(act.done)

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}
