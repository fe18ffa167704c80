package main

import (
	"context"
	"log"
	"os"
	"strings"

	"airwave/config"
	"airwave/di"
	"airwave/helper"
	"airwave/shared/logger"

	zlog "github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatalf("usage: migrate <%s|seed [file]>", strings.Join(helper.Actions(), "|"))
	}

	cfg := config.Get()

	if os.Args[1] == "seed" {
		logger.InitLogger()
		logger.SetLogLevel(cfg)

		if err := seed(cfg); err != nil {
			log.Fatal(err)
		}

		return
	}

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal(err)
	}
}

// seed inserts the stations of the catalog file that are not stored yet.
func seed(cfg *config.Config) error {
	path := cfg.Seed.StationsFile
	if len(os.Args) > argLength {
		path = os.Args[2]
	}

	catalog, err := config.LoadStationCatalog(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	added, err := di.InitializeStationSeeder().Seed(context.Background(), *catalog)
	if err != nil {
		return err //nolint:wrapcheck
	}

	zlog.Info().Str("file", path).Int("added", added).Int("catalog", len(catalog.Stations)).Msg("stations seeded")

	return nil
}
