// Command seed resets the demo database to the fixture set: one customer and
// six transactions. It is the explicit reset-to-fixture entry point; the
// server performs the same reset on startup unless told otherwise.
package main

import (
	"context"
	"flag"

	"github.com/mkravets/bankassist/internal/logger"
	"github.com/mkravets/bankassist/internal/store"
)

func main() {
	dbPath := flag.String("db", "customer_data.db", "Path to the SQLite database file")
	flag.Parse()

	log := logger.New()

	repo, err := store.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}

	if err := repo.Reset(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to reset fixtures")
	}

	log.Info().Str("db", *dbPath).Msg("Fixture data reset")
}
