// cmd/wordle-stats/main.go
//
// Entry point for the read-only stats server.
//
// Responsibilities:
//   - Load configuration and logging.
//   - Open the SQLite round history unless it is disabled.
//   - Serve history and saved-round progress as JSON over HTTP.

package main

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-cli/internal/stats"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

func main() {
	cfg := config.Load("info")
	config.SetupLogging(cfg.LogLevel)

	dict := config.LoadDictionary(cfg)

	var hist httpserver.History
	if cfg.HistoryEnabled() {
		db, err := stats.Open(cfg.StatsDB)
		if err != nil {
			log.Fatal().Err(err).Str("db", cfg.StatsDB).Msg("failed to open round history")
		}
		defer db.Close()
		hist = db
	}

	srv := httpserver.New(store.NewFileStore(cfg.SaveFile), hist, dict)
	log.Info().Str("addr", cfg.StatsAddr).Msg("starting wordle-stats")
	if err := srv.Start(cfg.StatsAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
