package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/session"
	"github.com/robalobadob/wordle/apps/go-cli/internal/stats"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/ui"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	cfg := config.Load("warn")
	config.SetupLogging(cfg.LogLevel)

	dict := config.LoadDictionary(cfg)
	if dict.Len() == 0 {
		log.Fatal().Err(words.ErrEmptyDictionary).Msg("no words to play with")
	}

	var opts []session.Option
	if cfg.HistoryEnabled() {
		hist, err := stats.Open(cfg.StatsDB)
		if err != nil {
			log.Warn().Err(err).Str("db", cfg.StatsDB).Msg("round history disabled")
		} else {
			defer hist.Close()
			opts = append(opts, session.WithRecorder(hist))
		}
	}
	if cfg.DailySalt != "" {
		opts = append(opts, session.WithFirstPicker(daily.Picker(cfg.DailySalt, time.Now)))
	}

	sess := session.New(dict, store.NewFileStore(cfg.SaveFile), ui.NewStdio(), opts...)
	if err := sess.Run(context.Background()); err != nil {
		if errors.Is(err, words.ErrEmptyDictionary) {
			log.Fatal().Err(err).Msg("cannot start a round")
		}
		log.Error().Err(err).Msg("game exited")
	}
}
