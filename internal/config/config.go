// internal/config/config.go
//
// Settings and logging shared by both binaries.
//
// Responsibilities:
//   - Read .env (if present) and the WORDLE_* / LOG_LEVEL environment variables.
//   - Configure zerolog: console writer on stderr, level from LOG_LEVEL.
//   - Load the dictionary, falling back to the embedded list when the file is missing.

package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// Config holds every tunable.
type Config struct {
	LogLevel    string       // LOG_LEVEL
	WordsFile   string       // WORDLE_WORDS_FILE
	WordsMarker string       // WORDLE_WORDS_MARKER
	WordsFormat words.Format // WORDLE_WORDS_FORMAT: stream | lines
	SaveFile    string       // WORDLE_SAVE_FILE
	StatsDB     string       // WORDLE_STATS_DB; "off" disables history
	DailySalt   string       // WORDLE_DAILY_SALT; non-empty enables the daily word
	StatsAddr   string       // WORDLE_STATS_ADDR (stats server only)
}

// Load reads .env (if present) and the environment. defaultLevel is used when LOG_LEVEL is unset.
func Load(defaultLevel string) Config {
	_ = godotenv.Load()
	return Config{
		LogLevel:    getEnv("LOG_LEVEL", defaultLevel),
		WordsFile:   getEnv("WORDLE_WORDS_FILE", filepath.Join("resources", "words.txt")),
		WordsMarker: getEnv("WORDLE_WORDS_MARKER", "go.mod"),
		WordsFormat: words.ParseFormat(getEnv("WORDLE_WORDS_FORMAT", string(words.FormatStream))),
		SaveFile:    getEnv("WORDLE_SAVE_FILE", store.DefaultSaveFile),
		StatsDB:     getEnv("WORDLE_STATS_DB", filepath.Join("data", "stats.db")),
		DailySalt:   os.Getenv("WORDLE_DAILY_SALT"),
		StatsAddr:   getEnv("WORDLE_STATS_ADDR", "127.0.0.1:5176"),
	}
}

// HistoryEnabled reports whether the round history database is configured.
func (c Config) HistoryEnabled() bool {
	return c.StatsDB != "" && c.StatsDB != "off"
}

// SetupLogging points the global zerolog logger at stderr in console format.
func SetupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr(), TimeFormat: "15:04:05"})
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// LoadDictionary locates and parses the word list. When no file can be
// found the embedded list is used; a file that exists but cannot be read
// is reported and yields an empty dictionary.
func LoadDictionary(c Config) *words.Dictionary {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	path, err := words.Locate(cwd, c.WordsFile, c.WordsMarker)
	if err != nil {
		log.Info().Str("file", c.WordsFile).Msg("word list not found, using embedded list")
		d, derr := words.Default()
		if derr != nil {
			log.Error().Err(derr).Msg("read embedded word list")
			return words.New(nil)
		}
		return d
	}
	d, err := words.Load(path, c.WordsFormat)
	if err != nil {
		log.Error().Err(err).Msg("failed to load word list")
		return words.New(nil)
	}
	log.Debug().Str("file", path).Int("words", d.Len()).Msg("word list loaded")
	return d
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
