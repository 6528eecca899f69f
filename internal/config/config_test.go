package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "WORDLE_WORDS_FILE", "WORDLE_WORDS_FORMAT", "WORDLE_SAVE_FILE", "WORDLE_STATS_DB", "WORDLE_DAILY_SALT"} {
		t.Setenv(k, "")
	}
	c := Load("warn")
	if c.LogLevel != "warn" || c.SaveFile != "save_state.json" || c.WordsFormat != words.FormatStream {
		t.Errorf("defaults = %+v", c)
	}
	if !c.HistoryEnabled() || c.DailySalt != "" {
		t.Errorf("history/daily defaults = %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WORDLE_WORDS_FORMAT", "lines")
	t.Setenv("WORDLE_STATS_DB", "off")
	t.Setenv("WORDLE_SAVE_FILE", "/tmp/x.json")
	c := Load("warn")
	if c.WordsFormat != words.FormatLines || c.HistoryEnabled() || c.SaveFile != "/tmp/x.json" {
		t.Errorf("overrides = %+v", c)
	}
}

func TestLoadDictionary(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "list.txt")
	if err := os.WriteFile(p, []byte("appleangle"), 0o644); err != nil {
		t.Fatal(err)
	}
	d := LoadDictionary(Config{WordsFile: p, WordsFormat: words.FormatStream})
	if d.Len() != 2 || !d.Contains("angle") {
		t.Errorf("words = %v", d.Words())
	}

	// Missing file falls back to the embedded list.
	d = LoadDictionary(Config{WordsFile: filepath.Join(dir, "missing.txt")})
	if d.Len() == 0 {
		t.Error("embedded fallback is empty")
	}
}
