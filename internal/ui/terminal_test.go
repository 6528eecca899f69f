package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader("crane\r\n-1\nlast"), &out, false)

	for _, want := range []string{"crane", "-1", "last"} {
		got, err := term.ReadGuess()
		if err != nil || got != want {
			t.Fatalf("ReadGuess = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := term.ReadContinue(); err != io.EOF {
		t.Errorf("err = %v, want EOF", err)
	}
	if !strings.Contains(out.String(), "Guess: ") || !strings.Contains(out.String(), "Continue (y/n): ") {
		t.Errorf("prompts missing: %q", out.String())
	}
}

func TestRenderBoard_Plain(t *testing.T) {
	dict := words.New([]string{"apple", "angle"})
	r := game.NewRoundWithAnswer(dict, "apple")
	r.Guess("angle")

	var out bytes.Buffer
	New(strings.NewReader(""), &out, false).RenderBoard(r)
	s := out.String()
	if strings.Contains(s, "\x1b[") {
		t.Errorf("plain output contains escapes: %q", s)
	}
	if !strings.Contains(s, "- angle\n") {
		t.Errorf("guess row missing:\n%s", s)
	}
	if strings.Count(s, "\n- ") != game.MaxGuesses {
		t.Errorf("expected %d rows:\n%s", game.MaxGuesses, s)
	}
	if !strings.Contains(s, "Guessed Letters: abcdefghijklmnopqrstuvwxyz") {
		t.Errorf("letters line missing:\n%s", s)
	}
}

func TestRenderBoard_Colour(t *testing.T) {
	dict := words.New([]string{"apple", "angle"})
	r := game.NewRoundWithAnswer(dict, "apple")
	r.Guess("angle")

	var out bytes.Buffer
	New(strings.NewReader(""), &out, true).RenderBoard(r)
	s := out.String()
	if !strings.Contains(s, ansiGreen+"a"+ansiReset) {
		t.Errorf("exact cell not green: %q", s)
	}
	if !strings.Contains(s, ansiDarkGrey+"n"+ansiReset) {
		t.Errorf("absent letter not grey: %q", s)
	}
}

func TestShowStatus(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader(""), &out, false)
	term.ShowStatus(game.StatusNotInDictionary)
	term.ShowStatus(game.StatusAccepted)
	if out.String() != "Guess not in list.\n" {
		t.Errorf("output = %q", out.String())
	}
}
