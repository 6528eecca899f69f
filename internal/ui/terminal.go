// internal/ui/terminal.go
//
// Line-based terminal front end for the game.
// Responsibilities:
//   - Prompt for guesses and the continue question, one line each.
//   - Draw the board: six guess rows and the guessed-letters line.
//   - Colour cells (green exact, yellow present) and letters
//     (yellow present, dark grey absent) when stdout is a terminal.
//
// The board is redrawn from scratch at the top of the screen on every
// render when colour is on; otherwise it is simply printed again.

package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

const (
	ansiReset    = "\x1b[0m"
	ansiWhite    = "\x1b[97m"
	ansiGreen    = "\x1b[32m"
	ansiYellow   = "\x1b[33m"
	ansiDarkGrey = "\x1b[90m"
	ansiHome     = "\x1b[H\x1b[2J"
)

// Terminal implements session.UI over a reader and a writer.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

// NewStdio wires the terminal to stdin/stdout, enabling colour on a TTY.
func NewStdio() *Terminal {
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return New(os.Stdin, colorable.NewColorableStdout(), color)
}

// New builds a Terminal. With color false no escape sequences are written.
func New(in io.Reader, out io.Writer, color bool) *Terminal {
	if !color {
		out = colorable.NewNonColorable(out)
	}
	return &Terminal{in: bufio.NewReader(in), out: out, color: color}
}

// ReadGuess prompts for a guess.
func (t *Terminal) ReadGuess() (string, error) {
	return t.prompt("Guess: ")
}

// ReadContinue asks whether to play another round.
func (t *Terminal) ReadContinue() (string, error) {
	return t.prompt("Continue (y/n): ")
}

// prompt writes p and reads one line without its line ending. A final line
// with no newline is returned together with io.EOF.
func (t *Terminal) prompt(p string) (string, error) {
	fmt.Fprint(t.out, p)
	line, err := t.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}

// RenderBoard draws the whole board.
func (t *Terminal) RenderBoard(r *game.Round) {
	var b strings.Builder
	if t.color {
		b.WriteString(ansiHome)
	}
	b.WriteString(t.paint(ansiWhite, "-------------------- Wordle --------------------"))
	b.WriteString("\nGuesses:\n")
	guesses := r.Guesses()
	for i := 0; i < game.MaxGuesses; i++ {
		b.WriteString("- ")
		for j := 0; j < game.WordLength; j++ {
			b.WriteString(t.paint(cellColor(r, i, j), string(guesses[i][j])))
		}
		b.WriteString("\n")
	}
	b.WriteString("Guessed Letters: ")
	letters := r.Letters()
	for i, st := range letters {
		b.WriteString(t.paint(letterColor(st), string(rune('a'+i))))
	}
	b.WriteString("\n------------------------------------------------\n")
	fmt.Fprint(t.out, b.String())
}

// ShowStatus prints the message for a guess outcome.
func (t *Terminal) ShowStatus(s game.GuessStatus) {
	if msg := s.Message(); msg != "" {
		fmt.Fprintln(t.out, msg)
	}
}

// RevealAnswer prints the answer at the end of a round.
func (t *Terminal) RevealAnswer(answer string, won bool) {
	if won {
		fmt.Fprintf(t.out, "The word was %s.\n", t.paint(ansiGreen, answer))
		return
	}
	fmt.Fprintf(t.out, "Word was: %s\n", answer)
}

func (t *Terminal) paint(code, s string) string {
	if !t.color || code == "" {
		return s
	}
	return code + s + ansiReset
}

func cellColor(r *game.Round, i, j int) string {
	switch {
	case r.CellExact(i, j):
		return ansiGreen
	case r.CellPresent(i, j):
		return ansiYellow
	}
	return ""
}

func letterColor(s game.LetterStatus) string {
	switch s {
	case game.LetterPresent:
		return ansiYellow
	case game.LetterAbsent:
		return ansiDarkGrey
	}
	return ansiWhite
}
