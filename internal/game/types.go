// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - GuessStatus: outcome of submitting a guess.
//   - LetterStatus: what is known about a letter of the alphabet.
//   - SaveRecord: the persisted projection of a Round.
//   - Round: state for a single in-progress round.

package game

import "github.com/robalobadob/wordle/apps/go-cli/internal/words"

const (
	WordLength = words.WordLength
	MaxGuesses = 6
)

// blankGuess fills unused guess slots so rows stay index-stable.
const blankGuess = "     "

// GuessStatus is the result of Round.Guess.
type GuessStatus string

const (
	StatusSuccess         GuessStatus = "success"
	StatusWrongLength     GuessStatus = "wrong_length"
	StatusFormatting      GuessStatus = "formatting"
	StatusNotInDictionary GuessStatus = "not_in_dictionary"
	StatusMaxGuesses      GuessStatus = "max_guesses"
	StatusAccepted        GuessStatus = "accepted"
)

// Message returns the text shown to the player for s.
func (s GuessStatus) Message() string {
	switch s {
	case StatusSuccess:
		return "Success!"
	case StatusWrongLength:
		return "Guesses must contain 5 letters."
	case StatusFormatting:
		return "Guesses must be lowercase letters."
	case StatusNotInDictionary:
		return "Guess not in list."
	case StatusMaxGuesses:
		return "Reached Max Allowable Guesses."
	}
	return ""
}

// InputError reports whether s rejected the guess without touching the round.
func (s GuessStatus) InputError() bool {
	return s == StatusWrongLength || s == StatusFormatting || s == StatusNotInDictionary
}

// LetterStatus is the knowledge gathered about a single letter.
//   - "unknown": not guessed yet.
//   - "present": appears somewhere in the answer.
//   - "absent":  does not appear in the answer.
type LetterStatus string

const (
	LetterUnknown LetterStatus = "unknown"
	LetterPresent LetterStatus = "present"
	LetterAbsent  LetterStatus = "absent"
)

// SaveRecord is everything needed to resume a round. Scoring is derived
// from these fields on restore and is never stored.
type SaveRecord struct {
	Word       string   `json:"Word"`
	Guesses    []string `json:"Guesses"`
	GuessCount int      `json:"GuessCount"`
}

// Round holds the state of a single round.
type Round struct {
	ID string // Round identifier for history (uuid); not persisted.

	dict       *words.Dictionary
	answer     string
	guesses    [MaxGuesses]string
	guessCount int
	letters    [26]LetterStatus
	present    [MaxGuesses][WordLength]bool
	exact      [MaxGuesses][WordLength]bool
}
