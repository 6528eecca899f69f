// internal/game/engine.go
//
// Core game engine for a single Wordle round.
// Responsibilities:
//   - Create fresh rounds (random answer, 6 blank rows).
//   - Restore rounds from a SaveRecord, recomputing all derived scoring.
//   - Validate and apply guesses (case, length, dictionary membership).
//   - Score accepted guesses per cell and per letter.
//
// Notes:
//   - Scoring is containment based: a cell is "present" when its letter occurs
//     anywhere in the answer and "exact" when it matches the answer's letter at
//     that column. Exact therefore implies present.
//   - Letter knowledge is first-observation-wins and never reverts.
//   - A winning guess returns StatusSuccess without being recorded.

package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// ErrInvalidRecord is returned by Restore for records that cannot describe a round.
var ErrInvalidRecord = errors.New("game: invalid save record")

// NewRound starts a fresh round with a random answer from dict.
func NewRound(dict *words.Dictionary) (*Round, error) {
	return NewRoundWithPicker(dict, (*words.Dictionary).PickRandom)
}

// NewRoundWithPicker starts a fresh round whose answer is chosen by pick.
func NewRoundWithPicker(dict *words.Dictionary, pick func(*words.Dictionary) (string, error)) (*Round, error) {
	ans, err := pick(dict)
	if err != nil {
		return nil, err
	}
	return NewRoundWithAnswer(dict, ans), nil
}

// NewRoundWithAnswer starts a fresh round with a fixed answer (testing, daily word).
func NewRoundWithAnswer(dict *words.Dictionary, answer string) *Round {
	r := &Round{
		ID:     uuid.NewString(),
		dict:   dict,
		answer: strings.ToLower(answer),
	}
	r.reset()
	return r
}

// Restore rebuilds a round from rec. Answer, guesses and count are taken
// as-is; letter knowledge and both cell grids are recomputed from them.
func Restore(rec SaveRecord, dict *words.Dictionary) (*Round, error) {
	if len(rec.Word) != WordLength || !isLower(rec.Word) {
		return nil, ErrInvalidRecord
	}
	if rec.GuessCount < 0 || rec.GuessCount > MaxGuesses || len(rec.Guesses) != MaxGuesses {
		return nil, ErrInvalidRecord
	}
	for i := 0; i < rec.GuessCount; i++ {
		if len(rec.Guesses[i]) != WordLength || !isLower(rec.Guesses[i]) {
			return nil, ErrInvalidRecord
		}
	}

	r := &Round{
		ID:     uuid.NewString(),
		dict:   dict,
		answer: rec.Word,
	}
	r.reset()
	r.guessCount = rec.GuessCount
	for i := 0; i < rec.GuessCount; i++ {
		r.guesses[i] = rec.Guesses[i]
		r.score(i)
	}
	for c := byte('a'); c <= 'z'; c++ {
		r.letters[c-'a'] = r.recomputeLetter(c)
	}
	return r, nil
}

// reset clears guesses and scoring.
func (r *Round) reset() {
	for i := range r.guesses {
		r.guesses[i] = blankGuess
	}
	for i := range r.letters {
		r.letters[i] = LetterUnknown
	}
	r.guessCount = 0
	r.present = [MaxGuesses][WordLength]bool{}
	r.exact = [MaxGuesses][WordLength]bool{}
}

// Guess validates word and, if it is a valid non-winning guess, records it.
//
// Checks run in order: lowercase letters only, length, dictionary, answer.
// Input errors and StatusSuccess leave the round untouched.
func (r *Round) Guess(word string) GuessStatus {
	if !isLower(word) {
		return StatusFormatting
	}
	if len(word) != WordLength {
		return StatusWrongLength
	}
	if r.dict == nil || !r.dict.Contains(word) {
		return StatusNotInDictionary
	}
	if word == r.answer {
		return StatusSuccess
	}
	if r.guessCount >= MaxGuesses {
		return StatusMaxGuesses
	}

	row := r.guessCount
	r.guesses[row] = word
	r.score(row)
	for i := 0; i < WordLength; i++ {
		c := word[i]
		if r.letters[c-'a'] != LetterUnknown {
			continue
		}
		if strings.IndexByte(r.answer, c) >= 0 {
			r.letters[c-'a'] = LetterPresent
		} else {
			r.letters[c-'a'] = LetterAbsent
		}
	}
	r.guessCount++

	if r.guessCount == MaxGuesses {
		return StatusMaxGuesses
	}
	return StatusAccepted
}

// score fills the present/exact cells of row from guesses[row].
func (r *Round) score(row int) {
	g := r.guesses[row]
	for j := 0; j < WordLength; j++ {
		r.present[row][j] = strings.IndexByte(r.answer, g[j]) >= 0
		r.exact[row][j] = r.answer[j] == g[j]
	}
}

// recomputeLetter derives the status of c from the submitted rows.
func (r *Round) recomputeLetter(c byte) LetterStatus {
	for i := 0; i < r.guessCount; i++ {
		if strings.IndexByte(r.guesses[i], c) < 0 {
			continue
		}
		if strings.IndexByte(r.answer, c) >= 0 {
			return LetterPresent
		}
		return LetterAbsent
	}
	return LetterUnknown
}

// Snapshot returns the persisted projection of the round.
func (r *Round) Snapshot() SaveRecord {
	return SaveRecord{
		Word:       r.answer,
		Guesses:    r.Guesses(),
		GuessCount: r.guessCount,
	}
}

// Answer returns the secret word. Callers reveal it only once the round is over.
func (r *Round) Answer() string { return r.answer }

// Guesses returns all MaxGuesses slots; unused ones are blank.
func (r *Round) Guesses() []string {
	out := make([]string, MaxGuesses)
	copy(out, r.guesses[:])
	return out
}

// GuessCount is the number of recorded guesses and the index of the next row.
func (r *Round) GuessCount() int { return r.guessCount }

// Letter returns the status of letter c; non-letters are always unknown.
func (r *Round) Letter(c byte) LetterStatus {
	if c < 'a' || c > 'z' {
		return LetterUnknown
	}
	return r.letters[c-'a']
}

// Letters returns the status of a..z in alphabetical order.
func (r *Round) Letters() [26]LetterStatus { return r.letters }

// CellPresent reports whether row i, column j holds a letter found in the answer.
func (r *Round) CellPresent(i, j int) bool {
	if !inGrid(i, j) {
		return false
	}
	return r.present[i][j]
}

// CellExact reports whether row i, column j matches the answer at j.
func (r *Round) CellExact(i, j int) bool {
	if !inGrid(i, j) {
		return false
	}
	return r.exact[i][j]
}

// Exhausted reports whether every row has been used.
func (r *Round) Exhausted() bool { return r.guessCount >= MaxGuesses }

func inGrid(i, j int) bool {
	return i >= 0 && i < MaxGuesses && j >= 0 && j < WordLength
}

// isLower reports whether every character of s is a–z. Empty strings pass.
func isLower(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
