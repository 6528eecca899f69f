// internal/session/session.go
//
// Orchestrates rounds between the player-facing UI and the game engine.
// Responsibilities:
//   - Resume the saved round at startup, or start a fresh one.
//   - Drive one round: read input, apply guesses, render, detect win/loss/quit.
//   - Save on quit, record finished rounds, clear the save when the player stops.
//
// State machine per round: Active → Won | Exhausted | Quit.
// Save problems are never fatal: missing or unreadable saves start a fresh
// round and failed writes are logged.

package session

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/stats"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// QuitCommand is the input line that saves the round and exits.
const QuitCommand = "-1"

// State of a round.
type State string

const (
	StateActive    State = "active"
	StateWon       State = "won"
	StateExhausted State = "exhausted"
	StateQuit      State = "quit"
)

// UI is the terminal collaborator. ReadGuess and ReadContinue return io.EOF
// when input is closed.
type UI interface {
	ReadGuess() (string, error)
	ReadContinue() (string, error)
	RenderBoard(r *game.Round)
	ShowStatus(s game.GuessStatus)
	RevealAnswer(answer string, won bool)
}

// Recorder stores finished rounds. *stats.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, r stats.Round) error
}

// Picker chooses the answer of a fresh round.
type Picker func(*words.Dictionary) (string, error)

// Session bundles the dictionary, save store and UI for a run of rounds.
type Session struct {
	dict     *words.Dictionary
	store    store.Store
	ui       UI
	recorder Recorder
	pick     Picker
	first    Picker // used once for the first fresh round, then cleared
	now      func() time.Time
}

// Option customises a Session.
type Option func(*Session)

// WithRecorder records finished rounds in rec.
func WithRecorder(rec Recorder) Option {
	return func(s *Session) { s.recorder = rec }
}

// WithPicker overrides the random answer picker.
func WithPicker(p Picker) Option {
	return func(s *Session) { s.pick = p }
}

// WithFirstPicker chooses the answer of the first fresh round only; later
// rounds use the regular picker. The daily word is wired through this.
func WithFirstPicker(p Picker) Option {
	return func(s *Session) { s.first = p }
}

// New constructs a Session.
func New(dict *words.Dictionary, st store.Store, ui UI, opts ...Option) *Session {
	s := &Session{
		dict:  dict,
		store: st,
		ui:    ui,
		pick:  (*words.Dictionary).PickRandom,
		now:   time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run plays rounds until the player quits or declines to continue.
// The only error returned is a failure to start a fresh round (empty dictionary).
func (s *Session) Run(ctx context.Context) error {
	round, err := s.Resume(ctx)
	if err != nil {
		return err
	}
	for {
		state := s.Play(ctx, round)
		if state == StateQuit {
			return nil
		}

		s.ui.RevealAnswer(round.Answer(), state == StateWon)
		s.record(ctx, round, state)

		answer, err := s.ui.ReadContinue()
		if answer == "n" {
			if err := s.store.Clear(ctx); err != nil {
				log.Warn().Err(err).Msg("clear saved round")
			}
			return nil
		}
		if err != nil {
			// Input closed: stop without touching the save.
			return nil
		}

		if round, err = s.Fresh(); err != nil {
			return err
		}
	}
}

// Resume restores the saved round or starts a fresh one.
func (s *Session) Resume(ctx context.Context) (*game.Round, error) {
	rec, err := s.store.Load(ctx)
	switch {
	case err == nil:
		r, rerr := game.Restore(rec, s.dict)
		if rerr == nil {
			log.Debug().Int("guesses", r.GuessCount()).Msg("resumed saved round")
			return r, nil
		}
		log.Debug().Err(rerr).Msg("discarding saved round")
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrCorrupt):
		log.Debug().Err(err).Msg("no usable saved round")
	default:
		log.Warn().Err(err).Msg("load saved round")
	}
	return s.Fresh()
}

// Fresh starts a new round. The first-round picker, if any, is consumed here.
func (s *Session) Fresh() (*game.Round, error) {
	if s.first != nil {
		pick := s.first
		s.first = nil
		return game.NewRoundWithPicker(s.dict, pick)
	}
	return game.NewRoundWithPicker(s.dict, s.pick)
}

// Play runs one round until it is won, exhausted or quit.
func (s *Session) Play(ctx context.Context, round *game.Round) State {
	s.ui.RenderBoard(round)
	state := StateActive
	for state == StateActive {
		line, err := s.ui.ReadGuess()
		if err != nil && !errors.Is(err, io.EOF) {
			log.Warn().Err(err).Msg("read guess")
		}
		if err != nil || line == QuitCommand {
			s.save(ctx, round)
			return StateQuit
		}

		status := round.Guess(line)
		switch status {
		case game.StatusAccepted:
			s.ui.RenderBoard(round)
		case game.StatusSuccess:
			s.ui.ShowStatus(status)
			state = StateWon
		case game.StatusMaxGuesses:
			s.ui.RenderBoard(round)
			s.ui.ShowStatus(status)
			state = StateExhausted
		default:
			s.ui.ShowStatus(status)
		}
	}
	return state
}

func (s *Session) save(ctx context.Context, round *game.Round) {
	if err := s.store.Save(ctx, round.Snapshot()); err != nil {
		log.Error().Err(err).Msg("save round")
	}
}

// record stores a finished round. The winning guess is not kept by the
// engine, so a win took GuessCount()+1 attempts.
func (s *Session) record(ctx context.Context, round *game.Round, state State) {
	if s.recorder == nil {
		return
	}
	r := stats.Round{
		ID:         round.ID,
		Answer:     round.Answer(),
		Outcome:    stats.OutcomeLost,
		Attempts:   round.GuessCount(),
		FinishedAt: s.now(),
	}
	if state == StateWon {
		r.Outcome = stats.OutcomeWon
		r.Attempts++
	}
	if err := s.recorder.Record(ctx, r); err != nil {
		log.Warn().Err(err).Str("round", r.ID).Msg("record round")
	}
}
