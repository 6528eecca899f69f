// internal/httpserver/server.go
//
// HTTP server wiring for the local stats API.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - History endpoints: GET /stats, GET /stats/recent.
//   - Saved round progress: GET /save (never exposes the answer).
//   - Debug: GET /debug/words.
//
// Notes:
//   - The API is read-only; the game binary is the only writer of the save
//     file and the history database.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/stats"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// History is the read side of the round history. *stats.Store satisfies it.
type History interface {
	Summary(ctx context.Context) (stats.Summary, error)
	Recent(ctx context.Context, limit int) ([]stats.Round, error)
}

// Server bundles router, save store, history and dictionary.
type Server struct {
	r       *chi.Mux
	store   store.Store
	history History
	dict    *words.Dictionary
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, h History, dict *words.Dictionary) *Server {
	s := &Server{r: chi.NewRouter(), store: st, history: h, dict: dict}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-stats","endpoints":["/health","/stats","/stats/recent","/save","/debug/words"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/stats", s.handleSummary)
	s.r.Get("/stats/recent", s.handleRecent)
	s.r.Get("/save", s.handleSave)

	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		n := 0
		if s.dict != nil {
			n = s.dict.Len()
		}
		_ = json.NewEncoder(w).Encode(map[string]int{"words": n})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "history_disabled")
		return
	}
	sum, err := s.history.Summary(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("stats summary")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(sum)
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "history_disabled")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}
	rounds, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent rounds")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(rounds)
}

// saveRes is the answer-free view of the saved round.
type saveRes struct {
	Saved      bool     `json:"saved"`
	Guesses    []string `json:"guesses"`
	GuessCount int      `json:"guessCount"`
	Remaining  int      `json:"remaining"`
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Load(r.Context())
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrCorrupt) {
		_ = json.NewEncoder(w).Encode(saveRes{Guesses: []string{}})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load saved round")
		writeError(w, http.StatusInternalServerError, "read_error")
		return
	}
	round, err := game.Restore(rec, s.dict)
	if err != nil {
		_ = json.NewEncoder(w).Encode(saveRes{Guesses: []string{}})
		return
	}
	_ = json.NewEncoder(w).Encode(saveRes{
		Saved:      true,
		Guesses:    round.Guesses()[:round.GuessCount()],
		GuessCount: round.GuessCount(),
		Remaining:  game.MaxGuesses - round.GuessCount(),
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
