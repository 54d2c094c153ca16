// internal/httpserver/server.go
//
// HTTP surface for the engine. The server is a pure collaborator: it injects
// discrete actions and time advances into sessions and reads snapshots back
// out; no rule logic lives here.
//
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Session endpoints: POST /game/new, POST /game/input,
//     POST /game/advance, GET /game/state.
//
// Notes:
//   - CORS is origin-aware so a browser frontend can drive the engine.
//   - A finished (topped-out) session still serves snapshots; gameplay
//     actions against it are engine-level no-ops, not errors.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/aquadark/tetris-server/internal/game"
	"github.com/aquadark/tetris-server/internal/store"
)

// Server bundles the router, the session store, and the default tunables
// applied to new games.
type Server struct {
	r        *chi.Mux
	store    store.Store
	defaults game.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, defaults game.Config) *Server {
	s := &Server{r: chi.NewRouter(), store: st, defaults: defaults}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"tetris-go","endpoints":["/health","POST /game/new","POST /game/input","POST /game/advance","GET /game/state"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- sessions ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/input", s.handleInput)
	s.r.Post("/game/advance", s.handleAdvance)
	s.r.Get("/game/state", s.handleState)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ handlers -----------------------------------

// newGameReq/Res payloads for POST /game/new. Any zero field in the config
// falls back to the server defaults, then the engine defaults.
type newGameReq struct {
	Config game.Config `json:"config"`
}
type newGameRes struct {
	GameID   string        `json:"gameId"`
	Snapshot game.Snapshot `json:"snapshot"`
}

// handleNewGame creates a session and returns its ID with the first snapshot.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	cfg := s.defaults
	overlayConfig(&cfg, req.Config)
	g := game.New(cfg)

	sess := &store.Session{Game: g}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("gameId", g.ID).Msg("new game")
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Snapshot: g.Snapshot()})
}

// overlayConfig copies any non-zero override onto dst.
func overlayConfig(dst *game.Config, over game.Config) {
	if over.WellW > 0 {
		dst.WellW = over.WellW
	}
	if over.WellH > 0 {
		dst.WellH = over.WellH
	}
	if over.BaseInterval > 0 {
		dst.BaseInterval = over.BaseInterval
	}
	if over.SoftDropInterval > 0 {
		dst.SoftDropInterval = over.SoftDropInterval
	}
	if over.LockDelay > 0 {
		dst.LockDelay = over.LockDelay
	}
	if over.NextCount > 0 {
		dst.NextCount = over.NextCount
	}
	if over.Seed != 0 {
		dst.Seed = over.Seed
	}
}

// inputReq is the payload for POST /game/input.
type inputReq struct {
	GameID string      `json:"gameId"`
	Action game.Action `json:"action"`
}

// snapshotRes wraps the post-operation view returned by the mutating routes.
type snapshotRes struct {
	Snapshot game.Snapshot `json:"snapshot"`
}

// handleInput applies one discrete action to a session.
func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	var req inputReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	var snap game.Snapshot
	var applyErr error
	sess.Do(func(g *game.Game) {
		applyErr = g.Apply(req.Action)
		snap = g.Snapshot()
	})
	if applyErr != nil {
		http.Error(w, `{"error":"`+applyErr.Error()+`"}`, http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(snapshotRes{Snapshot: snap})
}

// advanceReq is the payload for POST /game/advance: elapsed wall-clock
// seconds since the caller's previous advance, plus whether soft drop is
// currently held.
type advanceReq struct {
	GameID   string  `json:"gameId"`
	Elapsed  float64 `json:"elapsed"`
	SoftDrop bool    `json:"softDrop"`
}

// handleAdvance runs gravity/lock-delay for the elapsed interval.
func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req advanceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Elapsed < 0 {
		http.Error(w, `{"error":"negative_elapsed"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	var snap game.Snapshot
	sess.Do(func(g *game.Game) {
		g.Advance(req.Elapsed, req.SoftDrop)
		snap = g.Snapshot()
	})
	_ = json.NewEncoder(w).Encode(snapshotRes{Snapshot: snap})
}

// handleState serves a read-only snapshot: GET /game/state?id=<gameId>.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, `{"error":"missing_id"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	var snap game.Snapshot
	sess.Do(func(g *game.Game) { snap = g.Snapshot() })
	_ = json.NewEncoder(w).Encode(snapshotRes{Snapshot: snap})
}
