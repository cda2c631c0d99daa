// Package httpx serves a single shared game over a JSON API.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const (
	maxJSONBodyBytes int64 = 1 << 20
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"

	headerRequestID = "X-Request-Id"
	headerGameID    = "X-Game-Id"
)

// Server wires the HTTP layer to one game. Every request sees and replaces
// the state under mu.
type Server struct {
	mu     sync.Mutex
	state  chess.GameState
	gameID string
	rng    engine.Rand

	game   *config.GameConfig
	server *config.ServerConfig
	logger *zap.Logger

	srvMu  sync.Mutex
	srv    *http.Server
	closed bool
}

// NewServer builds a Server with a fresh game in cfg.Game.Mode. A nil
// logger discards logs.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	s := &Server{
		rng:    engine.NewRand(seed),
		game:   cfg.Game,
		server: cfg.Server,
		logger: logger,
	}
	s.reset(cfg.Game.Mode)
	logger.Info("game server ready",
		zap.String("game_id", s.gameID),
		zap.String("mode", string(cfg.Game.Mode)),
		zap.Uint64("seed", seed),
	)
	return s
}

// Listen serves on the configured address until Close. It returns nil at
// once if Close was already called.
func (s *Server) Listen() error {
	srv := &http.Server{
		Addr:              s.server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.server.ReadTimeout,
		WriteTimeout:      s.server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	if s.closed {
		s.srvMu.Unlock()
		return nil
	}
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	s.logger.Info("HTTP listening", zap.String("addr", s.server.Addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	s.closed = true
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/game-state", s.withJSON(s.handleGameState))
	mux.HandleFunc("/api/select-piece", s.withJSON(s.handleSelectPiece))
	mux.HandleFunc("/api/move-piece", s.withJSON(s.handleMovePiece))
	mux.HandleFunc("/api/promote-pawn", s.withJSON(s.handlePromotePawn))
	mux.HandleFunc("/api/reset-game", s.withJSON(s.handleResetGame))
	mux.HandleFunc("/api/ai-move", s.withJSON(s.handleAIMove))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return s.withRequestID(mux)
}

// ---- middleware ----

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestID echoes or assigns X-Request-Id and logs each request.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Debug("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", apiCSP)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

// ---- JSON helpers ----

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// decodeBody decodes a JSON request body into dst. An empty body leaves dst
// untouched when allowEmpty is set. It writes the error response itself
// and reports false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	defer r.Body.Close()
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil:
		return true
	case allowEmpty && errors.Is(err, io.EOF):
		return true
	case isBodyTooLarge(err):
		writeError(w, http.StatusRequestEntityTooLarge, "request too large")
	default:
		writeError(w, http.StatusBadRequest, "invalid json")
	}
	return false
}

func allowMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// ---- state ----

// reset starts a new game and names it. Callers hold mu, except NewServer.
func (s *Server) reset(mode chess.GameMode) {
	s.state = engine.InitializeGame(mode)
	s.gameID = petname.Generate(3, "-")
	s.replyAI()
}

// replyAI plays the server's move when it is the AI's turn in a
// human-vs-AI game. Callers hold mu.
func (s *Server) replyAI() {
	st := s.state
	if st.Mode != chess.HumanVsAI || st.CurrentTurn != s.game.AIColor || st.PromotionPending != nil || st.IsCheckmate {
		return
	}
	next, err := engine.MakeAIMove(st, s.rng)
	if err != nil {
		s.logger.Info("AI cannot move", zap.String("game_id", s.gameID), zap.Error(err))
		return
	}
	s.state = next
}

// snapshot returns the current state and game id.
func (s *Server) snapshot() (chess.GameState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.gameID
}

// apply runs op on the current state under mu. A successful op replaces the
// state and, when applyAI is set, lets the AI answer.
func (s *Server) apply(op func(chess.GameState) (chess.GameState, error), applyAI bool) (chess.GameState, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := op(s.state)
	if err != nil {
		return s.state, s.gameID, err
	}
	s.state = next
	if applyAI {
		s.replyAI()
	}
	return s.state, s.gameID, nil
}

func (s *Server) writeState(w http.ResponseWriter, state chess.GameState, gameID string) {
	w.Header().Set(headerGameID, gameID)
	writeJSON(w, output.StateToJSON(state))
}

func (s *Server) writeMoveResponse(w http.ResponseWriter, r *http.Request, state chess.GameState, gameID string, err error) {
	if err != nil {
		s.logger.Debug("operation rejected",
			zap.String("request_id", w.Header().Get(headerRequestID)),
			zap.String("game_id", gameID),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	w.Header().Set(headerGameID, gameID)
	writeJSON(w, output.NewMoveResponse(state, err))
}

// ---- API ----

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	state, id := s.snapshot()
	s.writeState(w, state, id)
}

type selectBody struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

func (s *Server) handleSelectPiece(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var body selectBody
	if !decodeBody(w, r, &body, false) {
		return
	}
	if body.Row == nil || body.Col == nil {
		writeError(w, http.StatusBadRequest, "row and col are required")
		return
	}

	pos := chess.Pos(*body.Row, *body.Col)
	state, id, _ := s.apply(func(st chess.GameState) (chess.GameState, error) {
		return engine.SelectPiece(pos, st), nil
	}, false)
	s.writeState(w, state, id)
}

type moveBody struct {
	FromRow *int `json:"fromRow"`
	FromCol *int `json:"fromCol"`
	ToRow   *int `json:"toRow"`
	ToCol   *int `json:"toCol"`
}

func (s *Server) handleMovePiece(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var body moveBody
	if !decodeBody(w, r, &body, false) {
		return
	}
	if body.FromRow == nil || body.FromCol == nil || body.ToRow == nil || body.ToCol == nil {
		writeError(w, http.StatusBadRequest, "fromRow, fromCol, toRow and toCol are required")
		return
	}

	from := chess.Pos(*body.FromRow, *body.FromCol)
	to := chess.Pos(*body.ToRow, *body.ToCol)
	state, id, err := s.apply(func(st chess.GameState) (chess.GameState, error) {
		return engine.MovePiece(from, to, st)
	}, true)
	s.writeMoveResponse(w, r, state, id, err)
}

type promoteBody struct {
	PieceType string `json:"pieceType"`
}

func (s *Server) handlePromotePawn(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var body promoteBody
	if !decodeBody(w, r, &body, false) {
		return
	}
	pt, ok := chess.ParsePieceType(body.PieceType)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid piece type")
		return
	}

	state, id, err := s.apply(func(st chess.GameState) (chess.GameState, error) {
		return engine.PromotePawn(st, pt)
	}, true)
	s.writeMoveResponse(w, r, state, id, err)
}

type resetBody struct {
	GameMode string `json:"gameMode"`
}

func (s *Server) handleResetGame(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var body resetBody
	if !decodeBody(w, r, &body, true) {
		return
	}
	mode := s.game.Mode
	if body.GameMode != "" {
		var ok bool
		if mode, ok = chess.ParseGameMode(body.GameMode); !ok {
			writeError(w, http.StatusBadRequest, chesserrors.ErrInvalidGameMode.Error())
			return
		}
	}

	s.mu.Lock()
	s.reset(mode)
	state, id := s.state, s.gameID
	s.mu.Unlock()

	s.logger.Info("game reset", zap.String("game_id", id), zap.String("mode", string(mode)))
	s.writeState(w, state, id)
}

func (s *Server) handleAIMove(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if r.Body != nil {
		r.Body.Close()
	}
	state, id, err := s.apply(func(st chess.GameState) (chess.GameState, error) {
		return engine.MakeAIMove(st, s.rng)
	}, false)
	s.writeMoveResponse(w, r, state, id, err)
}
