package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/parser"
	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// SessionHandler owns the session lifecycle and the command loop.
// Routes:
// POST /v1/sessions                - Create a session
// GET /v1/sessions/{id}            - Read a session
// DELETE /v1/sessions/{id}         - Delete a session
// POST /v1/sessions/{id}/command   - Run one command against a session
// POST /v1/sessions/{id}/advance   - Move a won session to the next map
type SessionHandler struct {
	engine  *engine.Engine
	world   *world.Registry
	storage storage.Storage
	logger  *slog.Logger
}

func NewSessionHandler(eng *engine.Engine, reg *world.Registry, storage storage.Storage, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		engine:  eng,
		world:   reg,
		storage: storage,
		logger:  logger,
	}
}

// CreateSessionRequest defines the request body for creating a session.
type CreateSessionRequest struct {
	Map string `json:"map,omitempty"` // optional map ID; default is the first map
}

// CommandRequest is one raw input line.
type CommandRequest struct {
	Input string `json:"input"`
}

// CommandResponse carries the rendered message and the mutated session,
// which the shell must treat as canonical.
type CommandResponse struct {
	Message string         `json:"message"`
	Session *session.State `json:"session"`
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/sessions"), "/")

	if path == "" {
		if r.Method != http.MethodPost {
			writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Use POST to create a session")
			return
		}
		h.handleCreate(w, r)
		return
	}

	parts := strings.SplitN(path, "/", 2)
	id, err := uuid.Parse(parts[0])
	if err != nil {
		h.logger.Warn("Invalid session ID", "id", parts[0], "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid session ID format")
		return
	}

	if len(parts) == 2 {
		if r.Method != http.MethodPost {
			writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
			return
		}
		switch parts[1] {
		case "command":
			h.handleCommand(w, r, id)
		case "advance":
			h.handleAdvance(w, r, id)
		default:
			writeError(w, h.logger, http.StatusNotFound, "Unknown session operation")
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleRead(w, r, id)
	case http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, DELETE")
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	// An empty body means the default map.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("Invalid create session body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	gs, err := session.New(h.world, req.Map)
	if err != nil {
		h.logger.Warn("Failed to create session", "map", req.Map, "error", err)
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	// Opening render, recorded so shells can replay it.
	gs.Record(session.RoleNarrator, h.engine.Describe(gs))

	if err := h.storage.SaveSession(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save session", "uuid", gs.ID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	h.logger.Info("Session created", "uuid", gs.ID, "map", gs.MapID)
	writeJSON(w, h.logger, http.StatusCreated, gs)
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	gs, err := h.storage.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "uuid", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, gs)
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.storage.DeleteSession(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete session", "uuid", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) handleCommand(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid command body", "uuid", id, "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	gs, err := h.storage.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "uuid", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found")
		return
	}
	if gs.GameOver {
		writeError(w, h.logger, http.StatusConflict, "The game is over")
		return
	}

	cmd := parser.Parse(req.Input)
	msg := h.engine.Run(gs, cmd)

	if cmd.Raw != "" {
		gs.Record(session.RolePlayer, cmd.Raw)
	}
	if msg != "" {
		gs.Record(session.RoleNarrator, msg)
	}

	if err := h.storage.SaveSession(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save session", "uuid", gs.ID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, CommandResponse{Message: msg, Session: gs})
}

func (h *SessionHandler) handleAdvance(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	gs, err := h.storage.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "uuid", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if gs == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found")
		return
	}

	msg, err := h.engine.Advance(gs)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrNotWon):
			writeError(w, h.logger, http.StatusConflict, "Session has not won its current map")
		case errors.Is(err, engine.ErrLastMap):
			writeError(w, h.logger, http.StatusConflict, "There is no next map")
		default:
			h.logger.Error("Failed to advance session", "uuid", id, "error", err)
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to advance session")
		}
		return
	}

	gs.Record(session.RoleNarrator, msg)

	if err := h.storage.SaveSession(r.Context(), gs.ID, gs); err != nil {
		h.logger.Error("Failed to save session", "uuid", gs.ID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save session")
		return
	}

	h.logger.Info("Session advanced", "uuid", gs.ID, "map", gs.MapID)
	writeJSON(w, h.logger, http.StatusOK, CommandResponse{Message: msg, Session: gs})
}
