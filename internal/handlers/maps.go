package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// MapsHandler serves the static map catalog.
// Routes:
// GET /v1/maps      - List maps in progression order
// GET /v1/maps/{id} - Map detail
type MapsHandler struct {
	world  *world.Registry
	logger *slog.Logger
}

func NewMapsHandler(reg *world.Registry, logger *slog.Logger) *MapsHandler {
	return &MapsHandler{
		world:  reg,
		logger: logger,
	}
}

func (h *MapsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.logger.Warn("Method not allowed for maps endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET")
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/maps"), "/")
	if id == "" {
		writeJSON(w, h.logger, http.StatusOK, h.world.MapSummaries())
		return
	}

	m, ok := h.world.Map(id)
	if !ok {
		h.logger.Warn("Map not found", "id", id)
		writeError(w, h.logger, http.StatusNotFound, "Map not found")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, m)
}
