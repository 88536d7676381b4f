package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/session"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func setupSessionHandler() (*SessionHandler, *storage.MockStorage) {
	reg := world.Default()
	eng := engine.New(reg)
	ms := storage.NewMockStorage()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewSessionHandler(eng, reg, ms, logger), ms
}

func createSession(t *testing.T, h *SessionHandler, body string) *session.State {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var gs session.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gs))
	return &gs
}

func TestCreateSession(t *testing.T) {
	h, _ := setupSessionHandler()

	gs := createSession(t, h, "")

	assert.Equal(t, "tower", gs.MapID)
	assert.Equal(t, "field", gs.RoomID)
	assert.NotEqual(t, uuid.Nil, gs.ID)

	// The opening room render is recorded for shells to replay.
	require.NotEmpty(t, gs.Transcript)
	assert.Equal(t, session.RoleNarrator, gs.Transcript[0].Role)
	assert.Contains(t, gs.Transcript[0].Content, "West of the Ruined Tower")
}

func TestCreateSessionWithMap(t *testing.T) {
	h, _ := setupSessionHandler()

	gs := createSession(t, h, `{"map":"vault"}`)
	assert.Equal(t, "vault", gs.MapID)
	assert.Equal(t, "passage", gs.RoomID)
}

func TestCreateSessionUnknownMap(t *testing.T) {
	h, _ := setupSessionHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"map":"atlantis"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSessionMethodNotAllowed(t *testing.T) {
	h, _ := setupSessionHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestReadSession(t *testing.T) {
	h, _ := setupSessionHandler()
	gs := createSession(t, h, "")

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+gs.ID.String(), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var loaded session.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, gs.ID, loaded.ID)
}

func TestReadSessionNotFound(t *testing.T) {
	h, _ := setupSessionHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReadSessionInvalidID(t *testing.T) {
	h, _ := setupSessionHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/not-a-uuid", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSession(t *testing.T) {
	h, _ := setupSessionHandler()
	gs := createSession(t, h, "")

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/"+gs.ID.String(), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/sessions/"+gs.ID.String(), nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func postCommand(t *testing.T, h *SessionHandler, id uuid.UUID, input string) (*httptest.ResponseRecorder, *CommandResponse) {
	t.Helper()

	body, err := json.Marshal(CommandRequest{Input: input})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+id.String()+"/command", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return w, nil
	}
	var resp CommandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, &resp
}

func TestCommand(t *testing.T) {
	h, _ := setupSessionHandler()
	gs := createSession(t, h, "")

	w, resp := postCommand(t, h, gs.ID, "go east")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Session)

	assert.Contains(t, resp.Message, "Tower Entrance")
	assert.Equal(t, "tower_entrance", resp.Session.RoomID)

	// Both sides of the exchange land in the transcript.
	n := len(resp.Session.Transcript)
	require.GreaterOrEqual(t, n, 3)
	assert.Equal(t, session.RolePlayer, resp.Session.Transcript[n-2].Role)
	assert.Equal(t, "go east", resp.Session.Transcript[n-2].Content)
	assert.Equal(t, session.RoleNarrator, resp.Session.Transcript[n-1].Role)
}

func TestCommandPersistsState(t *testing.T) {
	h, _ := setupSessionHandler()
	gs := createSession(t, h, "")

	_, _ = postCommand(t, h, gs.ID, "go east")
	w, resp := postCommand(t, h, gs.ID, "take torch")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Taken.", resp.Message)
	assert.Equal(t, 2, resp.Session.Score)
	assert.Contains(t, resp.Session.Inventory, "torch")
}

func TestCommandSessionNotFound(t *testing.T) {
	h, _ := setupSessionHandler()

	w, _ := postCommand(t, h, uuid.New(), "look")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommandAfterGameOver(t *testing.T) {
	h, ms := setupSessionHandler()
	gs := createSession(t, h, "")

	for _, input := range []string{
		"go east", "take torch", "wield torch", "go down",
		"go east", "take key", "go west",
		"open door", "go north", "take jewel",
	} {
		w, _ := postCommand(t, h, gs.ID, input)
		require.Equal(t, http.StatusOK, w.Code, "command %q", input)
	}

	stored, err := ms.LoadSession(context.Background(), gs.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.Won)
	assert.True(t, stored.GameOver)

	w, _ := postCommand(t, h, gs.ID, "look")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdvanceSession(t *testing.T) {
	h, _ := setupSessionHandler()
	gs := createSession(t, h, "")

	// Not won yet.
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+gs.ID.String()+"/advance", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	for _, input := range []string{
		"go east", "take torch", "wield torch", "go down",
		"go east", "take key", "go west",
		"open door", "go north", "take jewel",
	} {
		postCommand(t, h, gs.ID, input)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/sessions/"+gs.ID.String()+"/advance", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp CommandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "The Serpent Vault")
	assert.Equal(t, "vault", resp.Session.MapID)
	assert.False(t, resp.Session.GameOver)
	assert.Equal(t, 12, resp.Session.Score)
	assert.Equal(t, 26, resp.Session.MaxScore)
}

func TestUnknownSessionOperation(t *testing.T) {
	h, _ := setupSessionHandler()
	gs := createSession(t, h, "")

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+gs.ID.String()+"/frobnicate", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
