//go:build integration
// +build integration

// Package integration exercises a running API end to end.
// Start the server (and Redis) first, then:
//
//	API_BASE_URL=http://localhost:8080 go test -tags=integration ./integration/
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/internal/handlers"
	"github.com/jwebster45206/adventure-engine/pkg/session"
)

var (
	baseURL = "http://localhost:8080"
	client  = &http.Client{Timeout: 10 * time.Second}
)

func TestMain(m *testing.M) {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		baseURL = v
	}

	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		fmt.Fprintf(os.Stderr, "API not reachable at %s: %v\n", baseURL, err)
		os.Exit(1)
	}
	resp.Body.Close()

	os.Exit(m.Run())
}

func postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := client.Post(baseURL+path, "application/json", &buf)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func sendCommand(t *testing.T, id, input string) handlers.CommandResponse {
	t.Helper()

	resp := postJSON(t, "/v1/sessions/"+id+"/command", handlers.CommandRequest{Input: input})
	require.Equal(t, http.StatusOK, resp.StatusCode, "command %q", input)
	return decode[handlers.CommandResponse](t, resp)
}

func TestFullPlaythrough(t *testing.T) {
	resp := postJSON(t, "/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	gs := decode[session.State](t, resp)
	id := gs.ID.String()

	defer func() {
		req, _ := http.NewRequest(http.MethodDelete, baseURL+"/v1/sessions/"+id, nil)
		if resp, err := client.Do(req); err == nil {
			resp.Body.Close()
		}
	}()

	assert.Equal(t, "field", gs.RoomID)

	steps := []struct {
		input   string
		contain string
	}{
		{"go east", "Tower Entrance"},
		{"take torch", "Taken."},
		{"wield torch", "You light the torch."},
		{"go down", "Hall of Serpents"},
		{"go north", "locked"},
		{"go east", "Antechamber"},
		{"take key", "Taken."},
		{"go west", "Hall of Serpents"},
		{"open door", "It swings open."},
		{"go north", "The Sanctum"},
		{"take jewel", "Taken."},
	}

	var last handlers.CommandResponse
	for _, step := range steps {
		last = sendCommand(t, id, step.input)
		assert.Contains(t, last.Message, step.contain, "command %q", step.input)
	}

	require.NotNil(t, last.Session)
	assert.True(t, last.Session.Won)
	assert.True(t, last.Session.GameOver)
	assert.Equal(t, 12, last.Session.Score)

	// The map is won; further commands are refused but advancing works.
	resp = postJSON(t, "/v1/sessions/"+id+"/command", handlers.CommandRequest{Input: "look"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, "/v1/sessions/"+id+"/advance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	adv := decode[handlers.CommandResponse](t, resp)
	assert.Equal(t, "vault", adv.Session.MapID)
	assert.Equal(t, 26, adv.Session.MaxScore)
}

func TestMapCatalog(t *testing.T) {
	resp, err := client.Get(baseURL + "/v1/maps")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	maps := decode[[]map[string]string](t, resp)
	assert.NotEmpty(t, maps)
}
