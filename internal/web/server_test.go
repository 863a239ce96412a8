package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kmreiser/veil/internal/config"
	"github.com/kmreiser/veil/internal/view"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Addr: ":0"},
		Game: config.GameConfig{
			DecksFile: filepath.Join("..", "..", "decks.yaml"),
			Template:  "balanced",
			MaxTurns:  30,
		},
	}
	return NewServer(cfg, zap.NewNop())
}

func doJSON(t *testing.T, srv *Server, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func TestAPICards(t *testing.T) {
	srv := newTestServer(t)

	var cards []view.CardView
	rec := doJSON(t, srv, http.MethodGet, "/api/cards", nil, &cards)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, cards)

	names := make(map[string]bool)
	for _, c := range cards {
		names[c.Name] = true
	}
	assert.True(t, names["Moth Sentinel"])
	assert.True(t, names["The Hollow King"])
}

func TestAPIDecks(t *testing.T) {
	srv := newTestServer(t)

	var decks []DeckInfo
	rec := doJSON(t, srv, http.MethodGet, "/api/decks", nil, &decks)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decks, 3)
	assert.Equal(t, "balanced", decks[0].Name)
	assert.NotEmpty(t, decks[0].Cards)
}

func TestAPIGameLifecycle(t *testing.T) {
	srv := newTestServer(t)

	var created NewGameResponse
	rec := doJSON(t, srv, http.MethodPost, "/api/game", NewGameRequest{
		Template0: "balanced",
		Seed:      11,
	}, &created)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 1, created.State.Turn)

	var step StepResponse
	rec = doJSON(t, srv, http.MethodPost, "/api/game/"+created.ID+"/step", nil, &step)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, step.Lines)
	assert.Equal(t, "-- Turn 1 --", step.Lines[0])
	assert.Equal(t, 2, step.State.Turn)

	var state view.StateView
	rec = doJSON(t, srv, http.MethodGet, "/api/game/"+created.ID, nil, &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, state.Turn)

	var run StepResponse
	rec = doJSON(t, srv, http.MethodPost, "/api/game/"+created.ID+"/run", nil, &run)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []view.EventView
	rec = doJSON(t, srv, http.MethodGet, "/api/game/"+created.ID+"/transcript", nil, &events)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, events)
	assert.Equal(t, "TurnStart", events[0].Type)
}

func TestAPIGameUnknownTemplate(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/game", NewGameRequest{Template0: "mill"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mill")
}

func TestAPIGameNotFound(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/game/nope/step", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
