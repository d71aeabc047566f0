package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/driver"
	"github.com/katalvlaran/gridwalk/stream"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log, _ := test.NewNullLogger()
	cfg := driver.DefaultConfig()
	cfg.Seed = 1
	srv := httptest.NewServer(newServer(cfg, log).router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutes_Stream(t *testing.T) {
	srv := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + uriStream
	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg stream.ServerMessage
	require.NoError(t, ws.ReadJSON(&msg))
	require.NotNil(t, msg.Snapshot)
	assert.Equal(t, "dijkstra", msg.Snapshot.Algorithm)
}

func TestRoutes_Layout(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/layouts/predefined2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 10)
	assert.Equal(t, "........E.", rows[1])
	assert.Equal(t, "S..33333..", rows[8])
}

func TestRoutes_NotFound(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/layouts/random", "/layouts/maze", "/nope"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err, path)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}
