// SPDX-License-Identifier: LGPL-3.0-or-later

package registryclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/ecco-mesh/ecco/state"
)

func TestHTTPModeRegisterAndSearch(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/register":
			writeEnvelope(w, true, json.RawMessage(`{}`), "")
		case r.Method == http.MethodGet && r.URL.Path == "/api/capabilities/search":
			require.Equal(t, "llm", r.URL.Query().Get("type"))
			nodes := []NodeDTO{
				{ID: "peer-a", Reputation: 10},
				{ID: "peer-b", Reputation: 80},
			}
			data, _ := json.Marshal(nodes)
			writeEnvelope(w, true, data, "")
		default:
			writeEnvelope(w, false, nil, "not found")
		}
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, AuthToken: "tok123", PingInterval: time.Hour})
	require.NoError(t, err)

	require.NoError(t, c.Register(context.Background(), state.PeerInfo{ID: "self"}))
	require.Equal(t, "Bearer tok123", gotAuth)

	results, err := c.SearchCapabilities(context.Background(), "llm", "", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestHTTPModeQuerySortsByReputationDescending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nodes := []NodeDTO{
			{ID: "low", Reputation: 5},
			{ID: "high", Reputation: 95},
			{ID: "mid", Reputation: 50},
		}
		data, _ := json.Marshal(nodes)
		writeEnvelope(w, true, data, "")
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, PingInterval: time.Hour})
	require.NoError(t, err)

	results, err := c.Query(context.Background(), []state.Capability{{Type: "llm", Name: "chat"}}, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, "high", results[0].ID)
	require.Equal(t, "mid", results[1].ID)
	require.Equal(t, "low", results[2].ID)
}

func TestHTTPModeErrorEnvelopeReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, false, nil, "node not found")
	}))
	defer srv.Close()

	c, err := New(Config{URL: srv.URL, PingInterval: time.Hour})
	require.NoError(t, err)

	_, err = c.Node(context.Background(), "ghost")
	require.Error(t, err)
	require.Contains(t, err.Error(), "node not found")
}

func writeEnvelope(w http.ResponseWriter, success bool, data json.RawMessage, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	env := httpEnvelope{Success: success, Data: data, Error: errMsg, Timestamp: 0}
	_ = json.NewEncoder(w).Encode(env)
}

// wsUpgrader is the test registry's echo-style server: it answers
// register/search requests and replies "pong" to pings, correlating
// every response by the request's id like a real directory would.
var wsUpgrader = websocket.Upgrader{}

func newTestWSRegistry(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := wsUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		for {
			var req wsRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			switch req.Type {
			case reqSearch:
				nodes := []NodeDTO{{ID: "peer-ws", Reputation: 42}}
				payload, _ := json.Marshal(nodes)
				_ = conn.WriteJSON(wsResponse{Type: "response", ID: req.ID, Payload: payload})
			default:
				_ = conn.WriteJSON(wsResponse{Type: "response", ID: req.ID, Payload: json.RawMessage(`{}`)})
			}
		}
	}))
}

func TestWSModeRequestResponseCorrelation(t *testing.T) {
	srv := newTestWSRegistry(t)
	defer srv.Close()
	wsURL := "ws" + srv.URL[len("http"):]

	c, err := New(Config{URL: wsURL, PingInterval: time.Hour})
	require.NoError(t, err)
	require.NoError(t, c.Start(context.Background()))
	defer c.Stop()

	results, err := c.SearchCapabilities(context.Background(), "llm", "", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "peer-ws", results[0].ID)
}

func TestWSModePingLoopKeepsConnectionAlive(t *testing.T) {
	srv := newTestWSRegistry(t)
	defer srv.Close()
	wsURL := "ws" + srv.URL[len("http"):]

	c, err := New(Config{URL: wsURL, PingInterval: 10 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, c.Start(context.Background()))
	defer c.Stop()

	time.Sleep(50 * time.Millisecond)
	results, err := c.SearchCapabilities(context.Background(), "llm", "", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
}
