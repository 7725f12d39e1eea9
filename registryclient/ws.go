// SPDX-License-Identifier: LGPL-3.0-or-later

package registryclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ecco-mesh/ecco/internal/logger"
)

// wsMode implements mode over a persistent ws(s) connection, per
// spec.md section 4.8: JSON framing correlated by id, a 30s ping loop,
// and auto-reconnect with ReconnectInterval on unexpected close. The
// pending-response correlation map and reconnect-driven read loop
// mirror pkg/agent/transport/websocket/client.go, generalized from a
// request/response RPC transport to a directory client.
type wsMode struct {
	cfg Config
	url *url.URL

	mu      sync.Mutex
	conn    *websocket.Conn
	started bool
	closed  bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	pendingMu sync.Mutex
	pending   map[string]chan wsResponse

	writeMu sync.Mutex
}

func newWSMode(cfg Config, u *url.URL) *wsMode {
	return &wsMode{cfg: cfg, url: u, pending: make(map[string]chan wsResponse)}
}

func (m *wsMode) start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return nil
	}
	m.started = true
	m.stopCh = make(chan struct{})

	if err := m.dial(ctx); err != nil {
		return err
	}

	m.wg.Add(1)
	go m.pingLoop()
	return nil
}

func (m *wsMode) stop() error {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = false
	m.closed = true
	close(m.stopCh)
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()

	var closeErr error
	if conn != nil {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		closeErr = conn.Close()
	}
	m.wg.Wait()
	return closeErr
}

func (m *wsMode) dial(ctx context.Context) error {
	dialer := &websocket.Dialer{HandshakeTimeout: m.cfg.RequestTimeout}
	header := http.Header{}
	if token, err := bearerToken(m.cfg); err != nil {
		return err
	} else if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	conn, resp, err := dialer.DialContext(ctx, m.url.String(), header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("registryclient: ws dial failed (HTTP %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("registryclient: ws dial failed: %w", err)
	}
	m.conn = conn
	m.wg.Add(1)
	go m.readLoop(conn)
	return nil
}

// readLoop demuxes inbound frames to their correlated pending request,
// and on an unexpected close schedules a reconnect after
// ReconnectInterval, per spec.md section 4.8.
func (m *wsMode) readLoop(conn *websocket.Conn) {
	defer m.wg.Done()
	for {
		var resp wsResponse
		if err := conn.ReadJSON(&resp); err != nil {
			m.mu.Lock()
			shuttingDown := m.closed
			m.mu.Unlock()
			if !shuttingDown {
				m.cfg.Log.Warn("registryclient: ws connection lost, reconnecting", logger.Error(err))
				m.scheduleReconnect()
			}
			return
		}

		m.pendingMu.Lock()
		ch, ok := m.pending[resp.ID]
		m.pendingMu.Unlock()
		if ok {
			select {
			case ch <- resp:
			default:
			}
		}
	}
}

func (m *wsMode) scheduleReconnect() {
	select {
	case <-m.stopCh:
		return
	default:
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		select {
		case <-m.stopCh:
			return
		case <-time.After(m.cfg.ReconnectInterval):
		}
		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			return
		}
		err := m.dial(context.Background())
		m.mu.Unlock()
		if err != nil {
			m.cfg.Log.Warn("registryclient: ws reconnect failed, retrying", logger.Error(err))
			m.scheduleReconnect()
		}
	}()
}

func (m *wsMode) pingLoop() {
	defer m.wg.Done()
	ticker := time.NewTicker(m.cfg.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RequestTimeout)
			if err := m.request(ctx, reqPing, nil, nil); err != nil {
				m.cfg.Log.Debug("registryclient: ws ping failed", logger.Error(err))
			}
			cancel()
		}
	}
}

func (m *wsMode) request(ctx context.Context, reqType string, payload interface{}, out interface{}) error {
	var rawPayload json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("registryclient: marshal payload: %w", err)
		}
		rawPayload = b
	}

	req := wsRequest{
		ID:        uuid.NewString(),
		Type:      reqType,
		Payload:   rawPayload,
		Timestamp: nowMillis(),
	}

	respCh := make(chan wsResponse, 1)
	m.pendingMu.Lock()
	m.pending[req.ID] = respCh
	m.pendingMu.Unlock()
	defer func() {
		m.pendingMu.Lock()
		delete(m.pending, req.ID)
		m.pendingMu.Unlock()
	}()

	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("registryclient: not connected")
	}
	m.writeMu.Lock()
	err := conn.WriteJSON(req)
	m.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("registryclient: write request: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case resp := <-respCh:
		if resp.Type == "error" {
			var msg string
			_ = json.Unmarshal(resp.Payload, &msg)
			return fmt.Errorf("registryclient: %s", msg)
		}
		if out != nil && len(resp.Payload) > 0 {
			if err := json.Unmarshal(resp.Payload, out); err != nil {
				return fmt.Errorf("registryclient: decode payload: %w", err)
			}
		}
		return nil
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
