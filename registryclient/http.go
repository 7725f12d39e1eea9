// SPDX-License-Identifier: LGPL-3.0-or-later

package registryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ecco-mesh/ecco/internal/logger"
)

// httpMode implements mode over REST, per spec.md section 4.8: register/
// unregister/ping/reputation as POST, node fetch and capability search as
// GET. A background goroutine pings the directory every PingInterval so
// the directory's liveness TTL on this node never lapses.
type httpMode struct {
	cfg    Config
	base   *url.URL
	peerID string // set by the first successful Register, used by the ping loop

	mu      sync.Mutex
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

func newHTTPMode(cfg Config, base *url.URL) *httpMode {
	return &httpMode{cfg: cfg, base: base}
}

func (m *httpMode) start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return nil
	}
	m.started = true
	m.stopCh = make(chan struct{})
	m.wg.Add(1)
	go m.pingLoop()
	return nil
}

func (m *httpMode) stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return nil
	}
	m.started = false
	close(m.stopCh)
	m.wg.Wait()
	return nil
}

func (m *httpMode) pingLoop() {
	defer m.wg.Done()
	ticker := time.NewTicker(m.cfg.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.mu.Lock()
			peerID := m.peerID
			m.mu.Unlock()
			if peerID == "" {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), m.cfg.RequestTimeout)
			if err := m.request(ctx, reqPing, map[string]string{"id": peerID}, nil); err != nil {
				m.cfg.Log.Debug("registryclient: ping failed", logger.Error(err))
			}
			cancel()
		}
	}
}

func (m *httpMode) request(ctx context.Context, reqType string, payload interface{}, out interface{}) error {
	method, path, query, body := m.route(reqType, payload)
	if reqType == reqRegister {
		if reg, ok := payload.(RegisterRequest); ok {
			m.mu.Lock()
			m.peerID = reg.ID
			m.mu.Unlock()
		}
	}

	fullURL := *m.base
	fullURL.Path = path
	if query != nil {
		fullURL.RawQuery = query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("registryclient: marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL.String(), bodyReader)
	if err != nil {
		return fmt.Errorf("registryclient: build request: %w", err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := bearerToken(m.cfg); err != nil {
		return err
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := m.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("registryclient: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("registryclient: read response: %w", err)
	}

	var env httpEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("registryclient: decode envelope: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("registryclient: %s", env.Error)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("registryclient: decode data: %w", err)
		}
	}
	return nil
}

// route maps a request type to its REST verb/path/query/body, per
// spec.md section 4.8's endpoint list.
func (m *httpMode) route(reqType string, payload interface{}) (method, path string, query url.Values, body interface{}) {
	switch reqType {
	case reqRegister:
		return http.MethodPost, "/api/register", nil, payload
	case reqUnregister:
		return http.MethodPost, "/api/unregister", nil, payload
	case reqPing:
		return http.MethodPost, "/api/ping", nil, payload
	case reqReputation:
		id := idOf(payload)
		return http.MethodPost, "/api/nodes/" + id + "/reputation", nil, payload
	case reqNode:
		id := idOf(payload)
		return http.MethodGet, "/api/nodes/" + id, nil, nil
	case reqSearch:
		q, ok := payload.(SearchQuery)
		values := url.Values{}
		if ok {
			if q.Type != "" {
				values.Set("type", q.Type)
			}
			if q.Name != "" {
				values.Set("name", q.Name)
			}
			if q.Limit > 0 {
				values.Set("limit", fmt.Sprintf("%d", q.Limit))
			}
		}
		return http.MethodGet, "/api/capabilities/search", values, nil
	default:
		return http.MethodPost, "/api/" + reqType, nil, payload
	}
}

// idOf extracts the "id" field carried by map[string]string or a struct
// embedding one, the two shapes route's callers pass for id-keyed routes.
func idOf(payload interface{}) string {
	switch v := payload.(type) {
	case map[string]string:
		return v["id"]
	case struct {
		ID string `json:"id"`
		ReputationUpdate
	}:
		return v.ID
	}
	return ""
}
