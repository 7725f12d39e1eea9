// SPDX-License-Identifier: LGPL-3.0-or-later

package registryclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ecco-mesh/ecco/internal/logger"
	"github.com/ecco-mesh/ecco/state"
)

// DefaultPingInterval is the keepalive cadence kept by both transport
// modes, per spec.md section 4.8.
const DefaultPingInterval = 30 * time.Second

// DefaultReconnectInterval is the backoff between ws(s) reconnect
// attempts after an unexpected close.
const DefaultReconnectInterval = 5 * time.Second

// DefaultRequestTimeout bounds a single request/response round trip in
// either mode.
const DefaultRequestTimeout = 10 * time.Second

// Config configures a Client. Mode is chosen from URL's scheme:
// http/https select the REST mode, ws/wss select the framed mode.
// Set AuthToken to send a fixed bearer token, or AuthSecret to have the
// client mint a short-lived JWT per request instead (see bearerToken).
type Config struct {
	URL               string
	AuthToken         string
	AuthSecret        string
	PingInterval      time.Duration
	ReconnectInterval time.Duration
	RequestTimeout    time.Duration
	HTTPClient        *http.Client
	Log               logger.Logger
}

func (c *Config) applyDefaults() {
	if c.PingInterval <= 0 {
		c.PingInterval = DefaultPingInterval
	}
	if c.ReconnectInterval <= 0 {
		c.ReconnectInterval = DefaultReconnectInterval
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.RequestTimeout}
	}
	if c.Log == nil {
		c.Log = logger.GetDefaultLogger()
	}
}

// mode is the scheme-selected transport a Client speaks to the registry.
type mode interface {
	start(ctx context.Context) error
	stop() error
	request(ctx context.Context, reqType string, payload interface{}, out interface{}) error
}

// Client is the registry fallback-directory client of spec.md section 4.8.
type Client struct {
	cfg  Config
	mode mode
}

// New builds a Client for the given configuration, selecting http or ws
// mode from the URL scheme.
func New(cfg Config) (*Client, error) {
	cfg.applyDefaults()
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("registryclient: invalid url: %w", err)
	}

	c := &Client{cfg: cfg}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		c.mode = newHTTPMode(cfg, u)
	case "ws", "wss":
		c.mode = newWSMode(cfg, u)
	default:
		return nil, fmt.Errorf("registryclient: unsupported scheme %q", u.Scheme)
	}
	return c, nil
}

// Start connects (ws mode) or is a no-op (http mode) and begins the
// keepalive ping loop.
func (c *Client) Start(ctx context.Context) error {
	return c.mode.start(ctx)
}

// Stop tears down the underlying connection, if any.
func (c *Client) Stop() error {
	return c.mode.stop()
}

// Register announces a local peer to the directory.
func (c *Client) Register(ctx context.Context, info state.PeerInfo) error {
	return c.mode.request(ctx, reqRegister, toRegisterRequest(info), nil)
}

// Unregister removes a peer from the directory.
func (c *Client) Unregister(ctx context.Context, peerID string) error {
	return c.mode.request(ctx, reqUnregister, map[string]string{"id": peerID}, nil)
}

// Ping refreshes the directory's liveness timestamp for the local peer.
func (c *Client) Ping(ctx context.Context, peerID string) error {
	return c.mode.request(ctx, reqPing, map[string]string{"id": peerID}, nil)
}

// UpdateReputation pushes a reputation snapshot for peerID to the directory.
func (c *Client) UpdateReputation(ctx context.Context, peerID string, rep state.Reputation) error {
	update := ReputationUpdate{Score: rep.Score, SuccessfulJob: rep.SuccessfulJob, FailedJobs: rep.FailedJobs}
	return c.mode.request(ctx, reqReputation, struct {
		ID string `json:"id"`
		ReputationUpdate
	}{ID: peerID, ReputationUpdate: update}, nil)
}

// Node fetches a single peer record by id.
func (c *Client) Node(ctx context.Context, peerID string) (state.PeerInfo, error) {
	var dto NodeDTO
	if err := c.mode.request(ctx, reqNode, map[string]string{"id": peerID}, &dto); err != nil {
		return state.PeerInfo{}, err
	}
	return dto.toPeerInfo(), nil
}

// SearchCapabilities searches the directory for peers offering a
// capability, per spec.md section 4.8's capabilities/search endpoint.
func (c *Client) SearchCapabilities(ctx context.Context, capType, name string, limit int) ([]state.PeerInfo, error) {
	var dtos []NodeDTO
	q := SearchQuery{Type: capType, Name: name, Limit: limit}
	if err := c.mode.request(ctx, reqSearch, q, &dtos); err != nil {
		return nil, err
	}
	peers := make([]state.PeerInfo, 0, len(dtos))
	for _, d := range dtos {
		peers = append(peers, d.toPeerInfo())
	}
	return peers, nil
}

// Query searches for peers satisfying required capabilities and returns
// them sorted by reputation descending, per spec.md section 4.8.
func (c *Client) Query(ctx context.Context, required []state.Capability, limit int) ([]state.PeerInfo, error) {
	var all []state.PeerInfo
	if len(required) == 0 {
		peers, err := c.SearchCapabilities(ctx, "", "", limit)
		if err != nil {
			return nil, err
		}
		all = peers
	} else {
		seen := make(map[string]bool)
		for _, req := range required {
			peers, err := c.SearchCapabilities(ctx, req.Type, req.Name, limit)
			if err != nil {
				return nil, err
			}
			for _, p := range peers {
				if seen[p.ID] {
					continue
				}
				seen[p.ID] = true
				all = append(all, p)
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return reputationScore(all[i]) > reputationScore(all[j])
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func reputationScore(p state.PeerInfo) float64 {
	if p.Reputation == nil {
		return 0
	}
	return p.Reputation.Score
}

func toRegisterRequest(info state.PeerInfo) RegisterRequest {
	caps := make([]CapabilityDTO, 0, len(info.Capabilities))
	for _, c := range info.Capabilities {
		caps = append(caps, CapabilityDTO{Type: c.Type, Name: c.Name, Version: c.Version, Metadata: c.Metadata})
	}
	return RegisterRequest{ID: info.ID, Addresses: info.Addresses, Capabilities: caps}
}

func (d NodeDTO) toPeerInfo() state.PeerInfo {
	caps := make([]state.Capability, 0, len(d.Capabilities))
	for _, c := range d.Capabilities {
		caps = append(caps, state.Capability{Type: c.Type, Name: c.Name, Version: c.Version, Metadata: c.Metadata})
	}
	return state.PeerInfo{
		ID:           d.ID,
		Addresses:    d.Addresses,
		Capabilities: caps,
		Reputation:   &state.Reputation{Score: d.Reputation},
	}
}
