// SPDX-License-Identifier: LGPL-3.0-or-later

package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecco-mesh/ecco/identity"
	"github.com/ecco-mesh/ecco/internal/logger"
	"github.com/ecco-mesh/ecco/state"
	"github.com/ecco-mesh/ecco/transport"
)

// SelfMatchFunc reports whether this node's own capability set satisfies
// at least one of the required capabilities of an incoming Request, per
// spec.md section 4.6 ("using the matcher in 4.7 against a synthetic
// self-peer"). The node composition root supplies this, backed by the
// matcher package's scoring function.
type SelfMatchFunc func(required []state.Capability) bool

// Config configures a Protocol instance.
type Config struct {
	Identity  *identity.Identity
	Store     *state.Store
	PubSub    transport.PubSub
	SelfMatch SelfMatchFunc
	Log       logger.Logger
}

// Protocol runs the capability gossip state machine over a pub/sub
// transport.
type Protocol struct {
	cfg Config
	log logger.Logger
}

// New constructs a Protocol and subscribes to the three gossip topics.
func New(cfg Config) (*Protocol, error) {
	if cfg.Log == nil {
		cfg.Log = logger.GetDefaultLogger()
	}
	p := &Protocol{cfg: cfg, log: cfg.Log}
	if err := cfg.PubSub.Subscribe(TopicCapabilities, p.onAnnouncement); err != nil {
		return nil, fmt.Errorf("capability: subscribe announcements: %w", err)
	}
	if err := cfg.PubSub.Subscribe(TopicCapabilityRequest, p.onRequest); err != nil {
		return nil, fmt.Errorf("capability: subscribe requests: %w", err)
	}
	if err := cfg.PubSub.Subscribe(TopicCapabilityResponse, p.onResponse); err != nil {
		return nil, fmt.Errorf("capability: subscribe responses: %w", err)
	}
	return p, nil
}

// signable builds the canonicalization target for a gossip message.
// from must be the CLAIMED signer (self when signing outbound, the
// remote's claimed peer id when verifying inbound) — identity.Verify
// asserts the public key embedded in the signature derives this exact
// peer id.
func signable(id, from, msgType string, payload interface{}, ts int64) identity.Signable {
	return identity.Signable{ID: id, From: from, To: "", Type: msgType, Payload: payload, Timestamp: ts}
}

// Announce publishes the node's current capability set on
// TopicCapabilities, called at startup and whenever the capability set
// mutates.
func (p *Protocol) Announce(ctx context.Context, capabilities []state.Capability) error {
	now := time.Now().UnixMilli()
	self := p.cfg.Identity.PeerID()
	ann := Announcement{
		PeerID:       self,
		Capabilities: capabilities,
		Timestamp:    now,
	}
	sig, pub, err := p.cfg.Identity.Sign(signable("", self, TypeAnnouncement, ann.Capabilities, now))
	if err != nil {
		return fmt.Errorf("capability: sign announcement: %w", err)
	}
	ann.Signature, ann.PublicKey = sig, pub

	raw, err := json.Marshal(ann)
	if err != nil {
		return fmt.Errorf("capability: marshal announcement: %w", err)
	}
	return p.cfg.PubSub.Publish(ctx, TopicCapabilities, raw)
}

func (p *Protocol) onAnnouncement(raw []byte) {
	var ann Announcement
	if err := json.Unmarshal(raw, &ann); err != nil {
		p.log.Debug("capability: malformed announcement", logger.Error(err))
		return
	}
	if ann.PeerID == p.cfg.Identity.PeerID() {
		return
	}
	expected := expectedAnnouncer(ann.PeerID, ann.Libp2pPeerID)
	if err := p.cfg.Identity.Verify(signable("", expected, TypeAnnouncement, ann.Capabilities, ann.Timestamp), ann.Signature, ann.PublicKey); err != nil {
		p.log.Debug("capability: announcement signature invalid", logger.String("peer", ann.PeerID), logger.Error(err))
		return
	}

	_, _ = state.Modify(p.cfg.Store, func(next *state.NodeState) (*state.NodeState, struct{}, error) {
		info, ok := next.Peers.Get(ann.PeerID)
		if !ok {
			info = state.PeerInfo{ID: ann.PeerID}
		}
		info.Capabilities = ann.Capabilities
		info.LastSeen = time.UnixMilli(ann.Timestamp)
		next.Peers.Upsert(info)
		return next, struct{}{}, nil
	})
}

// RequestCapabilities publishes a capability-request when local matching
// yields no result.
func (p *Protocol) RequestCapabilities(ctx context.Context, required []state.Capability, preferredPeers []string) (string, error) {
	requestID := uuid.NewString()
	now := time.Now().UnixMilli()
	self := p.cfg.Identity.PeerID()
	req := Request{
		RequestID: requestID, From: self,
		RequiredCapabilities: required, PreferredPeers: preferredPeers, Timestamp: now,
	}
	sig, pub, err := p.cfg.Identity.Sign(signable(requestID, self, TypeRequest, req.RequiredCapabilities, now))
	if err != nil {
		return "", fmt.Errorf("capability: sign request: %w", err)
	}
	req.Signature, req.PublicKey = sig, pub

	raw, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("capability: marshal request: %w", err)
	}
	return requestID, p.cfg.PubSub.Publish(ctx, TopicCapabilityRequest, raw)
}

func (p *Protocol) onRequest(raw []byte) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		p.log.Debug("capability: malformed request", logger.Error(err))
		return
	}
	if req.From == p.cfg.Identity.PeerID() {
		return
	}
	if err := p.cfg.Identity.Verify(signable(req.RequestID, req.From, TypeRequest, req.RequiredCapabilities, req.Timestamp), req.Signature, req.PublicKey); err != nil {
		p.log.Debug("capability: request signature invalid", logger.String("peer", req.From), logger.Error(err))
		return
	}

	if p.cfg.SelfMatch == nil || !p.cfg.SelfMatch(req.RequiredCapabilities) {
		return
	}

	snap := p.cfg.Store.Snapshot()
	now := time.Now().UnixMilli()
	self := p.cfg.Identity.PeerID()
	resp := Response{
		RequestID: req.RequestID, PeerID: self,
		Capabilities: snap.Capabilities, Timestamp: now,
	}
	sig, pub, err := p.cfg.Identity.Sign(signable(req.RequestID, self, TypeResponse, resp.Capabilities, now))
	if err != nil {
		p.log.Error("capability: sign response failed", logger.Error(err))
		return
	}
	resp.Signature, resp.PublicKey = sig, pub

	out, err := json.Marshal(resp)
	if err != nil {
		p.log.Error("capability: marshal response failed", logger.Error(err))
		return
	}
	if err := p.cfg.PubSub.Publish(context.Background(), TopicCapabilityResponse, out); err != nil {
		p.log.Debug("capability: publish response failed", logger.Error(err))
	}
}

func (p *Protocol) onResponse(raw []byte) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		p.log.Debug("capability: malformed response", logger.Error(err))
		return
	}
	expected := expectedAnnouncer(resp.PeerID, resp.Libp2pPeerID)
	if err := p.cfg.Identity.Verify(signable(resp.RequestID, expected, TypeResponse, resp.Capabilities, resp.Timestamp), resp.Signature, resp.PublicKey); err != nil {
		p.log.Debug("capability: response signature invalid", logger.String("peer", resp.PeerID), logger.Error(err))
		return
	}

	_, _ = state.Modify(p.cfg.Store, func(next *state.NodeState) (*state.NodeState, struct{}, error) {
		info, ok := next.Peers.Get(resp.PeerID)
		if !ok {
			info = state.PeerInfo{ID: resp.PeerID}
		}
		info.Capabilities = resp.Capabilities
		info.LastSeen = time.UnixMilli(resp.Timestamp)
		next.Peers.Upsert(info)
		return next, struct{}{}, nil
	})
}
