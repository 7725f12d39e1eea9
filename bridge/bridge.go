// SPDX-License-Identifier: LGPL-3.0-or-later

package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecco-mesh/ecco/identity"
	"github.com/ecco-mesh/ecco/internal/logger"
	"github.com/ecco-mesh/ecco/state"
)

// HandshakeTimeout is the default pending-handshake deadline of spec.md
// section 4.4.
const HandshakeTimeout = 30 * time.Second

// RejectDisconnectDelay is how long the bridge waits after sending a
// rejection notice before disconnecting the peer, giving the notice time
// to flush.
const RejectDisconnectDelay = 2 * time.Second

// SendFunc delivers raw bytes to a single peer via whichever transport
// adapter the node selects.
type SendFunc func(ctx context.Context, peerID string, data []byte) error

// DisconnectFunc tears down a peer's transport connection.
type DisconnectFunc func(ctx context.Context, peerID string) error

// Config configures a Bridge.
type Config struct {
	Identity *identity.Identity
	Store    *state.Store

	Enforcement        EnforcementLevel
	ProtocolVersion     string
	MinProtocolVersion  string
	NetworkID           string
	ConstitutionHash    string
	UpgradeURL          string
	HandshakeTimeout    time.Duration
	RejectDisconnectDelay time.Duration

	Send       SendFunc
	Disconnect DisconnectFunc

	Log logger.Logger
}

// Callbacks are optional hooks the surrounding node supplies.
type Callbacks struct {
	OnPeerValidated       func(peerID string)
	OnPeerRejected        func(peerID string, reason string)
	OnUpgradeRequired     func(peerID string, requiredVersion string, upgradeURL string)
	OnConstitutionMismatch func(peerID string, expectedHash, receivedHash string)
	OnHandshakeTimeout    func(peerID string)
}

// Bridge mediates signing, verification, the handshake state machine and
// dispatch for a single node, per spec.md section 4.4.
type Bridge struct {
	cfg Config
	log logger.Logger

	callbacks Callbacks

	peerHandlers     map[string][]Handler
	wildcardHandlers []Handler
	topicHandlers    map[string][]TopicHandlerFunc
}

// New constructs a Bridge. cfg.Send and cfg.Store must be non-nil.
func New(cfg Config) *Bridge {
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = HandshakeTimeout
	}
	if cfg.RejectDisconnectDelay <= 0 {
		cfg.RejectDisconnectDelay = RejectDisconnectDelay
	}
	if cfg.Enforcement == "" {
		cfg.Enforcement = EnforcementStrict
	}
	if cfg.Log == nil {
		cfg.Log = logger.GetDefaultLogger()
	}
	return &Bridge{
		cfg:           cfg,
		log:           cfg.Log,
		peerHandlers:  make(map[string][]Handler),
		topicHandlers: make(map[string][]TopicHandlerFunc),
	}
}

// SetCallbacks installs the node-level callback set.
func (b *Bridge) SetCallbacks(cb Callbacks) { b.callbacks = cb }

// RegisterHandler attaches h to direct messages from peerID, or to every
// peer when peerID is "*".
func (b *Bridge) RegisterHandler(peerID string, h Handler) {
	if peerID == "*" {
		b.wildcardHandlers = append(b.wildcardHandlers, h)
		return
	}
	b.peerHandlers[peerID] = append(b.peerHandlers[peerID], h)
}

// RegisterTopicHandler attaches h to broadcast messages on topic.
func (b *Bridge) RegisterTopicHandler(topic string, h TopicHandlerFunc) {
	b.topicHandlers[topic] = append(b.topicHandlers[topic], h)
}

func (b *Bridge) signable(msg Message) identity.Signable {
	return identity.Signable{
		ID: msg.ID, From: msg.From, To: msg.To, Type: msg.Type,
		Payload: msg.Payload, Timestamp: msg.Timestamp,
	}
}

// Serialize signs msg (when an identity is configured) and JSON-encodes
// it for handoff to a transport adapter's Send.
func (b *Bridge) Serialize(msg Message) ([]byte, error) {
	if b.cfg.Identity != nil {
		sig, pub, err := b.cfg.Identity.Sign(b.signable(msg))
		if err != nil {
			return nil, fmt.Errorf("bridge: serialize: %w", err)
		}
		msg.Signature = sig
		msg.PublicKey = pub
	}
	return json.Marshal(msg)
}

// SerializeTopicMessage wraps msg as a TopicMessage for broadcast.
func (b *Bridge) SerializeTopicMessage(topic string, msg Message) ([]byte, error) {
	if b.cfg.Identity != nil {
		sig, pub, err := b.cfg.Identity.Sign(b.signable(msg))
		if err != nil {
			return nil, fmt.Errorf("bridge: serializeTopicMessage: %w", err)
		}
		msg.Signature = sig
		msg.PublicKey = pub
	}
	return json.Marshal(TopicMessage{Topic: topic, Message: msg})
}

// Deserialize parses, authenticates and processes an inbound payload
// from attestedPeerID (the transport-attested sender). It rejects
// oversized payloads, missing/invalid signatures when auth is enabled,
// and impersonation (message.from != attestedPeerID), then drives the
// handshake state machine and dispatch, per spec.md section 4.4.
func (b *Bridge) Deserialize(ctx context.Context, attestedPeerID string, raw []byte) (Message, bool, error) {
	var zero Message
	if len(raw) > MaxMessageBytes {
		return zero, false, fmt.Errorf("bridge: payload exceeds %d bytes", MaxMessageBytes)
	}

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return zero, false, fmt.Errorf("bridge: decode message: %w", err)
	}

	if msg.From != attestedPeerID {
		return zero, false, fmt.Errorf("bridge: message.from %q != attested peer %q", msg.From, attestedPeerID)
	}

	if b.cfg.Identity != nil {
		if msg.Signature == "" || msg.PublicKey == "" {
			return zero, false, fmt.Errorf("bridge: message from %s missing signature", msg.From)
		}
		if err := b.cfg.Identity.Verify(b.signable(msg), msg.Signature, msg.PublicKey); err != nil {
			return zero, false, fmt.Errorf("bridge: verify message from %s: %w", msg.From, err)
		}
	}

	b.handleValidatedInbound(ctx, msg)
	return msg, true, nil
}

// DeserializeTopicMessage parses and processes an inbound broadcast
// payload the same way Deserialize does for direct messages.
func (b *Bridge) DeserializeTopicMessage(ctx context.Context, attestedPeerID string, raw []byte) (TopicMessage, bool, error) {
	var zero TopicMessage
	if len(raw) > MaxMessageBytes {
		return zero, false, fmt.Errorf("bridge: payload exceeds %d bytes", MaxMessageBytes)
	}
	var tm TopicMessage
	if err := json.Unmarshal(raw, &tm); err != nil {
		return zero, false, fmt.Errorf("bridge: decode topic message: %w", err)
	}
	if tm.Message.From != attestedPeerID {
		return zero, false, fmt.Errorf("bridge: message.from %q != attested peer %q", tm.Message.From, attestedPeerID)
	}
	if b.cfg.Identity != nil {
		if tm.Message.Signature == "" || tm.Message.PublicKey == "" {
			return zero, false, fmt.Errorf("bridge: topic message from %s missing signature", tm.Message.From)
		}
		if err := b.cfg.Identity.Verify(b.signable(tm.Message), tm.Message.Signature, tm.Message.PublicKey); err != nil {
			return zero, false, fmt.Errorf("bridge: verify topic message from %s: %w", tm.Message.From, err)
		}
	}
	b.dispatchTopic(tm.Topic, tm.Message.Payload)
	return tm, true, nil
}

// newMessageID mints a message id for handshake/notice messages the
// bridge originates itself.
func newMessageID() string { return uuid.NewString() }
