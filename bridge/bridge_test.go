// SPDX-License-Identifier: LGPL-3.0-or-later

package bridge

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ecco-mesh/ecco/identity"
	"github.com/ecco-mesh/ecco/state"
)

type wiredPeer struct {
	bridge *Bridge
}

// newWiredPair builds two bridges whose Send funcs deliver directly into
// each other's Deserialize, simulating a connected transport pair.
func newWiredPair(t *testing.T, enforcement EnforcementLevel) (*wiredPeer, *wiredPeer) {
	t.Helper()
	idA, err := identity.Generate()
	require.NoError(t, err)
	idB, err := identity.Generate()
	require.NoError(t, err)

	a := &wiredPeer{}
	b := &wiredPeer{}

	a.bridge = New(Config{
		Identity: idA, Store: state.NewStore(state.NewNodeState(idA.PeerID(), 100), nil),
		Enforcement: enforcement, ProtocolVersion: "1.0.0", NetworkID: "test-net",
		ConstitutionHash: "hash-v1", HandshakeTimeout: 200 * time.Millisecond,
		RejectDisconnectDelay: 10 * time.Millisecond,
		Send: func(ctx context.Context, peerID string, data []byte) error {
			_, _, err := b.bridge.Deserialize(ctx, idA.PeerID(), data)
			return err
		},
	})
	b.bridge = New(Config{
		Identity: idB, Store: state.NewStore(state.NewNodeState(idB.PeerID(), 100), nil),
		Enforcement: enforcement, ProtocolVersion: "1.0.0", NetworkID: "test-net",
		ConstitutionHash: "hash-v1", HandshakeTimeout: 200 * time.Millisecond,
		RejectDisconnectDelay: 10 * time.Millisecond,
		Send: func(ctx context.Context, peerID string, data []byte) error {
			_, _, err := a.bridge.Deserialize(ctx, idB.PeerID(), data)
			return err
		},
	})
	return a, b
}

func TestHandshakeAcceptedPromotesBothPeers(t *testing.T) {
	a, b := newWiredPair(t, EnforcementStrict)
	ctx := context.Background()

	require.NoError(t, a.bridge.InitiateHandshake(ctx, b.bridge.cfg.Identity.PeerID()))

	require.Eventually(t, func() bool {
		snapA := a.bridge.cfg.Store.Snapshot()
		snapB := b.bridge.cfg.Store.Snapshot()
		_, aHasB := snapA.ValidatedPeers[b.bridge.cfg.Identity.PeerID()]
		_, bHasA := snapB.ValidatedPeers[a.bridge.cfg.Identity.PeerID()]
		return aHasB && bHasA
	}, time.Second, 5*time.Millisecond)
}

func TestConstitutionMismatchRejectsHandshake(t *testing.T) {
	a, b := newWiredPair(t, EnforcementStrict)
	b.bridge.cfg.ConstitutionHash = "different-hash"
	ctx := context.Background()

	var rejected string
	a.bridge.SetCallbacks(Callbacks{
		OnPeerRejected: func(peerID, reason string) { rejected = peerID },
	})

	require.NoError(t, a.bridge.InitiateHandshake(ctx, b.bridge.cfg.Identity.PeerID()))

	require.Eventually(t, func() bool {
		return rejected == b.bridge.cfg.Identity.PeerID()
	}, time.Second, 5*time.Millisecond)

	snapA := a.bridge.cfg.Store.Snapshot()
	_, validated := snapA.ValidatedPeers[b.bridge.cfg.Identity.PeerID()]
	require.False(t, validated)
}

func TestNonHandshakeMessageQueuedUntilValidated(t *testing.T) {
	a, b := newWiredPair(t, EnforcementStrict)
	ctx := context.Background()

	var delivered []Message
	b.bridge.RegisterHandler("*", func(msg Message) { delivered = append(delivered, msg) })

	payload, _ := json.Marshal(map[string]string{"hello": "world"})
	msg := Message{ID: "m1", From: a.bridge.cfg.Identity.PeerID(), To: b.bridge.cfg.Identity.PeerID(), Type: "chat", Payload: payload, Timestamp: time.Now().UnixMilli()}
	raw, err := a.bridge.Serialize(msg)
	require.NoError(t, err)
	require.NoError(t, a.bridge.cfg.Send(ctx, b.bridge.cfg.Identity.PeerID(), raw))

	require.Empty(t, delivered, "message must be queued, not dispatched, before handshake completes")

	require.NoError(t, a.bridge.InitiateHandshake(ctx, b.bridge.cfg.Identity.PeerID()))

	require.Eventually(t, func() bool { return len(delivered) == 1 }, time.Second, 5*time.Millisecond)
	require.Equal(t, "m1", delivered[0].ID)
}

func TestEnforcementNoneDispatchesImmediately(t *testing.T) {
	a, b := newWiredPair(t, EnforcementNone)
	ctx := context.Background()

	var delivered []Message
	b.bridge.RegisterHandler("*", func(msg Message) { delivered = append(delivered, msg) })

	payload, _ := json.Marshal(map[string]string{"hello": "world"})
	msg := Message{ID: "m2", From: a.bridge.cfg.Identity.PeerID(), To: b.bridge.cfg.Identity.PeerID(), Type: "chat", Payload: payload, Timestamp: time.Now().UnixMilli()}
	raw, err := a.bridge.Serialize(msg)
	require.NoError(t, err)
	require.NoError(t, a.bridge.cfg.Send(ctx, b.bridge.cfg.Identity.PeerID(), raw))

	require.Len(t, delivered, 1)
}

func TestImpersonationRejected(t *testing.T) {
	a, b := newWiredPair(t, EnforcementNone)

	payload, _ := json.Marshal(map[string]string{"x": "y"})
	msg := Message{ID: "m3", From: "someone-else", To: b.bridge.cfg.Identity.PeerID(), Type: "chat", Payload: payload, Timestamp: time.Now().UnixMilli()}
	raw, err := a.bridge.Serialize(msg)
	require.NoError(t, err)

	_, ok, err := b.bridge.Deserialize(context.Background(), a.bridge.cfg.Identity.PeerID(), raw)
	require.Error(t, err)
	require.False(t, ok)
}

func TestOversizedPayloadRejected(t *testing.T) {
	_, b := newWiredPair(t, EnforcementNone)
	huge := make([]byte, MaxMessageBytes+1)
	_, ok, err := b.bridge.Deserialize(context.Background(), "someone", huge)
	require.Error(t, err)
	require.False(t, ok)
}

func TestAgentResponseDispatchesToPeerTopic(t *testing.T) {
	a, b := newWiredPair(t, EnforcementNone)

	var gotTopic string
	var gotPayload json.RawMessage
	b.bridge.RegisterTopicHandler("peer:"+b.bridge.cfg.Identity.PeerID(), func(topic string, payload json.RawMessage) {
		gotTopic = topic
		gotPayload = payload
	})

	payload, _ := json.Marshal(map[string]string{"result": "42"})
	msg := Message{
		ID: "m4", From: a.bridge.cfg.Identity.PeerID(), To: b.bridge.cfg.Identity.PeerID(),
		Type: TypeAgentResponse, Payload: payload, Timestamp: time.Now().UnixMilli(),
	}
	raw, err := a.bridge.Serialize(msg)
	require.NoError(t, err)
	require.NoError(t, a.bridge.cfg.Send(context.Background(), b.bridge.cfg.Identity.PeerID(), raw))

	require.Equal(t, "peer:"+b.bridge.cfg.Identity.PeerID(), gotTopic)
	require.JSONEq(t, string(payload), string(gotPayload))
}
