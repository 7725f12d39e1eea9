// SPDX-License-Identifier: LGPL-3.0-or-later

package discovery

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ecco-mesh/ecco/transport"
)

// fakeAdapter is a minimal transport.Adapter for exercising the
// discovery engine without a real network.
type fakeAdapter struct {
	variant transport.Variant

	mu        sync.Mutex
	connected map[string]transport.Peer
	sendErr   error
	connectErr error

	onDiscovery transport.DiscoveryHandler
}

func newFakeAdapter(v transport.Variant) *fakeAdapter {
	return &fakeAdapter{variant: v, connected: make(map[string]transport.Peer)}
}

func (f *fakeAdapter) Variant() transport.Variant                 { return f.variant }
func (f *fakeAdapter) Initialize(ctx context.Context) error       { return nil }
func (f *fakeAdapter) Shutdown(ctx context.Context) error         { return nil }
func (f *fakeAdapter) StartDiscovery(ctx context.Context) error   { return nil }
func (f *fakeAdapter) StopDiscovery(ctx context.Context) error    { return nil }
func (f *fakeAdapter) OnConnection(transport.ConnectionHandler)   {}
func (f *fakeAdapter) OnMessage(transport.MessageHandler)         {}
func (f *fakeAdapter) OnDiscovery(h transport.DiscoveryHandler)   { f.onDiscovery = h }

func (f *fakeAdapter) Connect(ctx context.Context, peer transport.Peer) error {
	if f.connectErr != nil {
		return f.connectErr
	}
	f.mu.Lock()
	f.connected[peer.ID] = peer
	f.mu.Unlock()
	return nil
}

func (f *fakeAdapter) Disconnect(ctx context.Context, peerID string) error {
	f.mu.Lock()
	delete(f.connected, peerID)
	f.mu.Unlock()
	return nil
}

func (f *fakeAdapter) Send(ctx context.Context, peerID string, data []byte) error {
	return f.sendErr
}

func (f *fakeAdapter) Broadcast(ctx context.Context, data []byte) error { return nil }

func (f *fakeAdapter) GetConnectedPeers() []transport.Peer {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]transport.Peer, 0, len(f.connected))
	for _, p := range f.connected {
		out = append(out, p)
	}
	return out
}

func (f *fakeAdapter) GetDiscoveredPeers() []transport.Peer { return nil }

func (f *fakeAdapter) emit(peer transport.Peer) {
	if f.onDiscovery != nil {
		f.onDiscovery(peer)
	}
}

func TestStartActivatesFirstPhase(t *testing.T) {
	ble := newFakeAdapter(transport.VariantBluetoothLE)
	mesh := newFakeAdapter(transport.VariantLibp2p)
	e := NewEngine(Config{}, Adapters{transport.VariantBluetoothLE: ble, transport.VariantLibp2p: mesh})
	require.NoError(t, e.Start(context.Background()))
	require.Equal(t, PhaseProximity, e.CurrentPhase())
}

func TestEscalatesWhenNoPeerSeenWithinTTL(t *testing.T) {
	ble := newFakeAdapter(transport.VariantBluetoothLE)
	mesh := newFakeAdapter(transport.VariantLibp2p)
	e := NewEngine(Config{AutoEscalate: true, PhaseTimeout: 30 * time.Millisecond}, Adapters{
		transport.VariantBluetoothLE: ble, transport.VariantLibp2p: mesh,
	})

	var transitions []Phase
	e.OnPhaseChange(func(from, to Phase) { transitions = append(transitions, to) })
	require.NoError(t, e.Start(context.Background()))

	require.Eventually(t, func() bool {
		return e.CurrentPhase() == PhaseLocal
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, []Phase{PhaseLocal}, transitions)
}

func TestObserveResetsEscalationTimer(t *testing.T) {
	ble := newFakeAdapter(transport.VariantBluetoothLE)
	mesh := newFakeAdapter(transport.VariantLibp2p)
	e := NewEngine(Config{AutoEscalate: true, PhaseTimeout: 60 * time.Millisecond}, Adapters{
		transport.VariantBluetoothLE: ble, transport.VariantLibp2p: mesh,
	})
	require.NoError(t, e.Start(context.Background()))

	// Keep feeding sightings faster than PhaseTimeout; engine should
	// never escalate out of proximity.
	for i := 0; i < 5; i++ {
		ble.emit(transport.Peer{ID: "p1", LastSeen: time.Now()})
		time.Sleep(20 * time.Millisecond)
	}
	require.Equal(t, PhaseProximity, e.CurrentPhase())
}

func TestDiscoveredPeersCapAndLRUEviction(t *testing.T) {
	ble := newFakeAdapter(transport.VariantBluetoothLE)
	e := NewEngine(Config{}, Adapters{transport.VariantBluetoothLE: ble})
	require.NoError(t, e.Start(context.Background()))

	for i := 0; i < MaxDiscoveredPeers+10; i++ {
		ble.emit(transport.Peer{ID: fmt.Sprintf("peer-%d", i), LastSeen: time.Now()})
	}
	peers := e.DiscoveredPeers()
	require.Len(t, peers, MaxDiscoveredPeers)
	_, ok := e.Lookup("peer-0")
	require.False(t, ok, "oldest peer should have been evicted")
}

func TestConnectWithFallbackTriesPriorityOrder(t *testing.T) {
	ble := newFakeAdapter(transport.VariantBluetoothLE)
	ble.connectErr = fmt.Errorf("no signal")
	mesh := newFakeAdapter(transport.VariantLibp2p)
	e := NewEngine(Config{ConnectionRetries: 1, RetryDelay: time.Millisecond}, Adapters{
		transport.VariantBluetoothLE: ble, transport.VariantLibp2p: mesh,
	})
	require.NoError(t, e.Start(context.Background()))
	ble.emit(transport.Peer{ID: "y", LastSeen: time.Now()})

	variant, err := e.ConnectWithFallback(context.Background(), transport.Peer{ID: "y"})
	require.NoError(t, err)
	require.Equal(t, transport.VariantLibp2p, variant)
}

func TestSendWithFallbackRequiresConnectedAdapter(t *testing.T) {
	mesh := newFakeAdapter(transport.VariantLibp2p)
	e := NewEngine(Config{}, Adapters{transport.VariantLibp2p: mesh})
	require.NoError(t, e.Start(context.Background()))

	_, err := e.SendWithFallback(context.Background(), "z", []byte("hi"))
	require.Error(t, err, "no adapter reports z as connected yet")

	require.NoError(t, mesh.Connect(context.Background(), transport.Peer{ID: "z"}))
	variant, err := e.SendWithFallback(context.Background(), "z", []byte("hi"))
	require.NoError(t, err)
	require.Equal(t, transport.VariantLibp2p, variant)
}
