// SPDX-License-Identifier: LGPL-3.0-or-later

package ble

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ecco-mesh/ecco/transport"
)

func TestDiscoveryAndConnectOverSharedMedium(t *testing.T) {
	medium := NewMedium()
	ctx := context.Background()

	a := New(Config{SelfID: "a", Medium: medium, ScanInterval: 10 * time.Millisecond})
	b := New(Config{SelfID: "b", Medium: medium, ScanInterval: 10 * time.Millisecond})
	require.NoError(t, a.Initialize(ctx))
	require.NoError(t, b.Initialize(ctx))
	defer a.Shutdown(ctx)
	defer b.Shutdown(ctx)

	discovered := make(chan transport.Peer, 4)
	a.OnDiscovery(func(p transport.Peer) { discovered <- p })

	require.NoError(t, a.StartDiscovery(ctx))
	defer a.StopDiscovery(ctx)

	select {
	case p := <-discovered:
		require.Equal(t, "b", p.ID)
		require.Equal(t, transport.VariantBluetoothLE, p.Transport)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for discovery")
	}

	require.NoError(t, a.Connect(ctx, transport.Peer{ID: "b"}))
	require.Len(t, a.GetConnectedPeers(), 1)
	require.Len(t, b.GetConnectedPeers(), 1, "connect should be bidirectional")
}

func TestSendDeliversToPeerHandler(t *testing.T) {
	medium := NewMedium()
	ctx := context.Background()

	a := New(Config{SelfID: "a", Medium: medium})
	b := New(Config{SelfID: "b", Medium: medium})
	require.NoError(t, a.Initialize(ctx))
	require.NoError(t, b.Initialize(ctx))
	defer a.Shutdown(ctx)
	defer b.Shutdown(ctx)

	received := make(chan transport.Message, 1)
	b.OnMessage(func(m transport.Message) { received <- m })

	require.NoError(t, a.Connect(ctx, transport.Peer{ID: "b"}))
	require.NoError(t, a.Send(ctx, "b", []byte("hello")))

	select {
	case m := <-received:
		require.Equal(t, "a", m.From)
		require.Equal(t, []byte("hello"), m.Data)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestSendToUnknownPeerFails(t *testing.T) {
	a := New(Config{SelfID: "a", Medium: NewMedium()})
	err := a.Send(context.Background(), "ghost", []byte("x"))
	require.Error(t, err)
}

func TestBroadcastReachesAllConnectedPeers(t *testing.T) {
	medium := NewMedium()
	ctx := context.Background()
	a := New(Config{SelfID: "a", Medium: medium})
	b := New(Config{SelfID: "b", Medium: medium})
	c := New(Config{SelfID: "c", Medium: medium})
	require.NoError(t, a.Initialize(ctx))
	require.NoError(t, b.Initialize(ctx))
	require.NoError(t, c.Initialize(ctx))
	defer a.Shutdown(ctx)
	defer b.Shutdown(ctx)
	defer c.Shutdown(ctx)

	bRecv := make(chan transport.Message, 1)
	cRecv := make(chan transport.Message, 1)
	b.OnMessage(func(m transport.Message) { bRecv <- m })
	c.OnMessage(func(m transport.Message) { cRecv <- m })

	require.NoError(t, a.Connect(ctx, transport.Peer{ID: "b"}))
	require.NoError(t, a.Connect(ctx, transport.Peer{ID: "c"}))
	require.NoError(t, a.Broadcast(ctx, []byte("all")))

	for _, ch := range []chan transport.Message{bRecv, cRecv} {
		select {
		case m := <-ch:
			require.Equal(t, []byte("all"), m.Data)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for broadcast")
		}
	}
}
