// SPDX-License-Identifier: LGPL-3.0-or-later

// Package transport defines the polymorphic Adapter capability set of
// spec.md section 4.3 and the normalized peer/message types every
// variant (wsmesh, ble, ...) emits.
package transport

import (
	"context"
	"time"
)

// Variant tags the transport backing an Adapter, per spec.md section 4.3.
type Variant string

const (
	VariantLibp2p         Variant = "libp2p"
	VariantBluetoothLE    Variant = "bluetooth-le"
	VariantWifiDirect     Variant = "wifi-direct"
	VariantMultipeer      Variant = "multipeer"
	VariantNFC            Variant = "nfc"
	VariantWebRTC         Variant = "webrtc"
	VariantWebsocketRelay Variant = "websocket-relay"
	VariantCustom         Variant = "custom"
)

// Peer is the normalized discovery/connection record every adapter emits.
type Peer struct {
	ID        string
	Transport Variant
	Addresses []string
	RSSI      *int
	LastSeen  time.Time
	Metadata  map[string]interface{}
}

// Message is the normalized wire envelope an adapter delivers to the bridge.
type Message struct {
	ID        string
	From      string
	To        string
	Data      []byte
	Timestamp time.Time
}

// DiscoveryHandler is invoked whenever an adapter observes a peer.
type DiscoveryHandler func(Peer)

// ConnectionHandler is invoked on connect (connected=true) or disconnect.
type ConnectionHandler func(peerID string, connected bool)

// MessageHandler is invoked for every inbound Message.
type MessageHandler func(Message)

// Adapter is the capability set every transport backend implements,
// per spec.md section 4.3.
type Adapter interface {
	Variant() Variant

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error

	StartDiscovery(ctx context.Context) error
	StopDiscovery(ctx context.Context) error

	Connect(ctx context.Context, peer Peer) error
	Disconnect(ctx context.Context, peerID string) error

	Send(ctx context.Context, peerID string, data []byte) error
	Broadcast(ctx context.Context, data []byte) error

	GetConnectedPeers() []Peer
	GetDiscoveredPeers() []Peer

	OnDiscovery(DiscoveryHandler)
	OnConnection(ConnectionHandler)
	OnMessage(MessageHandler)
}

// PubSub is the additional publish/subscribe primitive the libp2p-tagged
// adapter exposes for capability gossip, per spec.md section 4.3/4.6.
type PubSub interface {
	Publish(ctx context.Context, topic string, data []byte) error
	Subscribe(topic string, handler func(data []byte)) error
	Unsubscribe(topic string) error
}
