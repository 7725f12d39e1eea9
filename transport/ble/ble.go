// SPDX-License-Identifier: LGPL-3.0-or-later

// Package ble implements the proximity-transport variant of spec.md
// section 4.3 as an in-process simulated medium: there is no portable
// Bluetooth LE library in the dependency corpus this module is built
// from, so peers "advertise" onto and "scan" a shared Medium instead of
// real radio hardware. Call sites that expect a Bluetooth LE adapter get
// the same transport.Adapter surface and the same connect/send/broadcast
// semantics; only the discovery substrate differs.
package ble

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ecco-mesh/ecco/transport"
)

// Medium is the shared advertisement/connection bus every Adapter in a
// process registers with, standing in for the broadcast radio medium
// real BLE advertisement packets travel over.
type Medium struct {
	mu       sync.RWMutex
	adapters map[string]*Adapter
}

// NewMedium constructs an empty shared medium.
func NewMedium() *Medium {
	return &Medium{adapters: make(map[string]*Adapter)}
}

func (m *Medium) register(a *Adapter) {
	m.mu.Lock()
	m.adapters[a.selfID] = a
	m.mu.Unlock()
}

func (m *Medium) unregister(id string) {
	m.mu.Lock()
	delete(m.adapters, id)
	m.mu.Unlock()
}

func (m *Medium) advertisements() []transport.Peer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]transport.Peer, 0, len(m.adapters))
	for _, a := range m.adapters {
		out = append(out, a.advertisement())
	}
	return out
}

func (m *Medium) lookup(id string) (*Adapter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.adapters[id]
	return a, ok
}

// Config configures a BLE adapter.
type Config struct {
	SelfID       string
	RSSI         int // simulated signal strength advertised to scanners
	ScanInterval time.Duration
	Medium       *Medium
}

// Adapter is the simulated proximity implementation of transport.Adapter.
type Adapter struct {
	selfID       string
	rssi         int
	scanInterval time.Duration
	medium       *Medium

	mu       sync.RWMutex
	connected map[string]transport.Peer
	known     map[string]transport.Peer

	onDiscovery transport.DiscoveryHandler
	onConn      transport.ConnectionHandler
	onMessage   transport.MessageHandler

	stopScan chan struct{}
}

// New constructs a BLE adapter bound to medium. Every adapter sharing a
// Medium can discover and connect to one another within the process.
func New(cfg Config) *Adapter {
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = 2 * time.Second
	}
	if cfg.Medium == nil {
		cfg.Medium = NewMedium()
	}
	return &Adapter{
		selfID:       cfg.SelfID,
		rssi:         cfg.RSSI,
		scanInterval: cfg.ScanInterval,
		medium:       cfg.Medium,
		connected:    make(map[string]transport.Peer),
		known:        make(map[string]transport.Peer),
	}
}

// Variant implements transport.Adapter.
func (a *Adapter) Variant() transport.Variant { return transport.VariantBluetoothLE }

// Initialize implements transport.Adapter.
func (a *Adapter) Initialize(ctx context.Context) error {
	a.medium.register(a)
	return nil
}

// Shutdown implements transport.Adapter.
func (a *Adapter) Shutdown(ctx context.Context) error {
	if a.stopScan != nil {
		close(a.stopScan)
		a.stopScan = nil
	}
	a.medium.unregister(a.selfID)
	return nil
}

// StartDiscovery begins periodically scanning the shared medium for
// other registered adapters' advertisements.
func (a *Adapter) StartDiscovery(ctx context.Context) error {
	if a.stopScan != nil {
		return nil
	}
	a.stopScan = make(chan struct{})
	go a.scanLoop(a.stopScan)
	return nil
}

// StopDiscovery implements transport.Adapter.
func (a *Adapter) StopDiscovery(ctx context.Context) error {
	if a.stopScan == nil {
		return nil
	}
	close(a.stopScan)
	a.stopScan = nil
	return nil
}

// Connect "pairs" with peer.ID if it is currently advertising on the
// shared medium.
func (a *Adapter) Connect(ctx context.Context, peer transport.Peer) error {
	other, ok := a.medium.lookup(peer.ID)
	if !ok {
		return fmt.Errorf("ble: peer %s is not advertising", peer.ID)
	}

	a.mu.Lock()
	a.connected[peer.ID] = other.advertisement()
	a.mu.Unlock()
	if a.onConn != nil {
		a.onConn(peer.ID, true)
	}

	other.mu.Lock()
	other.connected[a.selfID] = a.advertisement()
	other.mu.Unlock()
	if other.onConn != nil {
		other.onConn(a.selfID, true)
	}
	return nil
}

// Disconnect implements transport.Adapter.
func (a *Adapter) Disconnect(ctx context.Context, peerID string) error {
	a.mu.Lock()
	_, ok := a.connected[peerID]
	delete(a.connected, peerID)
	a.mu.Unlock()
	if ok && a.onConn != nil {
		a.onConn(peerID, false)
	}
	return nil
}

// Send delivers data directly to a connected peer's message handler.
func (a *Adapter) Send(ctx context.Context, peerID string, data []byte) error {
	a.mu.RLock()
	_, ok := a.connected[peerID]
	a.mu.RUnlock()
	if !ok {
		return fmt.Errorf("ble: not connected to peer %s", peerID)
	}
	other, ok := a.medium.lookup(peerID)
	if !ok {
		return fmt.Errorf("ble: peer %s no longer present", peerID)
	}
	other.deliver(a.selfID, data)
	return nil
}

// Broadcast delivers data to every connected peer.
func (a *Adapter) Broadcast(ctx context.Context, data []byte) error {
	a.mu.RLock()
	ids := make([]string, 0, len(a.connected))
	for id := range a.connected {
		ids = append(ids, id)
	}
	a.mu.RUnlock()

	for _, id := range ids {
		if other, ok := a.medium.lookup(id); ok {
			other.deliver(a.selfID, data)
		}
	}
	return nil
}

// GetConnectedPeers implements transport.Adapter.
func (a *Adapter) GetConnectedPeers() []transport.Peer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]transport.Peer, 0, len(a.connected))
	for _, p := range a.connected {
		out = append(out, p)
	}
	return out
}

// GetDiscoveredPeers implements transport.Adapter.
func (a *Adapter) GetDiscoveredPeers() []transport.Peer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]transport.Peer, 0, len(a.known))
	for _, p := range a.known {
		out = append(out, p)
	}
	return out
}

// OnDiscovery implements transport.Adapter.
func (a *Adapter) OnDiscovery(h transport.DiscoveryHandler) { a.onDiscovery = h }

// OnConnection implements transport.Adapter.
func (a *Adapter) OnConnection(h transport.ConnectionHandler) { a.onConn = h }

// OnMessage implements transport.Adapter.
func (a *Adapter) OnMessage(h transport.MessageHandler) { a.onMessage = h }

func (a *Adapter) advertisement() transport.Peer {
	rssi := a.rssi
	return transport.Peer{
		ID:        a.selfID,
		Transport: transport.VariantBluetoothLE,
		RSSI:      &rssi,
		LastSeen:  time.Now(),
	}
}

func (a *Adapter) deliver(from string, data []byte) {
	if a.onMessage == nil {
		return
	}
	a.onMessage(transport.Message{
		ID:        fmt.Sprintf("%s-%d", from, time.Now().UnixNano()),
		From:      from,
		To:        a.selfID,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func (a *Adapter) scanLoop(stop chan struct{}) {
	ticker := time.NewTicker(a.scanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			for _, peer := range a.medium.advertisements() {
				if peer.ID == a.selfID {
					continue
				}
				a.mu.Lock()
				a.known[peer.ID] = peer
				a.mu.Unlock()
				if a.onDiscovery != nil {
					a.onDiscovery(peer)
				}
			}
		}
	}
}
