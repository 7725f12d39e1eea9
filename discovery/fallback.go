// SPDX-License-Identifier: LGPL-3.0-or-later

package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/ecco-mesh/ecco/transport"
)

// transportPriority computes the ordered list of transport variants to
// try for peer, per spec.md section 4.5: the transport that discovered
// the peer first, then other transports active in the peer's discovery
// phase, then any remaining adapters; biased toward proximity when
// PreferProximity is set.
func (e *Engine) transportPriority(peerID string) []transport.Variant {
	e.mu.Lock()
	var discoveredVia transport.Variant
	var phase Phase
	if el, ok := e.discovered[peerID]; ok {
		entry := el.Value.(*discoveredEntry)
		discoveredVia = entry.info.Transport
		phase = entry.info.Phase
	}
	e.mu.Unlock()

	seen := make(map[transport.Variant]bool)
	var order []transport.Variant
	add := func(v transport.Variant) {
		if v == "" || seen[v] {
			return
		}
		if _, ok := e.adapters[v]; !ok {
			return
		}
		seen[v] = true
		order = append(order, v)
	}

	if e.cfg.PreferProximity {
		add(transport.VariantBluetoothLE)
	}
	add(discoveredVia)
	for _, v := range e.cfg.PhaseTransports[phase] {
		add(v)
	}
	for v := range e.adapters {
		add(v)
	}
	return order
}

// ConnectWithFallback attempts to connect to peer over each transport in
// priority order, retrying each up to ConnectionRetries times spaced by
// RetryDelay, returning the first success.
func (e *Engine) ConnectWithFallback(ctx context.Context, peer transport.Peer) (transport.Variant, error) {
	var lastErr error
	for _, variant := range e.transportPriority(peer.ID) {
		a := e.adapters[variant]
		for attempt := 0; attempt < e.cfg.ConnectionRetries; attempt++ {
			if err := a.Connect(ctx, peer); err == nil {
				return variant, nil
			} else {
				lastErr = err
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(e.cfg.RetryDelay):
			}
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("discovery: no transport available for peer %s", peer.ID)
	}
	return "", fmt.Errorf("discovery: all transports exhausted for peer %s: %w", peer.ID, lastErr)
}

// SendWithFallback attempts to send data to peerID over each transport in
// priority order, one attempt per transport; the first connected adapter
// that doesn't error wins.
func (e *Engine) SendWithFallback(ctx context.Context, peerID string, data []byte) (transport.Variant, error) {
	var lastErr error
	for _, variant := range e.transportPriority(peerID) {
		a := e.adapters[variant]
		connected := false
		for _, p := range a.GetConnectedPeers() {
			if p.ID == peerID {
				connected = true
				break
			}
		}
		if !connected {
			continue
		}
		if err := a.Send(ctx, peerID, data); err == nil {
			return variant, nil
		} else {
			lastErr = err
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("discovery: peer %s not connected on any transport", peerID)
	}
	return "", lastErr
}
