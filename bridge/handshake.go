// SPDX-License-Identifier: LGPL-3.0-or-later

package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecco-mesh/ecco/internal/logger"
	"github.com/ecco-mesh/ecco/state"
)

func (b *Bridge) now() int64 { return time.Now().UnixMilli() }

// handleValidatedInbound runs the post-auth portion of the inbound
// pipeline: handshake-message interception, then the per-peer handshake
// state machine gate, then dispatch.
func (b *Bridge) handleValidatedInbound(ctx context.Context, msg Message) {
	switch msg.Type {
	case TypeVersionHandshake:
		b.onVersionHandshake(ctx, msg)
		return
	case TypeVersionHandshakeResponse:
		b.onVersionHandshakeResponse(ctx, msg)
		return
	case TypeIncompatibleNotice, TypeConstitutionMismatch:
		b.log.Debug("bridge: handshake rejection notice", logger.String("peer", msg.From), logger.String("type", msg.Type))
		return
	}

	snap := b.cfg.Store.Snapshot()
	if b.isValidated(snap, msg.From) {
		b.dispatchDirect(msg)
		return
	}

	// unknown/pending peer: queue and opportunistically initiate a handshake.
	_, _ = state.Modify(b.cfg.Store, func(next *state.NodeState) (*state.NodeState, struct{}, error) {
		q := next.QueuedMessages[msg.From]
		q.Push(msg.ID, mustMarshal(msg), time.Now())
		next.QueuedMessages[msg.From] = q
		return next, struct{}{}, nil
	})

	if _, pending := snap.PendingHandshakes[msg.From]; !pending {
		if err := b.InitiateHandshake(ctx, msg.From); err != nil {
			b.log.Debug("bridge: opportunistic handshake failed", logger.String("peer", msg.From), logger.Error(err))
		}
	}
}

func (b *Bridge) isValidated(snap *state.NodeState, peerID string) bool {
	if b.cfg.Enforcement == EnforcementNone {
		return true
	}
	_, ok := snap.ValidatedPeers[peerID]
	return ok
}

// InitiateHandshake builds and sends a signed version-handshake to peerID,
// recording a pendingHandshakes entry with a HandshakeTimeout deadline.
func (b *Bridge) InitiateHandshake(ctx context.Context, peerID string) error {
	now := time.Now()
	_, err := state.Modify(b.cfg.Store, func(next *state.NodeState) (*state.NodeState, struct{}, error) {
		next.PendingHandshakes[peerID] = state.PendingHandshake{
			InitiatedAt: now,
			Deadline:    now.Add(b.cfg.HandshakeTimeout),
		}
		return next, struct{}{}, nil
	})
	if err != nil {
		return err
	}

	go b.scheduleTimeout(ctx, peerID, b.cfg.HandshakeTimeout)

	payload, _ := json.Marshal(VersionHandshakePayload{
		ProtocolVersion:  b.cfg.ProtocolVersion,
		NetworkID:        b.cfg.NetworkID,
		ConstitutionHash: b.cfg.ConstitutionHash,
	})
	msg := Message{
		ID: newMessageID(), From: b.cfg.Identity.PeerID(), To: peerID,
		Type: TypeVersionHandshake, Payload: payload, Timestamp: b.now(),
	}
	raw, err := b.Serialize(msg)
	if err != nil {
		return fmt.Errorf("bridge: serialize handshake: %w", err)
	}
	return b.cfg.Send(ctx, peerID, raw)
}

func (b *Bridge) onVersionHandshake(ctx context.Context, msg Message) {
	var payload VersionHandshakePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.ConstitutionHash == "" {
		b.rejectHard(ctx, msg.From, "malformed version-handshake: missing required fields")
		return
	}

	resp := VersionHandshakeResponsePayload{Accepted: true}
	var reason string
	mismatch := payload.ConstitutionHash != b.cfg.ConstitutionHash
	if mismatch {
		resp.Accepted = false
		resp.ConstitutionMismatch = true
		resp.MinProtocolVersion = b.cfg.MinProtocolVersion
		resp.UpgradeURL = b.cfg.UpgradeURL
		resp.Reason = "constitution hash mismatch"
		reason = resp.Reason
	}

	b.sendHandshakeResponse(ctx, msg.From, resp)

	if !resp.Accepted {
		noticePayload, _ := json.Marshal(ConstitutionMismatchPayload{
			ExpectedHash: b.cfg.ConstitutionHash,
			ReceivedHash: payload.ConstitutionHash,
		})
		b.sendNotice(ctx, msg.From, TypeConstitutionMismatch, noticePayload)
		if b.callbacks.OnConstitutionMismatch != nil {
			b.callbacks.OnConstitutionMismatch(msg.From, b.cfg.ConstitutionHash, payload.ConstitutionHash)
		}
		b.scheduleDisconnect(ctx, msg.From, reason)
		return
	}

	b.promoteToValidated(ctx, msg.From)
}

func (b *Bridge) onVersionHandshakeResponse(ctx context.Context, msg Message) {
	snap := b.cfg.Store.Snapshot()
	if _, pending := snap.PendingHandshakes[msg.From]; !pending {
		return
	}

	_, _ = state.Modify(b.cfg.Store, func(next *state.NodeState) (*state.NodeState, struct{}, error) {
		delete(next.PendingHandshakes, msg.From)
		return next, struct{}{}, nil
	})

	var resp VersionHandshakeResponsePayload
	if err := json.Unmarshal(msg.Payload, &resp); err != nil {
		b.log.Debug("bridge: malformed handshake response", logger.String("peer", msg.From))
		return
	}

	if resp.Accepted {
		b.promoteToValidated(ctx, msg.From)
		b.drainQueue(msg.From)
		return
	}

	if resp.ConstitutionMismatch && b.callbacks.OnConstitutionMismatch != nil {
		b.callbacks.OnConstitutionMismatch(msg.From, "", "")
	}
	if resp.MinProtocolVersion != "" && b.callbacks.OnUpgradeRequired != nil {
		b.callbacks.OnUpgradeRequired(msg.From, resp.MinProtocolVersion, resp.UpgradeURL)
	} else if b.callbacks.OnPeerRejected != nil {
		b.callbacks.OnPeerRejected(msg.From, resp.Reason)
	}
}

func (b *Bridge) rejectHard(ctx context.Context, peerID, reason string) {
	payload, _ := json.Marshal(IncompatibleNoticePayload{
		MinProtocolVersion: b.cfg.MinProtocolVersion,
		UpgradeURL:         b.cfg.UpgradeURL,
		Reason:             reason,
	})
	b.sendNotice(ctx, peerID, TypeIncompatibleNotice, payload)
	b.scheduleDisconnect(ctx, peerID, reason)
}

func (b *Bridge) sendHandshakeResponse(ctx context.Context, peerID string, resp VersionHandshakeResponsePayload) {
	payload, _ := json.Marshal(resp)
	msg := Message{
		ID: newMessageID(), From: b.cfg.Identity.PeerID(), To: peerID,
		Type: TypeVersionHandshakeResponse, Payload: payload, Timestamp: b.now(),
	}
	raw, err := b.Serialize(msg)
	if err != nil {
		b.log.Error("bridge: serialize handshake response failed", logger.Error(err))
		return
	}
	if err := b.cfg.Send(ctx, peerID, raw); err != nil {
		b.log.Debug("bridge: send handshake response failed", logger.String("peer", peerID), logger.Error(err))
	}
}

func (b *Bridge) sendNotice(ctx context.Context, peerID, noticeType string, payload json.RawMessage) {
	msg := Message{
		ID: newMessageID(), From: b.cfg.Identity.PeerID(), To: peerID,
		Type: noticeType, Payload: payload, Timestamp: b.now(),
	}
	raw, err := b.Serialize(msg)
	if err != nil {
		b.log.Error("bridge: serialize notice failed", logger.Error(err))
		return
	}
	if err := b.cfg.Send(ctx, peerID, raw); err != nil {
		b.log.Debug("bridge: send notice failed", logger.String("peer", peerID), logger.Error(err))
	}
}

func (b *Bridge) scheduleDisconnect(ctx context.Context, peerID, reason string) {
	if b.callbacks.OnPeerRejected != nil {
		b.callbacks.OnPeerRejected(peerID, reason)
	}
	delay := b.cfg.RejectDisconnectDelay
	go func() {
		time.Sleep(delay)
		if b.cfg.Disconnect != nil {
			_ = b.cfg.Disconnect(ctx, peerID)
		}
	}()
}

func (b *Bridge) promoteToValidated(ctx context.Context, peerID string) {
	_, _ = state.Modify(b.cfg.Store, func(next *state.NodeState) (*state.NodeState, struct{}, error) {
		next.ValidatedPeers[peerID] = struct{}{}
		delete(next.PendingHandshakes, peerID)
		return next, struct{}{}, nil
	})
	if b.callbacks.OnPeerValidated != nil {
		b.callbacks.OnPeerValidated(peerID)
	}
}

// drainQueue delivers every withheld message for peerID through the
// regular dispatch path, re-verifying each signature against the
// current auth state; failures are discarded, per spec.md section 4.4.
func (b *Bridge) drainQueue(peerID string) {
	snap := b.cfg.Store.Snapshot()
	q, ok := snap.QueuedMessages[peerID]
	if !ok || len(q.Messages) == 0 {
		return
	}
	queued := append([]state.QueuedMessage(nil), q.Messages...)

	_, _ = state.Modify(b.cfg.Store, func(next *state.NodeState) (*state.NodeState, struct{}, error) {
		delete(next.QueuedMessages, peerID)
		return next, struct{}{}, nil
	})

	for _, qm := range queued {
		var msg Message
		if err := json.Unmarshal(qm.Raw, &msg); err != nil {
			continue
		}
		if b.cfg.Identity != nil {
			if msg.Signature == "" || msg.PublicKey == "" {
				continue
			}
			if err := b.cfg.Identity.Verify(b.signable(msg), msg.Signature, msg.PublicKey); err != nil {
				continue
			}
		}
		b.dispatchDirect(msg)
	}
}

// scheduleTimeout fires handleHandshakeTimeout after d unless the pending
// entry has since been resolved (accepted, rejected, or superseded).
func (b *Bridge) scheduleTimeout(ctx context.Context, peerID string, d time.Duration) {
	time.Sleep(d)
	snap := b.cfg.Store.Snapshot()
	entry, pending := snap.PendingHandshakes[peerID]
	if !pending || time.Now().Before(entry.Deadline) {
		return
	}
	b.handleHandshakeTimeout(ctx, peerID)
}

// handleHandshakeTimeout implements spec.md section 4.4's timeout branch:
// strict enforcement rejects and disconnects, relaxed optimistically
// promotes the peer to validated.
func (b *Bridge) handleHandshakeTimeout(ctx context.Context, peerID string) {
	_, _ = state.Modify(b.cfg.Store, func(next *state.NodeState) (*state.NodeState, struct{}, error) {
		delete(next.PendingHandshakes, peerID)
		return next, struct{}{}, nil
	})

	if b.callbacks.OnHandshakeTimeout != nil {
		b.callbacks.OnHandshakeTimeout(peerID)
	}

	if b.cfg.Enforcement == EnforcementStrict {
		if b.callbacks.OnPeerRejected != nil {
			b.callbacks.OnPeerRejected(peerID, "handshake timeout")
		}
		if b.cfg.Disconnect != nil {
			_ = b.cfg.Disconnect(ctx, peerID)
		}
		return
	}

	b.promoteToValidated(ctx, peerID)
	b.drainQueue(peerID)
}

func mustMarshal(msg Message) []byte {
	raw, _ := json.Marshal(msg)
	return raw
}
