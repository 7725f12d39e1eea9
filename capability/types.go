// SPDX-License-Identifier: LGPL-3.0-or-later

// Package capability implements the gossip-based capability
// announcement/request/response protocol of spec.md section 4.6, signed
// the same way direct messages are and carried over the transport
// layer's pub/sub primitive.
package capability

import (
	"github.com/ecco-mesh/ecco/state"
)

// Gossip topics, per spec.md section 6.
const (
	TopicCapabilities     = "ecco:capabilities"
	TopicCapabilityRequest = "ecco:capability-request"
	TopicCapabilityResponse = "ecco:capability-response"
)

// Announcement message kind tags, matching the Event union of spec.md
// section 3.
const (
	TypeAnnouncement = "capability-announcement"
	TypeRequest      = "capability-request"
	TypeResponse     = "capability-response"
)

// Announcement is published on TopicCapabilities at startup and on every
// capability-set mutation.
type Announcement struct {
	PeerID       string             `json:"peerId"`
	Libp2pPeerID string             `json:"libp2pPeerId,omitempty"`
	Capabilities []state.Capability `json:"capabilities"`
	Timestamp    int64              `json:"timestamp"`
	Signature    string             `json:"signature,omitempty"`
	PublicKey    string             `json:"publicKey,omitempty"`
}

// Request is published on TopicCapabilityRequest by a querier when local
// matching yields no result.
type Request struct {
	RequestID            string   `json:"requestId"`
	From                 string   `json:"from"`
	RequiredCapabilities []state.Capability `json:"requiredCapabilities"`
	PreferredPeers       []string `json:"preferredPeers,omitempty"`
	Timestamp            int64    `json:"timestamp"`
	Signature            string   `json:"signature,omitempty"`
	PublicKey            string   `json:"publicKey,omitempty"`
}

// Response is published on TopicCapabilityResponse in reply to a Request
// this node can help satisfy.
type Response struct {
	RequestID    string             `json:"requestId"`
	PeerID       string             `json:"peerId"`
	Libp2pPeerID string             `json:"libp2pPeerId,omitempty"`
	Capabilities []state.Capability `json:"capabilities"`
	Timestamp    int64              `json:"timestamp"`
	Signature    string             `json:"signature,omitempty"`
	PublicKey    string             `json:"publicKey,omitempty"`
}

// expectedAnnouncer resolves the peer id an Announcement/Response signature
// must verify against, per spec.md section 4.6 ("expectedPeerId =
// libp2pPeerId ?? peerId").
func expectedAnnouncer(peerID, libp2pPeerID string) string {
	if libp2pPeerID != "" {
		return libp2pPeerID
	}
	return peerID
}
