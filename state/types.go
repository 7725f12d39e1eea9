// SPDX-License-Identifier: LGPL-3.0-or-later

// Package state implements the node's central versioned state store and
// the compare-and-swap update path every mutating component goes through,
// per spec.md section 4.2 and the NodeState data model of section 3.
package state

import "time"

// Capability identifies a typed thing a peer can do. Equality is by
// (Type, Name); Version and Metadata only contribute to match score
// (see the matcher package).
type Capability struct {
	Type     string                 `json:"type"`
	Name     string                 `json:"name"`
	Version  string                 `json:"version"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Equal reports whether two capabilities share the same (Type, Name) key.
func (c Capability) Equal(o Capability) bool {
	return c.Type == o.Type && c.Name == o.Name
}

// Reputation is the reputation snapshot attached to a PeerInfo.
type Reputation struct {
	Score         float64 `json:"score"`
	SuccessfulJob int64   `json:"successfulJobs"`
	FailedJobs    int64   `json:"failedJobs"`
}

// PeerInfo is the state store's record of a known peer.
type PeerInfo struct {
	ID           string       `json:"id"`
	Addresses    []string     `json:"addresses"`
	Capabilities []Capability `json:"capabilities"`
	LastSeen     time.Time    `json:"lastSeen"`
	Reputation   *Reputation  `json:"reputation,omitempty"`
}

// Clone deep-copies a PeerInfo for copy-on-write mutation.
func (p PeerInfo) Clone() PeerInfo {
	np := p
	np.Addresses = append([]string(nil), p.Addresses...)
	np.Capabilities = append([]Capability(nil), p.Capabilities...)
	if p.Reputation != nil {
		r := *p.Reputation
		np.Reputation = &r
	}
	return np
}

// PendingHandshake records an in-flight handshake initiated by us.
type PendingHandshake struct {
	InitiatedAt time.Time
	Deadline    time.Time
}

// QueuedMessage is a non-handshake message withheld while its sender's
// handshake is pending, per spec.md section 4.4.
type QueuedMessage struct {
	ID        string
	Raw       []byte
	QueuedAt  time.Time
}

// PeerQueue is a bounded, deduplicated per-peer queue of withheld messages.
type PeerQueue struct {
	Messages []QueuedMessage
	seen     map[string]struct{}
}

// MaxQueuedMessagesPerPeer is the per-peer cap from spec.md section 3.
const MaxQueuedMessagesPerPeer = 100

// Clone deep-copies a PeerQueue for copy-on-write mutation.
func (q PeerQueue) Clone() PeerQueue {
	nq := PeerQueue{Messages: append([]QueuedMessage(nil), q.Messages...)}
	if q.seen != nil {
		nq.seen = make(map[string]struct{}, len(q.seen))
		for k := range q.seen {
			nq.seen[k] = struct{}{}
		}
	}
	return nq
}

// Push appends a message, deduplicating by id and dropping the oldest
// entry once the queue reaches MaxQueuedMessagesPerPeer.
func (q *PeerQueue) Push(id string, raw []byte, now time.Time) (added bool) {
	if q.seen == nil {
		q.seen = make(map[string]struct{})
	}
	if _, dup := q.seen[id]; dup {
		return false
	}
	q.Messages = append(q.Messages, QueuedMessage{ID: id, Raw: raw, QueuedAt: now})
	q.seen[id] = struct{}{}
	if len(q.Messages) > MaxQueuedMessagesPerPeer {
		dropped := q.Messages[0]
		q.Messages = q.Messages[1:]
		delete(q.seen, dropped.ID)
	}
	return true
}

// HandshakeState is the per-peer handshake state machine position,
// per spec.md section 4.4.
type HandshakeState string

const (
	HandshakeUnknown   HandshakeState = "unknown"
	HandshakePending   HandshakeState = "pending"
	HandshakeValidated HandshakeState = "validated"
	HandshakeRejected  HandshakeState = "rejected"
)

// SettlementType enumerates the SettlementIntent.Type values of spec.md section 3.
type SettlementType string

const (
	SettlementStandard  SettlementType = "standard"
	SettlementStreaming SettlementType = "streaming"
	SettlementEscrow    SettlementType = "escrow"
	SettlementSwarm     SettlementType = "swarm"
)

// SettlementIntent is a persistent instruction to pay an invoice, per
// spec.md section 3.
type SettlementIntent struct {
	ID            string
	Type          SettlementType
	Invoice       []byte
	LedgerEntryID string
	Priority      int
	CreatedAt     time.Time
	RetryCount    int
	MaxRetries    int
}

// Clone copies a SettlementIntent for copy-on-write mutation.
func (s SettlementIntent) Clone() SettlementIntent {
	ns := s
	ns.Invoice = append([]byte(nil), s.Invoice...)
	return ns
}

// TopicHandler receives a validated topic (broadcast) message.
type TopicHandler func(topic string, payload []byte)

// NodeState is the single versioned value every mutation goes through
// via Store.Update / Store.Modify, per spec.md section 3/4.2.
type NodeState struct {
	Version uint64

	ID           string
	Capabilities []Capability

	Peers *PeerLRU

	SubscribedTopics map[string]struct{}

	ValidatedPeers map[string]struct{}

	PendingHandshakes map[string]PendingHandshake

	QueuedMessages map[string]PeerQueue

	PendingSettlements []SettlementIntent

	ShuttingDown bool

	CleanupHandlers []CleanupHandler
}

// CleanupHandler runs during node shutdown. Per spec.md section 4.2,
// handler errors are logged and never abort shutdown.
type CleanupHandler struct {
	Name string
	Run  func() error
}

// NewNodeState constructs an empty NodeState for nodeID with the given
// peer-set capacity (spec.md section 6 memoryLimits.maxPeers, default 10000).
func NewNodeState(nodeID string, maxPeers int) *NodeState {
	return &NodeState{
		ID:                nodeID,
		Peers:             NewPeerLRU(maxPeers),
		SubscribedTopics:  make(map[string]struct{}),
		ValidatedPeers:    make(map[string]struct{}),
		PendingHandshakes: make(map[string]PendingHandshake),
		QueuedMessages:    make(map[string]PeerQueue),
	}
}

// Clone performs the copy-on-write clone every CAS update starts from:
// every mutable collection is duplicated so concurrent readers of the
// previous version observe a stable snapshot.
func (s *NodeState) Clone() *NodeState {
	ns := &NodeState{
		Version:      s.Version,
		ID:           s.ID,
		Capabilities: append([]Capability(nil), s.Capabilities...),
		Peers:        s.Peers.Clone(),
		ShuttingDown: s.ShuttingDown,
	}

	ns.SubscribedTopics = make(map[string]struct{}, len(s.SubscribedTopics))
	for k := range s.SubscribedTopics {
		ns.SubscribedTopics[k] = struct{}{}
	}

	ns.ValidatedPeers = make(map[string]struct{}, len(s.ValidatedPeers))
	for k := range s.ValidatedPeers {
		ns.ValidatedPeers[k] = struct{}{}
	}

	ns.PendingHandshakes = make(map[string]PendingHandshake, len(s.PendingHandshakes))
	for k, v := range s.PendingHandshakes {
		ns.PendingHandshakes[k] = v
	}

	ns.QueuedMessages = make(map[string]PeerQueue, len(s.QueuedMessages))
	for k, v := range s.QueuedMessages {
		ns.QueuedMessages[k] = v.Clone()
	}

	ns.PendingSettlements = make([]SettlementIntent, len(s.PendingSettlements))
	for i, v := range s.PendingSettlements {
		ns.PendingSettlements[i] = v.Clone()
	}

	ns.CleanupHandlers = append([]CleanupHandler(nil), s.CleanupHandlers...)

	return ns
}
