// SPDX-License-Identifier: LGPL-3.0-or-later

// Package discovery implements the hybrid phased peer discovery engine
// of spec.md section 4.5: transport events fan in from every registered
// adapter, a single phase is active at a time, and an escalation timer
// promotes to the next phase when no peer has been seen recently enough.
package discovery

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/ecco-mesh/ecco/internal/logger"
	"github.com/ecco-mesh/ecco/transport"
)

// Phase is a named discovery activation level, in preferred order.
type Phase string

const (
	PhaseProximity Phase = "proximity"
	PhaseLocal     Phase = "local"
	PhaseInternet  Phase = "internet"
	PhaseFallback  Phase = "fallback"
)

// DefaultPhaseOrder is the preferred phase order of spec.md section 4.5.
var DefaultPhaseOrder = []Phase{PhaseProximity, PhaseLocal, PhaseInternet, PhaseFallback}

// DefaultPhaseTransports maps each phase to the transport variants it
// activates, per spec.md section 4.5 ("default: proximity→bluetooth-le;
// local/internet/fallback→libp2p").
var DefaultPhaseTransports = map[Phase][]transport.Variant{
	PhaseProximity: {transport.VariantBluetoothLE},
	PhaseLocal:     {transport.VariantLibp2p},
	PhaseInternet:  {transport.VariantLibp2p},
	PhaseFallback:  {transport.VariantLibp2p},
}

// DiscoveredPeer is a discovery engine record: the normalized peer, the
// phase active when it was first seen, and the transport that found it.
type DiscoveredPeer struct {
	Peer      transport.Peer
	Phase     Phase
	Transport transport.Variant
}

// MaxDiscoveredPeers caps discoveredPeers, per spec.md section 3/5.
const MaxDiscoveredPeers = 1000

// DefaultPhaseTimeout is the escalation timer length when autoEscalate
// is set and no override is configured.
const DefaultPhaseTimeout = 5 * time.Second

// Config configures a discovery Engine.
type Config struct {
	PhaseOrder      []Phase
	PhaseTransports map[Phase][]transport.Variant
	PhaseTimeout    time.Duration
	PeerTTL         time.Duration // defaults to PhaseTimeout
	AutoEscalate    bool
	PreferProximity bool

	ConnectionRetries int
	RetryDelay        time.Duration

	Log logger.Logger
}

// Adapters maps a transport variant to its live Adapter instance.
type Adapters map[transport.Variant]transport.Adapter

// Engine runs the phase state machine and normalizes per-adapter events
// into a capped, LRU-evicted discovered-peer set.
type Engine struct {
	cfg      Config
	adapters Adapters
	log      logger.Logger

	mu            sync.Mutex
	phaseIdx      int
	discovered    map[string]*list.Element // peer id -> list element
	order         *list.List                // front = most recently seen
	escalateTimer *time.Timer
	stopped       bool

	onPhaseChange func(from, to Phase)
}

type discoveredEntry struct {
	id   string
	info DiscoveredPeer
}

// NewEngine constructs a discovery Engine over adapters. Call Start to
// activate the first phase and wire adapter event fan-in.
func NewEngine(cfg Config, adapters Adapters) *Engine {
	if len(cfg.PhaseOrder) == 0 {
		cfg.PhaseOrder = DefaultPhaseOrder
	}
	if cfg.PhaseTransports == nil {
		cfg.PhaseTransports = DefaultPhaseTransports
	}
	if cfg.PhaseTimeout <= 0 {
		cfg.PhaseTimeout = DefaultPhaseTimeout
	}
	if cfg.PeerTTL <= 0 {
		cfg.PeerTTL = cfg.PhaseTimeout
	}
	if cfg.ConnectionRetries <= 0 {
		cfg.ConnectionRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Log == nil {
		cfg.Log = logger.GetDefaultLogger()
	}
	return &Engine{
		cfg:        cfg,
		adapters:   adapters,
		log:        cfg.Log,
		discovered: make(map[string]*list.Element),
		order:      list.New(),
	}
}

// OnPhaseChange installs a callback invoked whenever the active phase
// changes.
func (e *Engine) OnPhaseChange(fn func(from, to Phase)) { e.onPhaseChange = fn }

// CurrentPhase returns the currently active phase.
func (e *Engine) CurrentPhase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.PhaseOrder[e.phaseIdx]
}

// Start wires per-adapter discovery fan-in, activates the first phase,
// and — if AutoEscalate is set — schedules the first escalation timer.
func (e *Engine) Start(ctx context.Context) error {
	for variant, a := range e.adapters {
		v := variant
		a.OnDiscovery(func(p transport.Peer) { e.observe(p, v) })
	}
	return e.activatePhase(ctx, 0, "")
}

// Stop cancels any pending escalation timer and stops discovery on every
// registered adapter, whichever phase it belongs to.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	e.stopped = true
	if e.escalateTimer != nil {
		e.escalateTimer.Stop()
	}
	e.mu.Unlock()

	var firstErr error
	for _, a := range e.adapters {
		if err := a.StopDiscovery(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (e *Engine) activatePhase(ctx context.Context, idx int, reason string) error {
	phase := e.cfg.PhaseOrder[idx]
	for _, variant := range e.cfg.PhaseTransports[phase] {
		if a, ok := e.adapters[variant]; ok {
			if err := a.StartDiscovery(ctx); err != nil {
				e.log.Debug("discovery: start discovery failed", logger.String("variant", string(variant)), logger.Error(err))
			}
		}
	}

	e.mu.Lock()
	e.phaseIdx = idx
	if e.escalateTimer != nil {
		e.escalateTimer.Stop()
	}
	if e.cfg.AutoEscalate && idx < len(e.cfg.PhaseOrder)-1 {
		e.escalateTimer = time.AfterFunc(e.cfg.PhaseTimeout, func() { e.onEscalationTimer(ctx) })
	}
	e.mu.Unlock()

	e.log.Debug("discovery: phase activated", logger.String("phase", string(phase)), logger.String("reason", reason))
	return nil
}

func (e *Engine) onEscalationTimer(ctx context.Context) {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	cutoff := time.Now().Add(-e.cfg.PeerTTL)
	recentlySeen := false
	for el := e.order.Front(); el != nil; el = el.Next() {
		entry := el.Value.(*discoveredEntry)
		if entry.info.Phase == e.cfg.PhaseOrder[e.phaseIdx] && entry.info.Peer.LastSeen.After(cutoff) {
			recentlySeen = true
			break
		}
	}
	if recentlySeen {
		// Remain in phase; reschedule the same escalation check.
		e.escalateTimer = time.AfterFunc(e.cfg.PhaseTimeout, func() { e.onEscalationTimer(ctx) })
		e.mu.Unlock()
		return
	}
	from := e.cfg.PhaseOrder[e.phaseIdx]
	nextIdx := e.phaseIdx + 1
	if nextIdx >= len(e.cfg.PhaseOrder) {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	_ = e.activatePhase(ctx, nextIdx, "no peer seen within peerTtl")
	if e.onPhaseChange != nil {
		e.onPhaseChange(from, e.cfg.PhaseOrder[nextIdx])
	}
}

// observe records a peer sighting, upserting it into the bounded,
// LRU-evicted discovered-peer set and clearing the pending escalation
// timer per spec.md section 4.5 ("a new discovery clears pending
// escalation timers").
func (e *Engine) observe(peer transport.Peer, via transport.Variant) {
	e.mu.Lock()
	defer e.mu.Unlock()

	phase := e.cfg.PhaseOrder[e.phaseIdx]
	info := DiscoveredPeer{Peer: peer, Phase: phase, Transport: via}

	if el, ok := e.discovered[peer.ID]; ok {
		entry := el.Value.(*discoveredEntry)
		entry.info = info
		e.order.MoveToFront(el)
	} else {
		el := e.order.PushFront(&discoveredEntry{id: peer.ID, info: info})
		e.discovered[peer.ID] = el
		if len(e.discovered) > MaxDiscoveredPeers {
			oldest := e.order.Back()
			e.order.Remove(oldest)
			delete(e.discovered, oldest.Value.(*discoveredEntry).id)
		}
	}

	if e.escalateTimer != nil {
		e.escalateTimer.Stop()
		if e.cfg.AutoEscalate && e.phaseIdx < len(e.cfg.PhaseOrder)-1 {
			ctx := context.Background()
			e.escalateTimer = time.AfterFunc(e.cfg.PhaseTimeout, func() { e.onEscalationTimer(ctx) })
		}
	}
}

// DiscoveredPeers returns a snapshot of every tracked peer, most recently
// seen first.
func (e *Engine) DiscoveredPeers() []DiscoveredPeer {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]DiscoveredPeer, 0, e.order.Len())
	for el := e.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*discoveredEntry).info)
	}
	return out
}

// Lookup returns the discovery record for a peer id, if known.
func (e *Engine) Lookup(peerID string) (DiscoveredPeer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	el, ok := e.discovered[peerID]
	if !ok {
		return DiscoveredPeer{}, false
	}
	return el.Value.(*discoveredEntry).info, true
}
