// SPDX-License-Identifier: LGPL-3.0-or-later

// Package node is the composition root of spec.md section 4.11: it wires
// identity, the state store, the message bridge, hybrid discovery, the
// capability protocol, the registry-client fallback, flood protection,
// the settlement worker and the reputation tracker into one node with a
// strict start/stop order.
package node

import (
	"time"

	"github.com/ecco-mesh/ecco/bridge"
	"github.com/ecco-mesh/ecco/internal/logger"
	"github.com/ecco-mesh/ecco/reputation"
	"github.com/ecco-mesh/ecco/settlement"
	"github.com/ecco-mesh/ecco/state"
	"github.com/ecco-mesh/ecco/transport"
)

// BootstrapConfig is the bootstrap.* option group of spec.md section 6.
type BootstrapConfig struct {
	Enabled  bool
	Peers    []string
	Timeout  time.Duration
	MinPeers int
}

func (c *BootstrapConfig) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MinPeers <= 0 {
		c.MinPeers = 1
	}
}

// AuthenticationConfig is the authentication.* option group of spec.md
// section 6. Wallet auto-init/RPC URLs are carried as opaque fields —
// wiring them is out of this core's scope per spec.md's external-wallet
// non-goal.
type AuthenticationConfig struct {
	Enabled        bool
	KeyPath        string
	GenerateKeys   bool
	WalletAutoInit bool
	WalletRPCURLs  []string
}

// MemoryLimitsConfig is the memoryLimits.* option group of spec.md
// section 6.
type MemoryLimitsConfig struct {
	MaxPeers         int
	StalePeerTimeout time.Duration
}

func (c *MemoryLimitsConfig) applyDefaults() {
	if c.MaxPeers <= 0 {
		c.MaxPeers = 10000
	}
	if c.StalePeerTimeout <= 0 {
		c.StalePeerTimeout = 30 * time.Minute
	}
}

// FloodProtectionConfig is the floodProtection.* option group of
// spec.md section 6.
type FloodProtectionConfig struct {
	DedupMaxMessages        uint
	DedupFalsePositiveRate  float64
	RateLimitMaxTokens      int
	RateLimitRefillRate     float64
	RateLimitRefillInterval time.Duration
}

// RegistryConfig is the registry option group of spec.md section 6,
// passed straight through to registryclient.Config.
type RegistryConfig struct {
	URL        string
	AuthToken  string
	AuthSecret string
}

// ReputationConfig configures the reputation tracker's external
// collaborators, left as injected interfaces per spec.md's explicit
// wallet/ledger non-goal.
type ReputationConfig struct {
	Committer       reputation.Committer
	WalletResolver  reputation.WalletResolver
	CommitThreshold int
	CommitInterval  time.Duration
}

// SettlementConfig configures the settlement worker's external
// collaborators, likewise injected.
type SettlementConfig struct {
	Ledger         settlement.LedgerStore
	Pay            settlement.PayFunc
	TickInterval   time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Config is the full option tree of spec.md section 6, adapted for Go:
// the caller supplies already-constructed transport adapters (libp2p,
// bluetooth-le, ...) and pub/sub since those concrete backends are out
// of this core's scope (spec.md treats the transport layer itself as a
// pluggable adapter set, per section 4.3).
type Config struct {
	NodeID       string
	Capabilities []state.Capability
	NetworkID    string

	ProtocolVersion    string
	MinProtocolVersion string
	ConstitutionHash   string
	Enforcement        bridge.EnforcementLevel

	Adapters map[transport.Variant]transport.Adapter
	PubSub   transport.PubSub

	Bootstrap       BootstrapConfig
	Authentication  AuthenticationConfig
	MemoryLimits    MemoryLimitsConfig
	FloodProtection FloodProtectionConfig

	Registry      *RegistryConfig
	FallbackToP2P bool

	Settlement SettlementConfig
	Reputation ReputationConfig

	Log logger.Logger
}

func (c *Config) applyDefaults() {
	c.Bootstrap.applyDefaults()
	c.MemoryLimits.applyDefaults()
	if c.Enforcement == "" {
		c.Enforcement = bridge.EnforcementStrict
	}
	if c.Log == nil {
		c.Log = logger.GetDefaultLogger()
	}
}
