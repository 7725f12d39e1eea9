// Package config provides configuration management for an ecco node.
package config

import (
	"time"

	"github.com/ecco-mesh/ecco/bridge"
	"github.com/ecco-mesh/ecco/state"
)

// Config is the full option tree of spec.md section 6. A node's
// constructor (see cmd/eccod) maps this onto node.Config after
// resolving transport adapters and pub/sub, which live outside the
// serializable config tree.
type Config struct {
	Version string `yaml:"version" json:"version"`

	NodeID       string              `yaml:"node_id,omitempty" json:"node_id,omitempty"`
	Capabilities []state.Capability  `yaml:"capabilities" json:"capabilities"`
	NetworkID    string              `yaml:"network_id,omitempty" json:"network_id,omitempty"`
	Discovery    []string            `yaml:"discovery" json:"discovery"` // subset of mdns, dht, gossip, bluetooth

	Protocol     ProtocolConfig      `yaml:"protocol" json:"protocol"`
	Bootstrap    BootstrapConfig     `yaml:"bootstrap" json:"bootstrap"`
	Registry     *RegistryConfig     `yaml:"registry,omitempty" json:"registry,omitempty"`
	FallbackToP2P bool               `yaml:"fallback_to_p2p" json:"fallback_to_p2p"`

	Authentication  AuthenticationConfig  `yaml:"authentication" json:"authentication"`
	MemoryLimits    MemoryLimitsConfig    `yaml:"memory_limits" json:"memory_limits"`
	FloodProtection FloodProtectionConfig `yaml:"flood_protection" json:"flood_protection"`
	Retry           RetryConfig           `yaml:"retry" json:"retry"`
	Proximity       ProximityConfig       `yaml:"proximity" json:"proximity"`

	KeyMgmt KeyManagementConfig `yaml:"key_management" json:"key_management"`

	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
	Health  HealthConfig  `yaml:"health" json:"health"`
}

// ProtocolConfig is the protocol/constitution option group of spec.md
// section 6's handshake fields.
type ProtocolConfig struct {
	Version            string `yaml:"version" json:"version"`
	MinVersion         string `yaml:"min_version" json:"min_version"`
	ConstitutionHash   string `yaml:"constitution_hash,omitempty" json:"constitution_hash,omitempty"`
	UpgradeURL         string `yaml:"upgrade_url,omitempty" json:"upgrade_url,omitempty"`
	Enforcement        bridge.EnforcementLevel `yaml:"enforcement" json:"enforcement"`
}

// BootstrapConfig is the bootstrap.* option group of spec.md section 6.
type BootstrapConfig struct {
	Enabled  bool          `yaml:"enabled" json:"enabled"`
	Peers    []string      `yaml:"peers" json:"peers"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`
	MinPeers int           `yaml:"min_peers" json:"min_peers"`
}

// RegistryConfig is the registry option group of spec.md section 6.
type RegistryConfig struct {
	URL        string `yaml:"url" json:"url"`
	AuthToken  string `yaml:"auth_token,omitempty" json:"auth_token,omitempty"`
	AuthSecret string `yaml:"auth_secret,omitempty" json:"auth_secret,omitempty"`
}

// AuthenticationConfig is the authentication.* option group of spec.md
// section 6.
type AuthenticationConfig struct {
	Enabled        bool     `yaml:"enabled" json:"enabled"`
	KeyPath        string   `yaml:"key_path,omitempty" json:"key_path,omitempty"`
	GenerateKeys   bool     `yaml:"generate_keys" json:"generate_keys"`
	WalletAutoInit bool     `yaml:"wallet_auto_init" json:"wallet_auto_init"`
	WalletRPCURLs  []string `yaml:"wallet_rpc_urls,omitempty" json:"wallet_rpc_urls,omitempty"`
}

// MemoryLimitsConfig is the memoryLimits.* option group of spec.md
// section 6.
type MemoryLimitsConfig struct {
	MaxPeers         int           `yaml:"max_peers" json:"max_peers"`
	StalePeerTimeout time.Duration `yaml:"stale_peer_timeout" json:"stale_peer_timeout"`
}

// FloodProtectionConfig is the floodProtection.* option group of
// spec.md section 6.
type FloodProtectionConfig struct {
	DedupMaxMessages        uint          `yaml:"dedup_max_messages" json:"dedup_max_messages"`
	DedupFalsePositiveRate  float64       `yaml:"dedup_false_positive_rate" json:"dedup_false_positive_rate"`
	RateLimitMaxTokens      int           `yaml:"rate_limit_max_tokens" json:"rate_limit_max_tokens"`
	RateLimitRefillRate     float64       `yaml:"rate_limit_refill_rate" json:"rate_limit_refill_rate"`
	RateLimitRefillInterval time.Duration `yaml:"rate_limit_refill_interval" json:"rate_limit_refill_interval"`
}

// RetryConfig is the retry.* option group governing bootstrap dial and
// registry reconnect backoff, per spec.md section 7.
type RetryConfig struct {
	InitialBackoff time.Duration `yaml:"initial_backoff" json:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff" json:"max_backoff"`
	MaxAttempts    int           `yaml:"max_attempts" json:"max_attempts"`
}

// ProximityConfig is the proximity.* option group tuning RSSI-based
// peer ranking used by the matcher and discovery packages.
type ProximityConfig struct {
	Enabled       bool    `yaml:"enabled" json:"enabled"`
	MinRSSI       int     `yaml:"min_rssi" json:"min_rssi"`
	PreferNearest bool    `yaml:"prefer_nearest" json:"prefer_nearest"`
}

// KeyManagementConfig contains key storage configuration for the
// crypto manager's backing store.
type KeyManagementConfig struct {
	Storage StorageConfig `yaml:"storage" json:"storage"`
}

// StorageConfig contains key storage configuration.
type StorageConfig struct {
	Type string `yaml:"type" json:"type"` // file, memory
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" json:"level"`
	Format   string `yaml:"format" json:"format"`
	Output   string `yaml:"output" json:"output"`
	FilePath string `yaml:"file_path,omitempty" json:"file_path,omitempty"`
}

// MetricsConfig contains metrics configuration.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Port    int    `yaml:"port" json:"port"`
	Path    string `yaml:"path" json:"path"`
}

// HealthConfig contains health check configuration.
type HealthConfig struct {
	Enabled bool     `yaml:"enabled" json:"enabled"`
	Port    int      `yaml:"port" json:"port"`
	Path    string   `yaml:"path" json:"path"`
	Checks  []string `yaml:"checks" json:"checks"`
}
