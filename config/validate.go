// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/ecco-mesh/ecco/bridge"
)

// ValidationError reports a single configuration problem. Level is
// either "error" (the loader refuses to start) or "warning" (logged,
// non-fatal).
type ValidationError struct {
	Field   string
	Message string
	Level   string
}

func (e ValidationError) String() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Level)
}

var validDiscoveryMethods = map[string]bool{
	"mdns": true, "dht": true, "gossip": true, "bluetooth": true,
}

// ValidateConfiguration checks a loaded Config against spec.md section
// 6's option tree invariants. It never mutates cfg.
func ValidateConfiguration(cfg *Config) []ValidationError {
	var errs []ValidationError

	for _, d := range cfg.Discovery {
		if !validDiscoveryMethods[d] {
			errs = append(errs, ValidationError{
				Field: "discovery", Message: fmt.Sprintf("unknown discovery method %q", d), Level: "error",
			})
		}
	}

	switch cfg.Protocol.Enforcement {
	case bridge.EnforcementStrict, bridge.EnforcementRelaxed, bridge.EnforcementNone, "":
	default:
		errs = append(errs, ValidationError{
			Field: "protocol.enforcement", Message: fmt.Sprintf("unknown enforcement level %q", cfg.Protocol.Enforcement), Level: "error",
		})
	}

	if cfg.Registry != nil && cfg.Registry.URL == "" {
		errs = append(errs, ValidationError{
			Field: "registry.url", Message: "registry configured without a url", Level: "error",
		})
	}

	if cfg.Bootstrap.Enabled && len(cfg.Bootstrap.Peers) == 0 {
		errs = append(errs, ValidationError{
			Field: "bootstrap.peers", Message: "bootstrap enabled with no peer addresses", Level: "warning",
		})
	}

	if cfg.Authentication.Enabled && cfg.Authentication.KeyPath == "" && !cfg.Authentication.GenerateKeys {
		errs = append(errs, ValidationError{
			Field: "authentication.key_path", Message: "authentication enabled with no key path and generateKeys disabled", Level: "error",
		})
	}

	if cfg.FloodProtection.DedupFalsePositiveRate < 0 || cfg.FloodProtection.DedupFalsePositiveRate >= 1 {
		errs = append(errs, ValidationError{
			Field: "flood_protection.dedup_false_positive_rate", Message: "must be in [0, 1)", Level: "error",
		})
	}

	return errs
}
