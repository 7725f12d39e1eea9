// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ecco-mesh/ecco/bridge"
)

// LoadFromFile loads configuration from a YAML or JSON file, picking
// the parser by extension (".json" or else YAML).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file as JSON: %w", err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file as YAML: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file, picking the format by
// extension (".json" or else YAML).
func SaveToFile(cfg *Config, path string) error {
	var data []byte
	var err error
	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(cfg, "", "  ")
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setDefaults fills in the zero-valued fields with spec.md section 6's
// named defaults.
func setDefaults(cfg *Config) {
	if cfg.Protocol.Enforcement == "" {
		cfg.Protocol.Enforcement = bridge.EnforcementStrict
	}
	if cfg.Protocol.Version == "" {
		cfg.Protocol.Version = "1.0.0"
	}
	if len(cfg.Discovery) == 0 {
		cfg.Discovery = []string{"mdns", "dht"}
	}

	if cfg.Bootstrap.Timeout == 0 {
		cfg.Bootstrap.Timeout = 30 * time.Second
	}
	if cfg.Bootstrap.MinPeers == 0 {
		cfg.Bootstrap.MinPeers = 1
	}

	if cfg.MemoryLimits.MaxPeers == 0 {
		cfg.MemoryLimits.MaxPeers = 10000
	}
	if cfg.MemoryLimits.StalePeerTimeout == 0 {
		cfg.MemoryLimits.StalePeerTimeout = 30 * time.Minute
	}

	if cfg.FloodProtection.DedupMaxMessages == 0 {
		cfg.FloodProtection.DedupMaxMessages = 10000
	}
	if cfg.FloodProtection.DedupFalsePositiveRate == 0 {
		cfg.FloodProtection.DedupFalsePositiveRate = 0.01
	}
	if cfg.FloodProtection.RateLimitMaxTokens == 0 {
		cfg.FloodProtection.RateLimitMaxTokens = 100
	}
	if cfg.FloodProtection.RateLimitRefillRate == 0 {
		cfg.FloodProtection.RateLimitRefillRate = 10
	}
	if cfg.FloodProtection.RateLimitRefillInterval == 0 {
		cfg.FloodProtection.RateLimitRefillInterval = time.Second
	}

	if cfg.Retry.InitialBackoff == 0 {
		cfg.Retry.InitialBackoff = time.Second
	}
	if cfg.Retry.MaxBackoff == 0 {
		cfg.Retry.MaxBackoff = 10 * time.Second
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry.MaxAttempts = 3
	}

	if cfg.KeyMgmt.Storage.Type == "" {
		cfg.KeyMgmt.Storage.Type = "file"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}
