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
	"os"
	"path/filepath"
	"testing"

	"github.com/ecco-mesh/ecco/bridge"
)

func TestLoadFallsBackToDefaultsWithoutAnyFile(t *testing.T) {
	cfg, err := Load(LoaderOptions{
		ConfigDir:      t.TempDir(),
		Environment:    "development",
		SkipValidation: true,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Protocol.Enforcement != bridge.EnforcementStrict {
		t.Errorf("Protocol.Enforcement = %q, want %q", cfg.Protocol.Enforcement, bridge.EnforcementStrict)
	}
	if cfg.MemoryLimits.MaxPeers != 10000 {
		t.Errorf("MemoryLimits.MaxPeers = %d, want 10000", cfg.MemoryLimits.MaxPeers)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	os.Setenv("ECCO_LOG_LEVEL", "debug")
	os.Setenv("ECCO_REGISTRY_URL", "https://override-registry.example")
	defer os.Unsetenv("ECCO_LOG_LEVEL")
	defer os.Unsetenv("ECCO_REGISTRY_URL")

	cfg, err := Load(LoaderOptions{
		ConfigDir:      t.TempDir(),
		Environment:    "development",
		SkipValidation: true,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Registry == nil || cfg.Registry.URL != "https://override-registry.example" {
		t.Errorf("Registry.URL override did not apply: %+v", cfg.Registry)
	}
}

func TestLoadWithCustomConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	testConfig := `
node_id: test-node
logging:
  level: info
  format: json
`
	if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	cfg, err := Load(LoaderOptions{
		ConfigDir:      tmpDir,
		Environment:    "test",
		SkipValidation: true,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("config should not be nil")
	}
}

func TestDefaultLoaderOptions(t *testing.T) {
	opts := DefaultLoaderOptions()

	if opts.ConfigDir != "config" {
		t.Errorf("ConfigDir = %q, want %q", opts.ConfigDir, "config")
	}
	if opts.SkipEnvSubstitution {
		t.Error("SkipEnvSubstitution should be false by default")
	}
	if opts.SkipValidation {
		t.Error("SkipValidation should be false by default")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.Protocol.Enforcement != bridge.EnforcementStrict {
		t.Errorf("default enforcement = %q, want %q", cfg.Protocol.Enforcement, bridge.EnforcementStrict)
	}
	if cfg.Bootstrap.MinPeers != 1 {
		t.Errorf("default bootstrap.min_peers = %d, want 1", cfg.Bootstrap.MinPeers)
	}
	if cfg.FloodProtection.DedupFalsePositiveRate != 0.01 {
		t.Errorf("default dedup false positive rate = %v, want 0.01", cfg.FloodProtection.DedupFalsePositiveRate)
	}
	if len(cfg.Discovery) == 0 {
		t.Error("default discovery methods should not be empty")
	}
}

func TestValidateConfigurationRejectsUnknownDiscoveryMethod(t *testing.T) {
	cfg := &Config{Discovery: []string{"carrier-pigeon"}}
	setDefaults(cfg)
	cfg.Discovery = []string{"carrier-pigeon"}

	errs := ValidateConfiguration(cfg)
	found := false
	for _, e := range errs {
		if e.Field == "discovery" && e.Level == "error" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a discovery validation error, got %+v", errs)
	}
}

func TestValidateConfigurationRejectsRegistryWithoutURL(t *testing.T) {
	cfg := &Config{Registry: &RegistryConfig{}}
	setDefaults(cfg)

	errs := ValidateConfiguration(cfg)
	found := false
	for _, e := range errs {
		if e.Field == "registry.url" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a registry.url validation error, got %+v", errs)
	}
}
