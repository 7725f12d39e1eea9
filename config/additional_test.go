package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfigurationWarnsOnBootstrapWithoutPeers(t *testing.T) {
	cfg := &Config{Bootstrap: BootstrapConfig{Enabled: true}}
	setDefaults(cfg)

	errs := ValidateConfiguration(cfg)
	found := false
	for _, e := range errs {
		if e.Field == "bootstrap.peers" && e.Level == "warning" {
			found = true
		}
	}
	assert.True(t, found, "expected a bootstrap.peers warning, got %+v", errs)
}

func TestValidateConfigurationRejectsAuthenticationWithoutKeySource(t *testing.T) {
	cfg := &Config{Authentication: AuthenticationConfig{Enabled: true}}
	setDefaults(cfg)

	errs := ValidateConfiguration(cfg)
	found := false
	for _, e := range errs {
		if e.Field == "authentication.key_path" {
			found = true
		}
	}
	assert.True(t, found, "expected an authentication.key_path error, got %+v", errs)
}

func TestValidateConfigurationAcceptsWellFormedConfig(t *testing.T) {
	cfg := &Config{
		Discovery: []string{"mdns", "bluetooth"},
		Bootstrap: BootstrapConfig{Enabled: true, Peers: []string{"/ip4/127.0.0.1/tcp/4001"}},
		Registry:  &RegistryConfig{URL: "https://registry.example.com"},
	}
	setDefaults(cfg)

	var errorLevel []ValidationError
	for _, e := range ValidateConfiguration(cfg) {
		if e.Level == "error" {
			errorLevel = append(errorLevel, e)
		}
	}
	assert.Empty(t, errorLevel)
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Field: "registry.url", Message: "missing", Level: "error"}
	assert.Contains(t, e.String(), "registry.url")
	assert.Contains(t, e.String(), "missing")
}

func TestSetDefaultsIsIdempotent(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	first := cfg.FloodProtection.RateLimitRefillInterval
	setDefaults(cfg)
	assert.Equal(t, first, cfg.FloodProtection.RateLimitRefillInterval)
	assert.Equal(t, time.Second, cfg.FloodProtection.RateLimitRefillInterval)
}
