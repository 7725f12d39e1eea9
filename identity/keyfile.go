// SPDX-License-Identifier: LGPL-3.0-or-later

package identity

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ecco-mesh/ecco/crypto/keys"
)

// keyFile is the on-disk identity layout from spec.md section 6
// "Persisted state layout": {libp2pPrivateKey, ethereumPrivateKey}.
// Field names are kept wire-compatible with that section even though
// this node's mesh key is Ed25519, not libp2p's default RSA/secp256k1.
type keyFile struct {
	NodePrivateKey string `json:"libp2pPrivateKey"` // hex-encoded ed25519 seed
	PaymentKey     string `json:"ethereumPrivateKey"` // 0x-prefixed secp256k1 scalar
}

// DefaultKeyPath renders the default per-node key file path,
// "~/.ecco/identity/{nodeId|default}.json" per spec.md section 4.1.
func DefaultKeyPath(nodeID string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	name := nodeID
	if name == "" {
		name = "default"
	}
	return filepath.Join(home, ".ecco", "identity", name+".json"), nil
}

// LoadOrGenerate loads the identity at path, generating and persisting a
// fresh one if the file is missing and generateIfMissing is true;
// otherwise a missing file is returned as an error.
func LoadOrGenerate(path string, generateIfMissing bool) (*Identity, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if !generateIfMissing {
			return nil, fmt.Errorf("identity: key file %s missing and generation disabled", path)
		}
		id, genErr := Generate()
		if genErr != nil {
			return nil, fmt.Errorf("identity: generate: %w", genErr)
		}
		if saveErr := id.Save(path); saveErr != nil {
			return nil, fmt.Errorf("identity: persist generated key: %w", saveErr)
		}
		return id, nil
	}
	if err != nil {
		return nil, fmt.Errorf("identity: read key file: %w", err)
	}

	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("identity: malformed key file %s: %w", path, err)
	}

	seed, err := hex.DecodeString(kf.NodePrivateKey)
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("identity: malformed node private key in %s", path)
	}
	edPriv := ed25519.NewKeyFromSeed(seed)
	nodeKey, err := keys.NewEd25519KeyPair(edPriv, "")
	if err != nil {
		return nil, fmt.Errorf("identity: wrap node key: %w", err)
	}

	var paymentKey *secp256k1.PrivateKey
	if kf.PaymentKey != "" {
		raw, err := hex.DecodeString(trimHexPrefix(kf.PaymentKey))
		if err != nil || len(raw) != 32 {
			return nil, fmt.Errorf("identity: malformed payment key in %s", path)
		}
		paymentKey = secp256k1.PrivKeyFromBytes(raw)
	}

	return New(nodeKey, paymentKey)
}

// Save persists the identity to path, creating parent directories as needed.
func (id *Identity) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create identity directory: %w", err)
	}

	edPriv, ok := id.nodeKey.PrivateKey().(ed25519.PrivateKey)
	if !ok {
		return fmt.Errorf("identity: node key is not a standard ed25519 private key")
	}
	kf := keyFile{
		NodePrivateKey: hex.EncodeToString(edPriv.Seed()),
	}
	if id.paymentKey != nil {
		kf.PaymentKey = "0x" + hex.EncodeToString(id.paymentKey.Serialize())
	}
	data, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal key file: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
