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

// Package identity implements the node's long-lived keypair, peer-id
// derivation, and the canonical signing/verification pipeline every
// Message passes through before it reaches a transport.
package identity

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mr-tron/base58"

	sagecrypto "github.com/ecco-mesh/ecco/crypto"
	"github.com/ecco-mesh/ecco/crypto/keys"
)

// Errors per spec.md section 4.1/7.
var (
	// ErrSigning reports a missing signing key. New refuses a nil node key,
	// so Sign does not return it.
	ErrSigning = errors.New("identity: signing key not configured")
	// ErrVerification wraps any decode/verify failure; never fatal.
	ErrVerification = errors.New("identity: message verification failed")
)

// SignatureError reports a fatal failure while signing.
type SignatureError struct {
	Cause error
}

func (e *SignatureError) Error() string { return fmt.Sprintf("sign message: %v", e.Cause) }
func (e *SignatureError) Unwrap() error { return e.Cause }

// VerificationError reports a non-fatal failure while verifying.
type VerificationError struct {
	Cause error
}

func (e *VerificationError) Error() string { return fmt.Sprintf("verify message: %v", e.Cause) }
func (e *VerificationError) Unwrap() error { return e.Cause }

// Is reports every VerificationError as matching ErrVerification.
func (e *VerificationError) Is(target error) bool { return target == ErrVerification }

// Identity holds a node's long-lived Ed25519 signing key and its opaque
// secp256k1 payment key, plus a bounded cache of peers' decoded public keys.
type Identity struct {
	nodeKey    sagecrypto.KeyPair // Ed25519
	paymentKey *secp256k1.PrivateKey
	peerID     string

	mu       sync.Mutex
	keyCache *lruKeyCache
}

// New derives an Identity from an existing Ed25519 keypair and an
// opaque secp256k1 payment key. Use Load/Generate for on-disk identities.
func New(nodeKey sagecrypto.KeyPair, paymentKey *secp256k1.PrivateKey) (*Identity, error) {
	if nodeKey == nil {
		return nil, fmt.Errorf("identity: nil node key")
	}
	pub, ok := nodeKey.PublicKey().(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("identity: node key is not Ed25519")
	}
	return &Identity{
		nodeKey:    nodeKey,
		paymentKey: paymentKey,
		peerID:     DerivePeerID(pub),
		keyCache:   newLRUKeyCache(256),
	}, nil
}

// Generate creates a fresh Ed25519 signing key and secp256k1 payment key.
func Generate() (*Identity, error) {
	nodeKey, err := keys.GenerateEd25519KeyPair()
	if err != nil {
		return nil, fmt.Errorf("generate node key: %w", err)
	}
	paymentKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate payment key: %w", err)
	}
	return New(nodeKey, paymentKey)
}

// PeerID returns the canonical string form of this node's public-key hash.
func (id *Identity) PeerID() string { return id.peerID }

// PublicKey returns the node's Ed25519 public key.
func (id *Identity) PublicKey() ed25519.PublicKey {
	return id.nodeKey.PublicKey().(ed25519.PublicKey)
}

// PaymentAddress renders the payment key's public point as a base58 string,
// used only as an opaque handle passed to the external Pay(invoice) collaborator.
func (id *Identity) PaymentAddress() string {
	if id.paymentKey == nil {
		return ""
	}
	return base58.Encode(id.paymentKey.PubKey().SerializeCompressed())
}

// DerivePeerID computes the canonical peer id for a public key: the
// base58 encoding of the key's SHA-256 hash.
func DerivePeerID(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return base58.Encode(sum[:])
}

// Signable is the subset of Message fields the canonicalizer covers
// (spec.md section 4.1): {id, from, to, type, payload, timestamp}.
type Signable struct {
	ID        string      `json:"id"`
	From      string      `json:"from"`
	To        string      `json:"to"`
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Sign canonicalizes s and produces a base64 signature plus the node's
// base64 public key, per spec.md section 4.1.
func (id *Identity) Sign(s Signable) (signature string, publicKey string, err error) {
	canon, err := Canonicalize(s)
	if err != nil {
		return "", "", &SignatureError{Cause: err}
	}
	sig, err := id.nodeKey.Sign(canon)
	if err != nil {
		return "", "", &SignatureError{Cause: err}
	}
	if len(sig) != ed25519.SignatureSize {
		return "", "", &SignatureError{Cause: fmt.Errorf("unexpected signature length %d", len(sig))}
	}
	return encodeB64(sig), encodeB64(id.PublicKey()), nil
}

// Verify reconstructs the canonical bytes for s and checks signature
// against publicKey, asserting the derived peer id equals s.From
// (case-insensitive) per spec.md section 4.1.
func (id *Identity) Verify(s Signable, signature, publicKey string) error {
	sig, err := decodeB64(signature)
	if err != nil {
		return &VerificationError{Cause: fmt.Errorf("decode signature: %w", err)}
	}
	if len(sig) != ed25519.SignatureSize {
		return &VerificationError{Cause: fmt.Errorf("signature length %d != %d", len(sig), ed25519.SignatureSize)}
	}
	pubBytes, err := decodeB64(publicKey)
	if err != nil {
		return &VerificationError{Cause: fmt.Errorf("decode public key: %w", err)}
	}
	pub, err := id.lookupOrDecodePublicKey(publicKey, pubBytes)
	if err != nil {
		return &VerificationError{Cause: err}
	}
	derived := DerivePeerID(pub)
	if !strings.EqualFold(derived, s.From) {
		return &VerificationError{Cause: fmt.Errorf("peer id mismatch: derived %s, from %s", derived, s.From)}
	}
	canon, err := Canonicalize(s)
	if err != nil {
		return &VerificationError{Cause: err}
	}
	if !ed25519.Verify(pub, canon, sig) {
		return &VerificationError{Cause: errors.New("signature does not verify")}
	}
	return nil
}

func (id *Identity) lookupOrDecodePublicKey(b64 string, raw []byte) (ed25519.PublicKey, error) {
	id.mu.Lock()
	defer id.mu.Unlock()
	if pub, ok := id.keyCache.get(b64); ok {
		return pub, nil
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key length %d != %d", len(raw), ed25519.PublicKeySize)
	}
	pub := ed25519.PublicKey(raw)
	id.keyCache.put(b64, pub)
	return pub, nil
}

// IsMessageFresh returns true iff -skew <= now-timestamp <= maxAge,
// per spec.md section 4.1 (defaults 60s / 5s).
func IsMessageFresh(timestamp int64, now time.Time, maxAge, skew time.Duration) bool {
	age := now.Sub(time.UnixMilli(timestamp))
	return age >= -skew && age <= maxAge
}
