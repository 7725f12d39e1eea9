// SAGE - Secure Agent Guarantee Engine
// Copyright (C) 2025 SAGE-X-project
//
// This file is part of SAGE.
//
// SAGE is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SAGE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with SAGE. If not, see <https://www.gnu.org/licenses/>.


package keys

import (
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	sagecrypto "github.com/ecco-mesh/ecco/crypto"
)

// X25519KeyPair holds an X25519 private key and its corresponding public key bytes.
type X25519KeyPair struct {
	privateKey *ecdh.PrivateKey
	publicKey  *ecdh.PublicKey
	id      string
}

// GenerateX25519KeyPair generates a new ephemeral X25519 key pair.
// It returns an X25519KeyPair containing the private key and the public key bytes.
func GenerateX25519KeyPair() (sagecrypto.KeyPair, error) {
	privateKey, err := ecdh.X25519().GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ephemeral ECDH key: %w", err)
	}
	publicKey := privateKey.PublicKey()

	// Generate ID from public key hash
	pubKeyBytes := publicKey.Bytes()
	hash := sha256.Sum256(pubKeyBytes)
	id := hex.EncodeToString(hash[:8])

	return &X25519KeyPair{
		privateKey: privateKey, 
		publicKey: publicKey,
		id: id,
	}, nil
}

// PublicKey returns the public key
func (kp *X25519KeyPair) PublicKey() crypto.PublicKey {
	return kp.publicKey
}

// PublicBytesKey returns the public bytes key
func (kp *X25519KeyPair) PublicBytesKey() []byte {
	return kp.publicKey.Bytes()
}

// PrivateKey returns the private key
func (kp *X25519KeyPair) PrivateKey() crypto.PrivateKey {
	return kp.privateKey
}

// Type returns the key type
func (kp *X25519KeyPair) Type() sagecrypto.KeyType {
	return sagecrypto.KeyTypeX25519
}

// ID returns a unique identifier for this key pair
func (kp *X25519KeyPair) ID() string {
	return kp.id
}

// Sign returns an error as X25519 is a key agreement algorithm and does not support signing operations.
// X25519 keys are designed exclusively for Elliptic Curve Diffie-Hellman (ECDH) key exchange.
// For digital signatures, use Ed25519 keys instead.
func (kp *X25519KeyPair) Sign(message []byte) ([]byte, error) {
    return nil, sagecrypto.ErrSignNotSupported
}

// Verify returns an error as X25519 is a key agreement algorithm and does not support signature verification.
// X25519 keys are designed exclusively for Elliptic Curve Diffie-Hellman (ECDH) key exchange.
// For signature verification, use Ed25519 keys instead
func (kp *X25519KeyPair) Verify(message, signature []byte) error {
    return sagecrypto.ErrVerifyNotSupported
}


// DeriveSharedSecret computes a 32-byte session key from an X25519 ECDH exchange.
// Given our private key and peer's public key bytes, it returns
// SHA-256 of the raw 32-byte ECDH shared secret.
func (kp *X25519KeyPair) DeriveSharedSecret(peerPubBytes []byte) ([]byte, error) {
	curve := ecdh.X25519()
	peerPub, err := curve.NewPublicKey(peerPubBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse peer public key: %w", err)
	}

	shared, err := kp.privateKey.ECDH(peerPub)
	if err != nil {
		return nil, fmt.Errorf("failed to compute shared secret: %w", err)
	}

	sum := sha256.Sum256(shared)
	return sum[:], nil
}

// Encrypt performs ECIES-like encryption using X25519 ECDH.
// It derives a shared key from this key pair's private key and recipientPub
// (no ephemeral key pair is generated), and encrypts plaintext using AES-256-GCM.
// Returns the random nonce and the ciphertext.
func (kp *X25519KeyPair) Encrypt(recipientPub []byte, plaintext []byte) (nonce, ciphertext []byte, err error) {
	key, err := kp.DeriveSharedSecret(recipientPub)
	if err != nil {
		return nil, nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, err
	}
	ciphertext = aead.Seal(nil, nonce, plaintext, nil)
	return nonce, ciphertext, nil
}

// DecryptWithX25519 decrypts data produced by Encrypt.
// It uses this key pair's private key and takes the sender's public key, nonce, and ciphertext.
// Returns the original plaintext or an error on failure.
func (kp *X25519KeyPair) DecryptWithX25519(ephPub, nonce, ciphertext []byte) ([]byte, error) {
	key, err := kp.DeriveSharedSecret(ephPub)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, err
	}
	return pt, nil
}
