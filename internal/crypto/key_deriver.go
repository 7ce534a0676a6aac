// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeySize is the length of a [DerivedKey] in bytes (64 bits).
const KeySize = 8

// DerivedKey is the weak symmetric key produced from a phrase.
type DerivedKey [KeySize]byte

// String returns the lowercase hex form of the key.
func (k DerivedKey) String() string {
	return hex.EncodeToString(k[:])
}

// sha256KeyDeriver is the private implementation of [KeyDeriver].
type sha256KeyDeriver struct{}

// NewKeyDeriver returns the weak deriver: SHA-256 of the raw input bytes,
// rendered as hex, cut to the first 16 hex characters and decoded back into
// an 8-byte key.
//
// The truncation collapses a 256-bit digest into a 64-bit keyspace. Blobs
// produced by earlier versions of the tool depend on this exact layout, so
// neither the hash nor the length may change.
func NewKeyDeriver() KeyDeriver {
	return sha256KeyDeriver{}
}

// Derive implements [KeyDeriver].
func (sha256KeyDeriver) Derive(input string) DerivedKey {
	sum := sha256.Sum256([]byte(input))
	digest := hex.EncodeToString(sum[:])

	var key DerivedKey
	// 16 hex characters of a hex.EncodeToString output always decode.
	_, _ = hex.Decode(key[:], []byte(digest[:2*KeySize]))
	return key
}
