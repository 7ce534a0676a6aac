// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors of the share scheme. Callers match them with [errors.Is].
var (
	// ErrEmptyInput is returned when encryption is requested without a phrase.
	ErrEmptyInput = errors.New("empty input phrase")

	// ErrMalformedBlob is returned when a blob is not valid base64, is too
	// short to hold an IV and one cipher block, or its ciphertext is not a
	// multiple of the block size.
	ErrMalformedBlob = errors.New("malformed blob")

	// ErrDecryptFailure marks a single rejected candidate: bad padding,
	// non-UTF-8 or empty plaintext. Decrypt never returns it.
	ErrDecryptFailure = errors.New("candidate key rejected")

	// ErrAllCandidatesExhausted is returned by Decrypt when no candidate
	// produced valid plaintext.
	ErrAllCandidatesExhausted = errors.New("no candidate matched")

	// ErrInvalidKeySize is returned by NewRijndael for key lengths other
	// than 8, 16, 24 or 32 bytes.
	ErrInvalidKeySize = errors.New("invalid rijndael key size")
)
