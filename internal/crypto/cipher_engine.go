// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/MKhiriev/go-refute/internal/workers"
)

var errEmptyPlaintext = errors.New("empty plaintext")

// Match is the outcome of a successful trial decryption.
type Match struct {
	// Plaintext is the recovered message.
	Plaintext []byte
	// Candidate is the phrase whose key opened the blob.
	Candidate string
	// Index is the position of Candidate in the list that was tried.
	Index int
}

// EngineOption configures a [CipherEngine] built by [NewCipherEngine].
type EngineOption func(*cipherEngine)

// WithRandom replaces the IV source. Defaults to crypto/rand.
func WithRandom(r io.Reader) EngineOption {
	return func(e *cipherEngine) {
		e.random = r
	}
}

// WithTrialWorkers lets Decrypt try up to n candidates concurrently. The
// lowest-index success still wins, so results match the sequential loop.
// Values below 2 keep the sequential loop.
func WithTrialWorkers(n int) EngineOption {
	return func(e *cipherEngine) {
		e.trialWorkers = n
	}
}

// cipherEngine is the private implementation of [CipherEngine].
type cipherEngine struct {
	deriver      KeyDeriver
	random       io.Reader
	trialWorkers int
}

// NewCipherEngine builds a [CipherEngine] that derives candidate keys with
// deriver.
func NewCipherEngine(deriver KeyDeriver, opts ...EngineOption) CipherEngine {
	e := &cipherEngine{
		deriver: deriver,
		random:  rand.Reader,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encrypt implements [CipherEngine].
func (e *cipherEngine) Encrypt(plaintext []byte, key DerivedKey) (string, error) {
	var sb sealedBlob
	if _, err := io.ReadFull(e.random, sb.iv[:]); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	block, err := NewRijndael(key[:])
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, BlockSize)
	sb.ciphertext = make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, sb.chainIV()).CryptBlocks(sb.ciphertext, padded)

	return encodeBlob(sb.iv, sb.ciphertext), nil
}

// TryDecrypt implements [CipherEngine].
func (e *cipherEngine) TryDecrypt(blob string, key DerivedKey) ([]byte, error) {
	sb, err := parseBlob(blob)
	if err != nil {
		return nil, err
	}

	return open(sb, key)
}

// Decrypt implements [CipherEngine].
func (e *cipherEngine) Decrypt(blob string, candidates []string) (Match, error) {
	sb, err := parseBlob(blob)
	if err != nil {
		return Match{}, err
	}

	if e.trialWorkers > 1 && len(candidates) > 1 {
		return e.decryptConcurrently(sb, candidates)
	}

	for i, ck := range e.candidateKeys(candidates) {
		plaintext, err := open(sb, ck.key)
		if err != nil {
			// any failure only rejects this candidate
			continue
		}
		return Match{Plaintext: plaintext, Candidate: ck.candidate, Index: i}, nil
	}

	return Match{}, ErrAllCandidatesExhausted
}

func (e *cipherEngine) decryptConcurrently(sb sealedBlob, candidates []string) (Match, error) {
	plaintexts := make([][]byte, len(candidates))

	idx, ok := workers.FirstMatch(context.Background(), e.trialWorkers, candidates,
		func(_ context.Context, i int, candidate string) bool {
			plaintext, err := open(sb, e.deriver.Derive(candidate))
			if err != nil {
				return false
			}
			plaintexts[i] = plaintext
			return true
		})
	if !ok {
		return Match{}, ErrAllCandidatesExhausted
	}

	return Match{Plaintext: plaintexts[idx], Candidate: candidates[idx], Index: idx}, nil
}

type candidateKey struct {
	candidate string
	key       DerivedKey
}

// candidateKeys lazily pairs every candidate with its derived key. A key is
// derived only when the consumer asks for it.
func (e *cipherEngine) candidateKeys(candidates []string) iter.Seq2[int, candidateKey] {
	return func(yield func(int, candidateKey) bool) {
		for i, c := range candidates {
			if !yield(i, candidateKey{candidate: c, key: e.deriver.Derive(c)}) {
				return
			}
		}
	}
}

// open decrypts a parsed blob under key and checks that the result is
// correctly padded, non-empty UTF-8 text.
func open(sb sealedBlob, key DerivedKey) ([]byte, error) {
	block, err := NewRijndael(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailure, err)
	}

	plaintext := make([]byte, len(sb.ciphertext))
	cipher.NewCBCDecrypter(block, sb.chainIV()).CryptBlocks(plaintext, sb.ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailure, err)
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailure, errEmptyPlaintext)
	}
	if !utf8.Valid(plaintext) {
		return nil, fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecryptFailure)
	}

	return plaintext, nil
}
