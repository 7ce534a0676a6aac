// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-refute/internal/crypto"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/models"
)

// shareService runs the cipher in-process.
type shareService struct {
	deriver    crypto.KeyDeriver
	engine     crypto.CipherEngine
	candidates []string

	logger *logger.Logger
}

// NewShareService returns the in-process [ShareService]. candidates is the
// list tried when a decrypt request names no phrase; an empty list selects
// [crypto.DefaultCandidates].
func NewShareService(deriver crypto.KeyDeriver, engine crypto.CipherEngine, candidates []string, logger *logger.Logger) ShareService {
	if len(candidates) == 0 {
		candidates = crypto.DefaultCandidates()
	}

	return &shareService{
		deriver:    deriver,
		engine:     engine,
		candidates: slices.Clone(candidates),
		logger:     logger,
	}
}

// Encrypt seals [crypto.DefaultMessage] under the key derived from req.Input.
// The phrase is hashed verbatim.
func (s *shareService) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	log := logger.FromContext(ctx)

	if req.Input == "" {
		return models.EncryptResponse{}, ErrEmptyInput
	}

	blob, err := s.engine.Encrypt([]byte(crypto.DefaultMessage), s.deriver.Derive(req.Input))
	if err != nil {
		log.Err(err).Str("func", "*shareService.Encrypt").Msg("error encrypting message")
		return models.EncryptResponse{}, fmt.Errorf("encrypt message: %w", err)
	}

	log.Debug().Str("func", "*shareService.Encrypt").Msg("message encrypted")
	return models.EncryptResponse{Blob: blob}, nil
}

// Decrypt opens req.Blob. A non-empty req.Candidate is the only phrase tried;
// otherwise the configured list is tried in order.
func (s *shareService) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	log := logger.FromContext(ctx)

	if req.Blob == "" {
		return models.DecryptResponse{}, ErrEmptyBlob
	}

	candidates := s.candidates
	if req.Candidate != "" {
		candidates = []string{req.Candidate}
	}

	match, err := s.engine.Decrypt(req.Blob, candidates)
	if err != nil {
		log.Debug().Err(err).Str("func", "*shareService.Decrypt").Int("candidates", len(candidates)).Msg("blob not opened")
		return models.DecryptResponse{}, fmt.Errorf("decrypt blob: %w", err)
	}

	log.Debug().Str("func", "*shareService.Decrypt").Int("index", match.Index).Msg("blob opened")
	return models.DecryptResponse{Message: string(match.Plaintext), Key: match.Candidate}, nil
}

// Candidates returns a copy of the configured list.
func (s *shareService) Candidates(_ context.Context) (models.CandidatesResponse, error) {
	return models.CandidatesResponse{Candidates: slices.Clone(s.candidates)}, nil
}

// CheckCandidates reports pairs of configured phrases that derive the same
// key. Such a pair makes the list ambiguous: a blob for the second phrase
// always opens under the first.
func (s *shareService) CheckCandidates(_ context.Context) (models.CheckResponse, error) {
	collisions := crypto.FindCollisions(s.deriver, s.candidates)

	resp := models.CheckResponse{
		Collisions: make([]models.Collision, 0, len(collisions)),
		OK:         len(collisions) == 0,
	}
	for _, c := range collisions {
		resp.Collisions = append(resp.Collisions, models.Collision{
			First:  c.First,
			Second: c.Second,
			Key:    c.Key.String(),
		})
	}

	return resp, nil
}
