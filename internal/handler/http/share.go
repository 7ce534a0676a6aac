// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-refute/internal/app"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/utils"
	"github.com/MKhiriev/go-refute/models"
)

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	response, err := h.services.ShareService.Encrypt(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("error encrypting message")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("error writing response")
	}
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	response, err := h.services.ShareService.Decrypt(r.Context(), request)
	if err != nil {
		log.Info().Err(err).Str("func", "*Handler.decrypt").Msg("blob not decrypted")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.decrypt").Msg("error writing response")
	}
}

func (h *Handler) candidates(w http.ResponseWriter, r *http.Request) {
	response, err := h.services.ShareService.Candidates(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.candidates").Msg("error listing candidates")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) checkCandidates(w http.ResponseWriter, r *http.Request) {
	response, err := h.services.ShareService.CheckCandidates(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.checkCandidates").Msg("error checking candidates")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}
