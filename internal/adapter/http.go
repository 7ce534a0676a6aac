package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/utils"
	"github.com/MKhiriev/go-refute/models"
	"github.com/go-resty/resty/v2"
)

// DefaultRequestTimeout applies when the adapter config leaves the timeout
// unset.
const DefaultRequestTimeout = 15 * time.Second

const traceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises the base URL from adapterCfg.HTTPAddress,
// applies the request timeout and stamps every request with an X-Trace-ID
// header: the id carried by the request context, or a fresh one.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}

	a.client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(traceIDHeader) == "" {
				r.SetHeader(traceIDHeader, a.ids.ForContext(r.Context()))
			}
			return nil
		})

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Encrypt implements [ServerAdapter] via POST /api/encrypt.
func (h *httpServerAdapter) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResponse, error) {
	var out models.EncryptResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/encrypt")
	if err != nil {
		return out, fmt.Errorf("%w: encrypt request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode encrypt response: %w", err)
	}

	return out, nil
}

// Decrypt implements [ServerAdapter] via POST /api/decrypt.
func (h *httpServerAdapter) Decrypt(ctx context.Context, req models.DecryptRequest) (models.DecryptResponse, error) {
	var out models.DecryptResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/decrypt")
	if err != nil {
		return out, fmt.Errorf("%w: decrypt request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode decrypt response: %w", err)
	}

	return out, nil
}

// Candidates implements [ServerAdapter] via GET /api/candidates.
func (h *httpServerAdapter) Candidates(ctx context.Context) (models.CandidatesResponse, error) {
	var out models.CandidatesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/candidates")
	if err != nil {
		return out, fmt.Errorf("%w: candidates request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode candidates response: %w", err)
	}

	return out, nil
}

// CheckCandidates implements [ServerAdapter] via GET /api/candidates/check.
func (h *httpServerAdapter) CheckCandidates(ctx context.Context) (models.CheckResponse, error) {
	var out models.CheckResponse

	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/candidates/check")
	if err != nil {
		return out, fmt.Errorf("%w: check request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode check response: %w", err)
	}

	return out, nil
}

// Version implements [ServerAdapter] via GET /api/version/, which answers in
// plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// Close implements [ServerAdapter]. resty keeps no per-adapter resources
// that need releasing.
func (h *httpServerAdapter) Close() error {
	return nil
}
