package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/utils"
	"github.com/MKhiriev/go-refute/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWithTraceID_EchoesCallerID(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")

	rec := env.do(t, http.MethodGet, "/api/version/", "", "")

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_StoresIDInContext(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetTraceIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "abc", got)
}

func TestWithLogging_RecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnvWithLogger(t, &logger.Logger{Logger: zerolog.New(&buf)})
	env.share.EXPECT().
		Candidates(gomock.Any()).
		Return(models.CandidatesResponse{Candidates: []string{"x"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.Header.Set(traceIDHeader, "log-trace")
	env.router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))

	assert.Equal(t, "/api/candidates", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.Equal(t, "log-trace", entry["trace_id"])
	assert.Positive(t, entry["size"])
}

func TestWithLogging_DefaultsStatusToOK(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(nil, &logger.Logger{Logger: zerolog.New(&buf)})

	silent := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	handler := h.withTraceID(h.withLogging(silent))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 0, entry["size"])
}

func TestWithGZipRequest_InflatesBody(t *testing.T) {
	env := newTestEnv(t)
	env.share.EXPECT().
		Encrypt(gomock.Any(), models.EncryptRequest{Input: "they/them"}).
		Return(models.EncryptResponse{Blob: "blob"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/encrypt", bytes.NewReader(gzipped(t, `{"input":"they/them"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"blob":"blob"}`, rec.Body.String())
}

func TestWithGZipRequest_RejectsInvalidStream(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/encrypt", strings.NewReader("definitely not gzip"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrInvalidGZipBody.Error(), strings.TrimSpace(rec.Body.String()))
}

func TestWithGZipRequest_PassesPlainBody(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		got = buf.String()
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	withGZipRequest(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "plain", got)
}

func TestCompressResponse(t *testing.T) {
	env := newTestEnv(t)
	env.share.EXPECT().
		Candidates(gomock.Any()).
		Return(models.CandidatesResponse{Candidates: []string{"he/him", "she/her"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"candidates":["he/him","she/her"]}`, gunzip(t, rec.Body.Bytes()))
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "get on post-only route", method: http.MethodGet, target: "/api/encrypt"},
		{name: "delete on get-only route", method: http.MethodDelete, target: "/api/candidates"},
		{name: "put on version", method: http.MethodPut, target: "/api/version/"},
		{name: "unknown route", method: http.MethodGet, target: "/api/unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(t, tt.method, tt.target, "", "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_DelegatesRegisteredMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter(t *testing.T) {
	t.Run("write implies 200", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		n, err := w.Write([]byte("hello"))

		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 5, w.size)
		assert.True(t, w.wroteHeader)
	})

	t.Run("header written once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusUnprocessableEntity)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("a"))
		_, _ = w.Write([]byte("bc"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.status)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, 3, w.size)
	})

	t.Run("unwrap", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		assert.Same(t, rec, w.Unwrap())
	})
}
