package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	assert.NotSame(t, NewHTTPClient().Client, NewHTTPClient().Client)
}

func TestNewHTTPClient_DefaultHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient().R().Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "refute-cli", gotUA)
	assert.Contains(t, gotAccept, "application/json")
}
