package utils

import (
	"github.com/go-resty/resty/v2"
)

// userAgent identifies the CLI in server access logs.
const userAgent = "refute-cli"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com/api/version/")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client that announces itself as the refute
// CLI and asks for JSON. Each call returns an independent client with its
// own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json, text/plain")

	return &HTTPClient{Client: client}
}
