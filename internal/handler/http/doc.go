// Package http implements the REST transport of the refute server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, and compression are
// handled here before requests are delegated to the service layer.
package http
