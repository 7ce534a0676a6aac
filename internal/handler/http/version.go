package http

import (
	"net/http"
)

// getServerVersion answers with the bare version string so scripts can use
// it without a JSON parser.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(serverVersion))
}
