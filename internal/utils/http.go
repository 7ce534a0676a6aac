package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status code and an
// "application/json" content type. It returns the number of body bytes
// written.
//
// If marshaling fails nothing but a 500 is written and the wrapped error is
// returned, so callers only need to log it.
//
//	WriteJSON(w, models.EncryptResponse{Blob: blob}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
