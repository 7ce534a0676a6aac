package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-refute/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "encrypt response",
			data:       models.EncryptResponse{Blob: "AQID"},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `{"blob":"AQID"}`,
		},
		{
			name:       "decrypt response",
			data:       models.DecryptResponse{Message: "hi", Key: "he/him"},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"hi","key":"he/him"}`,
		},
		{
			name:       "empty collision list stays an array",
			data:       models.CheckResponse{Collisions: []models.Collision{}, OK: true},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `{"collisions":[],"ok":true}`,
		},
		{
			name:       "custom status",
			data:       map[string]string{"error": "nope"},
			status:     http.StatusUnprocessableEntity,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"nope"}`,
		},
		{
			name:       "nil",
			data:       nil,
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name:       "unmarshalable",
			data:       make(chan int),
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}
