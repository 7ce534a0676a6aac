package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-refute/internal/app"
	"github.com/MKhiriev/go-refute/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrEmptyInput:            http.StatusBadRequest,
	service.ErrEmptyBlob:             http.StatusBadRequest,
	service.ErrMalformedBlob:         http.StatusBadRequest,
	service.ErrInputTooLong:          http.StatusBadRequest,
	service.ErrBlobTooLong:           http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	service.ErrDecryptionFailed: http.StatusUnprocessableEntity,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:   app.MsgInvalidDataProvided,
	service.ErrEmptyInput:            app.MsgEmptyInput,
	service.ErrEmptyBlob:             app.MsgEmptyBlob,
	service.ErrMalformedBlob:         app.MsgMalformedBlob,
	service.ErrInputTooLong:          app.MsgInputTooLong,
	service.ErrBlobTooLong:           app.MsgBlobTooLong,
	service.ErrVersionIsNotSpecified: app.MsgVersionIsNotSpecified,
	service.ErrDecryptionFailed:      app.MsgDecryptFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError answers with the status and user-facing message of err. The
// message is what the remote service maps back to a sentinel.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, messageFromError(err), statusFromError(err))
}
