package adapter

import "errors"

// Transport-agnostic errors returned by [ServerAdapter] implementations.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("server unavailable")

	errEmptyAddress = errors.New("empty address")
)
