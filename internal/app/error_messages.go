// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the refute server handlers,
// the remote adapters and the CLI.
//
// The HTTP API writes these strings into error response bodies and the
// remote service maps them back to sentinel errors, so both sides must use
// the same wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgEmptyInput is returned when encryption is requested without a phrase.
	MsgEmptyInput = "Please select or enter an input to encrypt."

	// MsgEmptyBlob is returned when decryption is requested without a blob.
	MsgEmptyBlob = "Please provide base64-encoded text to decrypt."

	// MsgDecryptFailed is returned when no candidate opened the blob.
	MsgDecryptFailed = "Decryption failed with the provided options."

	// MsgMalformedBlob is returned when the blob is not valid base64 or has
	// an impossible length.
	MsgMalformedBlob = "Decryption failed: Invalid input or keys."

	// MsgInputTooLong is returned when a phrase exceeds the length limit.
	MsgInputTooLong = "input phrase is too long"

	// MsgBlobTooLong is returned when a blob exceeds the length limit.
	MsgBlobTooLong = "blob is too long"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// server was started without an application version.
	MsgVersionIsNotSpecified = "app version is not specified"
)
