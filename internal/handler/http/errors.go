// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidGZipBody is reported when a request declares
// "Content-Encoding: gzip" but its body is not a gzip stream.
var ErrInvalidGZipBody = errors.New("invalid gzip request body")
