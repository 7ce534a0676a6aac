// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks share requests before they reach the cipher.
//
// Validation is field-scoped: callers may pass field names to restrict the
// checks, otherwise every field of the request is checked.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
