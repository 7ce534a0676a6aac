// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when the config enables
	// no transport that also has a handler.
	errNoServersAreCreated = errors.New("no servers are created")
	// errNoServersToRun guards run against a zero-value server.
	errNoServersToRun = errors.New("no servers to run")
)
