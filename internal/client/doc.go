// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the refute command-line runtime.
//
// It parses a subcommand and its flags, calls the share services (in-process
// or through a server adapter) and prints the result. Failures are printed
// as short human messages; the caller turns a non-nil error into exit code 1.
package client
