// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package diag implements the diagnostic line logger.
// Every call renders a single value and writes it, followed by a line terminator,
// to either the informational or the error Sink. Sinks are independent so that
// the two channels can be swapped for in-memory implementations.
package diag
