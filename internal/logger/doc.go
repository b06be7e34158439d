// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger wraps hclog behind the operational logger used by the diaglog
// commands and server. It is kept separate from the diag package: the lines
// emitted by diag are the product, the lines emitted here describe the process.
package logger
