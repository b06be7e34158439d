// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package config reads replay files: YAML documents listing the diagnostic
// entries to send through a diag.Logger, in order.
//
//	entries:
//	  - text: hello
//	  - integer: -42
//	  - pointer: "0xdeadbeef"
//	  - error: boom
package config
