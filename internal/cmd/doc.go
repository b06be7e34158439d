// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package cmd contains the diaglog subcommands. Commands write the diagnostic
// lines to the command output and error streams, so they can be redirected
// with cobra's SetOut and SetErr.
package cmd
