// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mia-platform/diaglog/internal/diag"
)

var (
	errNoArguments  = errors.New("no arguments provided")
	errInvalidValue = errors.New("invalid value provided")
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errInvalidValue):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// noArgs rejects any positional argument, printing the error and the usage.
func noArgs(cmd *cobra.Command, args []string) error {
	err := cobra.NoArgs(cmd, args)
	if err != nil {
		cmd.PrintErrln(err)
		_ = cmd.Usage()
	}

	return err
}

// diagLogger returns a Logger bound to the output and error streams of cmd.
// When cmd writes to the process streams the standard logger is used.
func diagLogger(cmd *cobra.Command) diag.Logger {
	if cmd.OutOrStdout() == os.Stdout && cmd.ErrOrStderr() == os.Stderr {
		return diag.NewStd()
	}

	return diag.New(
		diag.NewWriterSink(cmd.OutOrStdout()),
		diag.NewWriterSink(cmd.ErrOrStderr()),
	)
}
