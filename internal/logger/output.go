// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// DiscardOutput drops every log line.
	DiscardOutput = "discard"
	// StderrOutput writes the log lines to the given error stream.
	StderrOutput = "stderr"
)

var (
	// ErrOutput reports an output destination that cannot be opened.
	ErrOutput = errors.New("cannot open log output")
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// OpenOutput returns the destination of the log lines selected by output.
// An empty output or DiscardOutput drop everything, StderrOutput writes to stderr
// and any other value is a file path opened in append mode.
func OpenOutput(output string, stderr io.Writer) (io.WriteCloser, error) {
	switch output {
	case "", DiscardOutput:
		return nopWriteCloser{io.Discard}, nil
	case StderrOutput:
		return nopWriteCloser{stderr}, nil
	}

	file, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOutput, output, err)
	}

	return file, nil
}
