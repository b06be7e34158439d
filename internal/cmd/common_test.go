// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/mia-platform/diaglog/internal/diag"
)

func TestDiagLogger(t *testing.T) {
	t.Parallel()

	t.Run("process streams use the standard logger", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, diag.NewStd(), diagLogger(&cobra.Command{}))
	})

	t.Run("redirected streams get their own logger", func(t *testing.T) {
		t.Parallel()

		outBuffer := new(bytes.Buffer)
		errBuffer := new(bytes.Buffer)
		cmd := &cobra.Command{}
		cmd.SetOut(outBuffer)
		cmd.SetErr(errBuffer)

		logger := diagLogger(cmd)
		assert.NotEqual(t, diag.NewStd(), logger)

		logger.Text("hello")
		logger.Error("boom")
		assert.Equal(t, "hello\n", outBuffer.String())
		assert.Equal(t, "boom\n", errBuffer.String())
	})
}
