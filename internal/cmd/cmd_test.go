// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/mia-platform/diaglog/internal/config"
	"github.com/mia-platform/diaglog/internal/diag"
)

func TestCmds(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		cmd                  func() *cobra.Command
		args                 []string
		expectedOut          string
		expectedError        error
		expectedErrorMessage string
		expectedUsage        bool
	}{
		"text command with no arguments returns no error and print usage": {
			cmd:           TextCmd,
			expectedUsage: true,
		},
		"integer command with no arguments returns no error and print usage": {
			cmd:           IntegerCmd,
			expectedUsage: true,
		},
		"pointer command with no arguments returns no error and print usage": {
			cmd:           PointerCmd,
			expectedUsage: true,
		},
		"error command with no arguments returns no error and print usage": {
			cmd:           ErrorCmd,
			expectedUsage: true,
		},
		"replay command with no arguments returns no error and print usage": {
			cmd:           ReplayCmd,
			expectedUsage: true,
		},
		"text command joins arguments": {
			cmd:         TextCmd,
			args:        []string{"hello", "world"},
			expectedOut: "hello world\n",
		},
		"integer command writes a line per argument": {
			cmd:         IntegerCmd,
			args:        []string{"--", "-42", "0", "7"},
			expectedOut: "-42\n0\n7\n",
		},
		"pointer command writes a line per argument": {
			cmd:         PointerCmd,
			args:        []string{"0xdeadbeef", "16"},
			expectedOut: "0xdeadbeef\n0x10\n",
		},
		"error command writes to the error stream": {
			cmd:                  ErrorCmd,
			args:                 []string{"boom"},
			expectedErrorMessage: "boom\n",
		},
		"integer command with invalid argument writes nothing": {
			cmd:                  IntegerCmd,
			args:                 []string{"1", "two"},
			expectedError:        errInvalidValue,
			expectedErrorMessage: errInvalidValue.Error() + ": \"two\" is not an integer\n",
			expectedUsage:        true,
		},
		"pointer command with invalid argument writes nothing": {
			cmd:                  PointerCmd,
			args:                 []string{"0x1", "nowhere"},
			expectedError:        diag.ErrInvalidAddress,
			expectedErrorMessage: errInvalidValue.Error() + ": " + diag.ErrInvalidAddress.Error() + " \"nowhere\"\n",
			expectedUsage:        true,
		},
		"replay command writes every entry": {
			cmd:                  ReplayCmd,
			args:                 []string{filepath.Join("testdata", "replay.yaml")},
			expectedOut:          "hello\n-42\n0xdeadbeef\n",
			expectedErrorMessage: "boom\n",
		},
		"replay command with dry run writes nothing": {
			cmd:  ReplayCmd,
			args: []string{"--" + dryRunFlagName, filepath.Join("testdata", "replay.yaml")},
		},
		"replay command with missing file": {
			cmd:                  ReplayCmd,
			args:                 []string{filepath.Join("testdata", "missing")},
			expectedError:        syscall.ENOENT,
			expectedErrorMessage: fmt.Sprintf("open %s: %s\n", filepath.Join("testdata", "missing"), syscall.ENOENT),
		},
		"replay command with invalid file writes nothing": {
			cmd:           ReplayCmd,
			args:          []string{filepath.Join("testdata", "invalid.yaml")},
			expectedError: config.ErrInvalidEntry,
			expectedErrorMessage: fmt.Sprintf("%s %q: document 1: entry 2: %s: multiple values set: text, integer\n",
				config.ErrParsing, filepath.Join("testdata", "invalid.yaml"), config.ErrInvalidEntry),
		},
		"replay command with too many arguments": {
			cmd:                  ReplayCmd,
			args:                 []string{"one.yaml", "two.yaml"},
			expectedError:        errInvalidValue,
			expectedErrorMessage: errInvalidValue.Error() + ": accepts 1 file, received 2\n",
			expectedUsage:        true,
		},
		"serve command with arguments": {
			cmd:                  ServeCmd,
			args:                 []string{"now"},
			expectedError:        assert.AnError,
			expectedErrorMessage: "unknown command \"now\" for \"serve\"\n",
			expectedUsage:        true,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			cmd := test.cmd()
			errBuffer := new(bytes.Buffer)
			outBuffer := new(bytes.Buffer)
			cmd.SetOut(outBuffer)
			cmd.SetErr(errBuffer)
			cmd.SetUsageTemplate("usage string")
			cmd.SetArgs(append([]string{}, test.args...)) // a nil slice makes cobra read os.Args

			err := cmd.ExecuteContext(t.Context())
			switch {
			case test.expectedError == assert.AnError:
				assert.Error(t, err)
			case test.expectedError != nil:
				assert.ErrorIs(t, err, test.expectedError)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, test.expectedErrorMessage, errBuffer.String())

			expectedOut := test.expectedOut
			if test.expectedUsage {
				expectedOut += "usage string"
			}
			assert.Equal(t, expectedOut, outBuffer.String())
		})
	}
}
