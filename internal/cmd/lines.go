// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/diaglog/internal/config"
	"github.com/mia-platform/diaglog/internal/diag"
)

const (
	textCmdUsage = "text VALUE..."
	textCmdShort = "write a text line to the standard output"
	textCmdLong  = `Write a text line to the standard output.
	All the arguments are joined with a single space and written as one line.`

	textCmdExample = `# Write "hello world"
	diaglog text hello world`

	integerCmdUsage = "integer VALUE..."
	integerCmdShort = "write integers in base 10 to the standard output"
	integerCmdLong  = `Write integers in base 10 to the standard output, one line per argument.
	Every argument is validated before writing, if one of them is not a valid
	integer nothing is written.`

	integerCmdExample = `# Write -42
	diaglog integer -- -42`

	pointerCmdUsage = "pointer ADDRESS..."
	pointerCmdShort = "write addresses in hexadecimal to the standard output"
	pointerCmdLong  = `Write addresses in hexadecimal to the standard output, one line per argument.
	Addresses can be written in hexadecimal (0x), octal (0o), binary (0b)
	or decimal notation. Every argument is validated before writing.`

	pointerCmdExample = `# Write 0xdeadbeef
	diaglog pointer 3735928559`

	errorCmdUsage = "error VALUE..."
	errorCmdShort = "write an error line to the standard error"
	errorCmdLong  = `Write an error line to the standard error.
	All the arguments are joined with a single space and written as one line.`

	errorCmdExample = `# Write "boom" to the standard error
	diaglog error boom`
)

// lineCommand describes a subcommand that sends its arguments to a single diag.Logger operation.
type lineCommand struct {
	kind    config.Kind
	use     string
	short   string
	long    string
	example string
}

// TextCmd returns the "text" cli command.
func TextCmd() *cobra.Command {
	return lineCommand{config.TextKind, textCmdUsage, textCmdShort, textCmdLong, textCmdExample}.command()
}

// IntegerCmd returns the "integer" cli command.
func IntegerCmd() *cobra.Command {
	return lineCommand{config.IntegerKind, integerCmdUsage, integerCmdShort, integerCmdLong, integerCmdExample}.command()
}

// PointerCmd returns the "pointer" cli command.
func PointerCmd() *cobra.Command {
	return lineCommand{config.PointerKind, pointerCmdUsage, pointerCmdShort, pointerCmdLong, pointerCmdExample}.command()
}

// ErrorCmd returns the "error" cli command.
func ErrorCmd() *cobra.Command {
	return lineCommand{config.ErrorKind, errorCmdUsage, errorCmdShort, errorCmdLong, errorCmdExample}.command()
}

func (l lineCommand) command() *cobra.Command {
	return &cobra.Command{
		Use:     l.use,
		Short:   heredoc.Doc(l.short),
		Long:    heredoc.Doc(l.long),
		Example: heredoc.Doc(l.example),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &lineOptions{
				kind:   l.kind,
				args:   args,
				logger: diagLogger(cmd),
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			opts.execute()
			return nil
		},
	}
}

// lineOptions holds the arguments of a line command and the entries parsed from them.
type lineOptions struct {
	kind   config.Kind
	args   []string
	logger diag.Logger

	entries []config.Entry
}

// validate parses all the arguments and returns an error on the first invalid one.
func (o *lineOptions) validate() error {
	if len(o.args) == 0 {
		return errNoArguments
	}

	switch o.kind {
	case config.TextKind, config.ErrorKind:
		o.entries = []config.Entry{{Kind: o.kind, Text: strings.Join(o.args, " ")}}
	case config.IntegerKind:
		entries := make([]config.Entry, 0, len(o.args))
		for _, arg := range o.args {
			value, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", errInvalidValue, arg)
			}
			entries = append(entries, config.Entry{Kind: o.kind, Integer: value})
		}
		o.entries = entries
	case config.PointerKind:
		entries := make([]config.Entry, 0, len(o.args))
		for _, arg := range o.args {
			address, err := diag.ParseAddress(arg)
			if err != nil {
				return fmt.Errorf("%w: %w", errInvalidValue, err)
			}
			entries = append(entries, config.Entry{Kind: o.kind, Address: address})
		}
		o.entries = entries
	}

	return nil
}

// execute writes every parsed entry.
func (o *lineOptions) execute() {
	for _, entry := range o.entries {
		entry.Emit(o.logger)
	}
}
