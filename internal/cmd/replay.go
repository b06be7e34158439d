// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/diaglog/internal/config"
	"github.com/mia-platform/diaglog/internal/diag"
	"github.com/mia-platform/diaglog/internal/logger"
)

const (
	replayCmdUsage = "replay FILE"
	replayCmdShort = "write every entry listed in a replay file"
	replayCmdLong  = `Write every entry listed in a replay file, in order.
	The file is made of one or more YAML documents with an "entries" list;
	every entry sets exactly one of the text, integer, pointer or error keys.
	The whole file is validated before writing the first line.
	Use "-" to read the file from the standard input.`

	replayCmdExample = `# Replay the entries in replay.yaml
	diaglog replay replay.yaml

	# Only validate the file
	diaglog replay --dry-run replay.yaml`

	dryRunFlagName  = "dry-run"
	dryRunFlagUsage = "If set, validates the file without writing any line"
	defaultDryRun   = false

	replayLoggerName = "diaglog:replay"
)

// replayFlags holds the flags for the "replay" command.
type replayFlags struct {
	dryRun bool
}

// addFlags adds the cli flags to the cobra command.
func (f *replayFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.dryRun, dryRunFlagName, defaultDryRun, dryRunFlagUsage)
}

// toOptions converts the replay flags to replayOptions enriching it with the passed arguments.
func (f *replayFlags) toOptions(cmd *cobra.Command, args []string) *replayOptions {
	return &replayOptions{
		args:   args,
		dryRun: f.dryRun,
		logger: diagLogger(cmd),
	}
}

// ReplayCmd returns the "replay" cli command.
func ReplayCmd() *cobra.Command {
	flags := &replayFlags{}
	cmd := &cobra.Command{
		Use:     replayCmdUsage,
		Short:   heredoc.Doc(replayCmdShort),
		Long:    heredoc.Doc(replayCmdLong),
		Example: heredoc.Doc(replayCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.toOptions(cmd, args)
			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// replayOptions holds the options set for the current replay.
type replayOptions struct {
	args   []string
	dryRun bool
	logger diag.Logger

	path string
}

// validate checks that exactly one path has been passed.
func (o *replayOptions) validate() error {
	switch len(o.args) {
	case 0:
		return errNoArguments
	case 1:
		o.path = o.args[0]
		return nil
	default:
		return fmt.Errorf("%w: accepts 1 file, received %d", errInvalidValue, len(o.args))
	}
}

// execute parses the replay file and writes every entry unless dryRun is set.
func (o *replayOptions) execute(ctx context.Context) error {
	log := logger.FromContext(ctx).WithName(replayLoggerName)

	entries, err := config.NewEntriesFromPath(o.path)
	if err != nil {
		return err
	}

	log.Debug("replay file parsed", "path", o.path, "entries", len(entries))
	if o.dryRun {
		return nil
	}

	for _, entry := range entries {
		entry.Emit(o.logger)
	}

	log.Trace("replay completed", "path", o.path)
	return nil
}
