// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	internalcmd "github.com/mia-platform/diaglog/internal/cmd"
	"github.com/mia-platform/diaglog/internal/info"
	"github.com/mia-platform/diaglog/internal/logger"
	"github.com/mia-platform/diaglog/internal/version"
)

var (
	appName      = info.AppName
	versionShort = "Display the " + appName + " version"
)

const (
	appShort = "diaglog writes diagnostic values as lines to the standard streams"
	appLong  = `diaglog writes diagnostic values as lines to the standard streams.
	Text, integers and addresses are written to the standard output, errors
	to the standard error. Every value produces exactly one line.`

	logLevelFlagName      = "log-level"
	logLevelShortFlagName = "v"

	logOutputFlagName  = "log-output"
	logOutputFlagUsage = "set the destination of the process messages (possible values: discard, stderr or a file path)"

	rootLoggerName = "diaglog"

	versionCmdName = "version"
)

var (
	logLevelDefaultValue = logger.INFO.String()
	logLevelFlagUsage    = "set the logging level of the process messages (possible values: " + strings.Join(allLoggerLevels(), ", ") + ")"
)

func allLoggerLevels() []string {
	levels := make([]string, 0, len(logger.AllLevels))
	for _, level := range logger.AllLevels {
		levels = append(levels, level.String())
	}
	return levels
}

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel  string
	logOutput string

	output io.Closer
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, logLevelFlagName, logLevelShortFlagName, logLevelDefaultValue, heredoc.Doc(logLevelFlagUsage))
	flags.StringVar(&f.logOutput, logOutputFlagName, logger.DiscardOutput, heredoc.Doc(logOutputFlagUsage))
}

// setupLogger stores in the context of cmd a logger writing to the selected output.
func (f *rootFlags) setupLogger(cmd *cobra.Command) error {
	output, err := logger.OpenOutput(f.logOutput, cmd.ErrOrStderr())
	if err != nil {
		cmd.PrintErrln(err)
		return err
	}
	f.output = output

	log := logger.NewLogger(output)
	log.SetLevel(logger.LevelFromString(f.logLevel))
	cmd.SetContext(logger.WithContext(cmd.Context(), log))

	log.WithName(rootLoggerName).Debug("running command", "command", cmd.CommandPath())
	return nil
}

// closeOutput releases the log output opened by setupLogger. Cobra skips it when the
// command fails, the file is then released on exit.
func (f *rootFlags) closeOutput() error {
	if f.output == nil {
		return nil
	}

	err := f.output.Close()
	f.output = nil
	return err
}

func main() {
	cmd := rootCmd()

	exitCode := 0
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		exitCode = 1
	}

	os.Exit(exitCode)
}

// rootCmd constructs the root Cobra command with shared configuration.
func rootCmd() *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),
		Long:  heredoc.Doc(appLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return flag.setupLogger(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return flag.closeOutput()
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		internalcmd.TextCmd(),
		internalcmd.IntegerCmd(),
		internalcmd.PointerCmd(),
		internalcmd.ErrorCmd(),
		internalcmd.ReplayCmd(),
		internalcmd.ServeCmd(),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.ServiceVersionInformation())
		},
	}
}
