// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mia-platform/diaglog/internal/diag"
	"github.com/mia-platform/diaglog/internal/server"
)

const (
	serveCmdUsage = "serve"
	serveCmdShort = "expose the diagnostic lines over HTTP"
	serveCmdLong  = `Start an HTTP server that writes a line for every request received.
	The request body is used as value for the line:
	- POST /lines/text writes the body to the standard output
	- POST /lines/integer writes the body, parsed as base 10 integer, to the standard output
	- POST /lines/pointer writes the body, parsed as address, to the standard output
	- POST /lines/error writes the body to the standard error

	The server is configured with the HTTP_HOST, HTTP_PORT and
	DISABLE_STARTUP_MESSAGE environment variables and stops on SIGINT or SIGTERM.`

	serveCmdExample = `# Listen on port 8080
	HTTP_PORT=8080 diaglog serve`
)

// serverGetter builds the server used by the serve command.
type serverGetter func(context.Context, diag.Logger) (server.Server, error)

// ServeCmd returns the "serve" cli command.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              noArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := &serveOptions{
				logger:       diagLogger(cmd),
				serverGetter: server.NewServer,
			}

			if err := opts.execute(ctx); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}
}

// serveOptions holds the options set for the current serve run.
type serveOptions struct {
	logger       diag.Logger
	serverGetter serverGetter

	lock sync.Mutex
}

// execute runs the server until it fails or ctx is cancelled.
func (o *serveOptions) execute(ctx context.Context) error {
	if !o.lock.TryLock() {
		return nil
	}
	defer o.lock.Unlock()

	srv, err := o.serverGetter(ctx, o.logger)
	if err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return srv.Stop()
	}
}
