// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/diaglog/internal/diag"
	"github.com/mia-platform/diaglog/internal/info"
	"github.com/mia-platform/diaglog/internal/logger"
)

const (
	loggerName = "diaglog:server"

	statusPrefix = "/-/"
)

// Server is an HTTP ingress whose Start call blocks until Stop is called.
type Server interface {
	Start() error
	Stop() error
}

type impServer struct {
	Config

	app *fiber.App
	log logger.Logger
}

var (
	ErrServerListen   = errors.New("server listen error")
	ErrServerShutdown = errors.New("server shutdown error")
)

// NewServer configures a server from the environment that emits lines through diagLogger.
// The operational logger is read from ctx.
func NewServer(ctx context.Context, diagLogger diag.Logger) (Server, error) {
	cfg, err := LoadServerConfig()
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	app := fiber.New(fiber.Config{
		AppName:               info.AppName,
		DisableStartupMessage: cfg.DisableStartupMessage,
		Immutable:             true, // values read from the request outlive the handler
	})
	app.Use(logger.RequestMiddlewareLogger(log, []string{statusPrefix}))

	statusRoutes(app, info.AppName, info.Version)
	lineRoutes(app, diagLogger)

	return &impServer{
		Config: *cfg,
		app:    app,
		log:    log.WithName(loggerName),
	}, nil
}

func (s *impServer) address() string {
	return net.JoinHostPort(s.HTTPHost, strconv.Itoa(s.HTTPPort))
}

func (s *impServer) Start() error {
	s.log.Info("starting server", "address", s.address())
	if err := s.app.Listen(s.address()); err != nil {
		return fmt.Errorf("%w: %w", ErrServerListen, err)
	}
	return nil
}

func (s *impServer) Stop() error {
	s.log.Info("stopping server")
	if err := s.app.Shutdown(); err != nil {
		return fmt.Errorf("%w: %w", ErrServerShutdown, err)
	}
	return nil
}
