// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"sync"
	"testing"

	"github.com/mia-platform/diaglog/internal/server"
)

var _ server.Server = &Server{}

// Server blocks in Start until Stop is called, optionally failing Start with StartErr.
type Server struct {
	tb testing.TB

	StartErr error

	startedChan chan struct{}
	closedChan  chan struct{}
	startOnce   sync.Once
	closeOnce   sync.Once
}

// NewFakeServer returns a Server that is neither started nor stopped.
func NewFakeServer(tb testing.TB) *Server {
	tb.Helper()

	return &Server{
		tb:          tb,
		startedChan: make(chan struct{}),
		closedChan:  make(chan struct{}),
	}
}

func (s *Server) Start() error {
	s.tb.Helper()
	s.startOnce.Do(func() { close(s.startedChan) })
	if s.StartErr != nil {
		return s.StartErr
	}

	<-s.closedChan
	return nil
}

func (s *Server) Stop() error {
	s.tb.Helper()
	s.closeOnce.Do(func() { close(s.closedChan) })
	return nil
}

// StartedServer is closed when Start has been called.
func (s *Server) StartedServer() <-chan struct{} {
	s.tb.Helper()
	return s.startedChan
}

// StoppedServer is closed when Stop has been called.
func (s *Server) StoppedServer() <-chan struct{} {
	s.tb.Helper()
	return s.closedChan
}
