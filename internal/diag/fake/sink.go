// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"sync"
	"testing"

	"github.com/mia-platform/diaglog/internal/diag"
)

var _ diag.Sink = &Sink{}

// Sink records every line it receives.
type Sink struct {
	tb testing.TB

	lines []string
	lock  sync.Mutex
}

// NewFakeSink returns an empty Sink bound to tb.
func NewFakeSink(tb testing.TB) *Sink {
	tb.Helper()
	return &Sink{tb: tb}
}

func (s *Sink) WriteLine(line string) {
	s.tb.Helper()
	s.lock.Lock()
	defer s.lock.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns a copy of the recorded lines.
func (s *Sink) Lines() []string {
	s.tb.Helper()
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]string(nil), s.lines...)
}
