// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package diag

import (
	"io"
	"os"
	"sync"
)

const lineTerminator = "\n"

// Sink is an output channel that accepts one line at a time.
// The line never contains the terminator, the Sink is responsible for appending it.
type Sink interface {
	WriteLine(line string)
}

// Discard is a Sink that drops every line.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) WriteLine(string) {}

var _ Sink = &writerSink{}

type writerSink struct {
	writer io.Writer

	lock sync.Mutex
}

// NewWriterSink returns a Sink that writes every line to w with a single Write call.
// Write errors are ignored.
func NewWriterSink(w io.Writer) Sink {
	if w == nil {
		return Discard
	}

	return &writerSink{
		writer: w,
	}
}

func (s *writerSink) WriteLine(line string) {
	buf := terminated(line)

	s.lock.Lock()
	defer s.lock.Unlock()
	_, _ = s.writer.Write(buf)
}

var _ Sink = &fileSink{}

// fileSink writes to the file returned by file at the time of the call.
type fileSink struct {
	file func() *os.File

	lock sync.Mutex
}

func (s *fileSink) WriteLine(line string) {
	buf := terminated(line)

	s.lock.Lock()
	defer s.lock.Unlock()
	if f := s.file(); f != nil {
		_, _ = f.Write(buf)
	}
}

func terminated(line string) []byte {
	buf := make([]byte, 0, len(line)+len(lineTerminator))
	buf = append(buf, line...)
	return append(buf, lineTerminator...)
}
