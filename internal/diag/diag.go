// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package diag

import (
	"os"
	"strconv"
)

// Logger emits single diagnostic values as lines.
type Logger interface {
	// Text writes value to the informational channel.
	Text(value string)

	// Integer writes the base 10 representation of value to the informational channel.
	Integer(value int)

	// Pointer writes the token of value to the informational channel.
	Pointer(value Address)

	// Error writes value to the error channel.
	Error(value string)
}

// Make sure that instance is a Logger.
var _ Logger = &instance{}

type instance struct {
	info Sink
	errs Sink
}

// New returns a Logger writing informational lines to info and error lines to errs.
// A nil Sink is replaced with Discard.
func New(info, errs Sink) Logger {
	if info == nil {
		info = Discard
	}
	if errs == nil {
		errs = Discard
	}

	return &instance{
		info: info,
		errs: errs,
	}
}

// NewStd returns a Logger bound to the process standard output and standard error.
// The streams are read from os.Stdout and os.Stderr on every call.
func NewStd() Logger {
	return std
}

func (i *instance) Text(value string) {
	i.info.WriteLine(value)
}

func (i *instance) Integer(value int) {
	i.info.WriteLine(strconv.Itoa(value))
}

func (i *instance) Pointer(value Address) {
	i.info.WriteLine(value.String())
}

func (i *instance) Error(value string) {
	i.errs.WriteLine(value)
}

var std = New(
	&fileSink{file: func() *os.File { return os.Stdout }},
	&fileSink{file: func() *os.File { return os.Stderr }},
)

// Text writes value to the process standard output.
func Text(value string) { std.Text(value) }

// Integer writes value to the process standard output.
func Integer(value int) { std.Integer(value) }

// Pointer writes value to the process standard output.
func Pointer(value Address) { std.Pointer(value) }

// Error writes value to the process standard error.
func Error(value string) { std.Error(value) }
