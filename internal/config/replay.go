// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mia-platform/diaglog/internal/diag"
)

const (
	TextField    = "text"
	IntegerField = "integer"
	PointerField = "pointer"
	ErrorField   = "error"
)

var (
	// ErrParsing reports failures that occur while decoding replay files.
	ErrParsing = errors.New("error parsing")
	// ErrInvalidEntry reports an entry that does not set exactly one value.
	ErrInvalidEntry = errors.New("invalid entry")
)

// Kind identifies which Logger operation an Entry is sent to.
type Kind int

const (
	TextKind Kind = iota
	IntegerKind
	PointerKind
	ErrorKind
)

// ReplayFile is a single YAML document of a replay file.
type ReplayFile struct {
	Entries []RawEntry `json:"entries" yaml:"entries"`
}

// RawEntry is an entry as written in the file, only one field must be set.
type RawEntry struct {
	Text    *string `json:"text,omitempty" yaml:"text,omitempty"`
	Integer *int    `json:"integer,omitempty" yaml:"integer,omitempty"`
	Pointer *string `json:"pointer,omitempty" yaml:"pointer,omitempty"`
	Error   *string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Entry is a validated replay entry.
type Entry struct {
	Kind    Kind
	Text    string
	Integer int
	Address diag.Address
}

// Emit sends the entry to the matching logger operation.
func (e Entry) Emit(logger diag.Logger) {
	switch e.Kind {
	case TextKind:
		logger.Text(e.Text)
	case IntegerKind:
		logger.Integer(e.Integer)
	case PointerKind:
		logger.Pointer(e.Address)
	case ErrorKind:
		logger.Error(e.Text)
	}
}

// toEntry validates the raw entry and resolves its value.
func (r RawEntry) toEntry() (Entry, error) {
	setFields := make([]string, 0, 1)
	var entry Entry

	if r.Text != nil {
		setFields = append(setFields, TextField)
		entry = Entry{Kind: TextKind, Text: *r.Text}
	}
	if r.Integer != nil {
		setFields = append(setFields, IntegerField)
		entry = Entry{Kind: IntegerKind, Integer: *r.Integer}
	}
	if r.Pointer != nil {
		setFields = append(setFields, PointerField)
		address, err := diag.ParseAddress(*r.Pointer)
		if err != nil {
			return Entry{}, err
		}
		entry = Entry{Kind: PointerKind, Address: address}
	}
	if r.Error != nil {
		setFields = append(setFields, ErrorField)
		entry = Entry{Kind: ErrorKind, Text: *r.Error}
	}

	switch len(setFields) {
	case 0:
		return Entry{}, fmt.Errorf("%w: one of %s must be set", ErrInvalidEntry, strings.Join([]string{TextField, IntegerField, PointerField, ErrorField}, ", "))
	case 1:
		return entry, nil
	default:
		return Entry{}, fmt.Errorf("%w: multiple values set: %s", ErrInvalidEntry, strings.Join(setFields, ", "))
	}
}

// NewEntriesFromPath parses the replay file at path. A path of "-" reads from stdin.
func NewEntriesFromPath(path string) ([]Entry, error) {
	if path == "-" {
		return NewEntriesFromReader(os.Stdin, "stdin")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return NewEntriesFromReader(file, path)
}

// NewEntriesFromReader parses every YAML document in reader. name is only used in error messages,
// where documents and entries are counted from 1.
// No entry is returned if any of them is invalid.
func NewEntriesFromReader(reader io.Reader, name string) ([]Entry, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	entries := make([]Entry, 0)
	for document := 1; ; document++ {
		file := new(ReplayFile)
		if err := decoder.Decode(&file); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("%w %q: %w", ErrParsing, name, err)
		}

		// skip empty documents
		if file == nil {
			continue
		}

		for index, raw := range file.Entries {
			entry, err := raw.toEntry()
			if err != nil {
				return nil, fmt.Errorf("%w %q: document %d: entry %d: %w", ErrParsing, name, document, index+1, err)
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
