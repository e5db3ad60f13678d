// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matt-FFFFFF/broom/internal/fsys"
	"github.com/matt-FFFFFF/broom/sweep"
)

var (
	// ErrUnknownFormat is returned for an output format that is not supported.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrWrite is returned when output cannot be written.
	ErrWrite = errors.New("failed to write output")
)

// Format is an output format.
type Format string

// Supported formats.
const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTable}

// Sink receives combinations in order.
// Close must be called once all combinations have been written; formats that
// need every combination, like the table, only write then.
type Sink interface {
	Write(c sweep.Combination) error
	Close() error
}

type options struct {
	join         []sweep.JoinOption
	name         string
	shortHeaders bool
	maxLength    int
}

// Option configures a Sink.
type Option func(*options)

// WithJoinOptions sets the delimiter and assignment used to render lines.
func WithJoinOptions(opts ...sweep.JoinOption) Option {
	return func(o *options) {
		o.join = append(o.join, opts...)
	}
}

// WithName sets the sweep name written by the YAML format.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithShortHeaders abbreviates table headers to at most maxLength characters.
func WithShortHeaders(maxLength int) Option {
	return func(o *options) {
		o.shortHeaders = true
		o.maxLength = maxLength
	}
}

// New returns a Sink writing format to w.
func New(w io.Writer, format Format, opts ...Option) (Sink, error) {
	o := &options{maxLength: sweep.DefaultShortLength}
	for _, opt := range opts {
		opt(o)
	}

	switch format {
	case FormatText, "":
		return &textSink{w: w, opts: o}, nil
	case FormatJSON:
		return newJSONSink(w, o), nil
	case FormatYAML:
		return newYAMLSink(w, o), nil
	case FormatTable:
		return &tableSink{w: w, opts: o}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Open returns the destination for output: stdout when path is empty or "-",
// otherwise the file at path, created or truncated.
func Open(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	f, err := fsys.FsFactory().Create(path)
	if err != nil {
		return nil, errors.Join(ErrWrite, err)
	}

	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// keyName is the label used for a key in structured formats.
func keyName(k sweep.Key) string {
	if k.Anonymous() {
		return "#" + strconv.Itoa(k.Index())
	}

	return k.Name()
}

type textSink struct {
	w    io.Writer
	opts *options
}

func (s *textSink) Write(c sweep.Combination) error {
	if _, err := fmt.Fprintln(s.w, sweep.Join(c.Keys, c.State, s.opts.join...)); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

func (s *textSink) Close() error { return nil }
