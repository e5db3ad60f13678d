// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/matt-FFFFFF/broom/sweep"
)

// Record is one JSON line.
type Record struct {
	Index  int     `json:"index"`
	Line   string  `json:"line"`
	Params []Param `json:"params"`
}

// Param is one key and its value.
type Param struct {
	Key       string `json:"key"`
	Value     any    `json:"value"`
	Anonymous bool   `json:"anonymous,omitempty"`
}

type jsonSink struct {
	enc   *json.Encoder
	opts  *options
	index int
}

func newJSONSink(w io.Writer, o *options) *jsonSink {
	return &jsonSink{enc: json.NewEncoder(w), opts: o}
}

func (s *jsonSink) Write(c sweep.Combination) error {
	rec := Record{
		Index:  s.index,
		Line:   sweep.Join(c.Keys, c.State, s.opts.join...),
		Params: make([]Param, len(c.Keys)),
	}

	for i, k := range c.Keys {
		rec.Params[i] = Param{Key: keyName(k), Value: c.State[k], Anonymous: k.Anonymous()}
	}

	s.index++

	if err := s.enc.Encode(rec); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

func (s *jsonSink) Close() error { return nil }
