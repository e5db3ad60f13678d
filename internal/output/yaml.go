// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/matt-FFFFFF/broom/sweep"
)

// Document is the YAML output.
type Document struct {
	ID           string          `yaml:"id"`
	Name         string          `yaml:"name,omitempty"`
	Combinations []yaml.MapSlice `yaml:"combinations"`
}

// newID is replaced in tests.
var newID = uuid.NewString

type yamlSink struct {
	w   io.Writer
	doc Document
}

func newYAMLSink(w io.Writer, o *options) *yamlSink {
	return &yamlSink{
		w: w,
		doc: Document{
			ID:           newID(),
			Name:         o.name,
			Combinations: []yaml.MapSlice{},
		},
	}
}

func (s *yamlSink) Write(c sweep.Combination) error {
	m := make(yaml.MapSlice, len(c.Keys))
	for i, k := range c.Keys {
		m[i] = yaml.MapItem{Key: keyName(k), Value: c.State[k]}
	}

	s.doc.Combinations = append(s.doc.Combinations, m)

	return nil
}

func (s *yamlSink) Close() error {
	b, err := yaml.Marshal(s.doc)
	if err != nil {
		return errors.Join(ErrWrite, err)
	}

	if _, err := s.w.Write(b); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}
