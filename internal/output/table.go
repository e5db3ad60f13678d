// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/matt-FFFFFF/broom/sweep"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type tableSink struct {
	w      io.Writer
	opts   *options
	keys   []sweep.Key
	combos []sweep.Combination
}

func (s *tableSink) Write(c sweep.Combination) error {
	for _, k := range c.Keys {
		if !slices.Contains(s.keys, k) {
			s.keys = append(s.keys, k)
		}
	}

	s.combos = append(s.combos, c)

	return nil
}

func (s *tableSink) Close() error {
	headers := make([]string, len(s.keys))
	for i, k := range s.keys {
		headers[i] = keyName(k)
		if s.opts.shortHeaders && !k.Anonymous() {
			headers[i] = sweep.ShortenOption(k.Name(), s.opts.maxLength)
		}
	}

	rows := make([][]string, len(s.combos))
	for i, c := range s.combos {
		row := make([]string, len(s.keys))

		for j, k := range s.keys {
			if v, ok := c.State[k]; ok && v != nil {
				row[j] = fmt.Sprint(v)
			}
		}

		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	if _, err := fmt.Fprintln(s.w, t.Render()); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}
