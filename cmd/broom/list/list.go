// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package list provides the command that enumerates every combination of a sweep definition.
package list

import (
	"context"
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/broom/cmd/broom/common"
	"github.com/matt-FFFFFF/broom/internal/ctxlog"
	"github.com/matt-FFFFFF/broom/internal/output"
	"github.com/matt-FFFFFF/broom/sweep"
	"github.com/urfave/cli/v3"
)

const (
	formatFlag       = "format"
	outFlag          = "out"
	delimiterFlag    = "delimiter"
	assignmentFlag   = "assignment"
	limitFlag        = "limit"
	keepGoingFlag    = "keep-going"
	shortHeadersFlag = "short-headers"
	maxLengthFlag    = "max-length"
)

// NewCommand returns the command that writes the combinations of a sweep definition.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Write every combination of a sweep definition",
		Description: `Enumerate the combinations of the sweep definition and write them, one per line
for the text and json formats, as a single document for yaml, or as a table.

Enumeration stops at the first combination that fails, unless --keep-going is set,
in which case every good combination is written and the errors are reported at the end.`,
		Flags: []cli.Flag{
			common.FileFlag(),
			&cli.StringFlag{
				Name:     formatFlag,
				Aliases:  []string{"o"},
				Usage:    "Output format: text, json, yaml or table",
				Value:    string(output.FormatText),
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:      outFlag,
				Usage:     "Write to this file instead of stdout",
				TakesFile: true,
				OnlyOnce:  true,
			},
			&cli.StringFlag{
				Name:     delimiterFlag,
				Usage:    "Separator between fragments, overrides the definition",
				Value:    sweep.DefaultDelimiter,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     assignmentFlag,
				Usage:    "Separator between a key and its value, overrides the definition",
				Value:    sweep.DefaultAssignment,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:    limitFlag,
				Aliases: []string{"n"},
				Usage:   "Stop after this many combinations, 0 means all",
				Value:   0,
			},
			&cli.BoolFlag{
				Name:        keepGoingFlag,
				Aliases:     []string{"k"},
				Usage:       "Skip combinations that fail and report the errors at the end",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        shortHeadersFlag,
				Usage:       "Abbreviate the table headers",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.IntFlag{
				Name:  maxLengthFlag,
				Usage: "Maximum length of an abbreviated header",
				Value: sweep.DefaultShortLength,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	ctx = ctxlog.With(ctx, "command", cmd.Name)
	ctxlog.Debug(ctx, "running list command")

	format := output.Format(cmd.String(formatFlag))
	if !slices.Contains(output.Formats, format) {
		return common.Fail(ctx, "invalid output format", fmt.Errorf("%w: %q", output.ErrUnknownFormat, format))
	}

	def, items, err := common.Load(ctx, cmd)
	if err != nil {
		return common.Fail(ctx, "failed to load definition", err)
	}

	joinOpts := def.JoinOptions()
	if cmd.IsSet(delimiterFlag) {
		joinOpts = append(joinOpts, sweep.WithDelimiter(cmd.String(delimiterFlag)))
	}

	if cmd.IsSet(assignmentFlag) {
		joinOpts = append(joinOpts, sweep.WithAssignment(cmd.String(assignmentFlag)))
	}

	opts := []output.Option{output.WithJoinOptions(joinOpts...), output.WithName(def.Name)}
	if cmd.Bool(shortHeadersFlag) {
		opts = append(opts, output.WithShortHeaders(cmd.Int(maxLengthFlag)))
	}

	w := cmd.Root().Writer
	if out := cmd.String(outFlag); out != "" {
		f, err := output.Open(out)
		if err != nil {
			return common.Fail(ctx, "failed to open output file", err)
		}

		defer f.Close() //nolint:errcheck

		w = f
	}

	sink, err := output.New(w, format, opts...)
	if err != nil {
		return common.Fail(ctx, "failed to create output", err)
	}

	limit := cmd.Int(limitFlag)
	keepGoing := cmd.Bool(keepGoingFlag)

	var (
		failed  error
		written int
	)

	for c, err := range sweep.Sweep(items...) {
		if ctx.Err() != nil {
			break
		}

		if err != nil {
			if !keepGoing {
				return common.Fail(ctx, "failed to enumerate combinations", err)
			}

			ctxlog.Debug(ctx, "skipping failed combination", "error", err.Error())
			failed = multierror.Append(failed, err)

			continue
		}

		if err := sink.Write(c); err != nil {
			return common.Fail(ctx, "failed to write combination", err)
		}

		written++
		if limit > 0 && written >= limit {
			break
		}
	}

	if err := sink.Close(); err != nil {
		return common.Fail(ctx, "failed to write output", err)
	}

	ctxlog.Info(ctx, "combinations written", "count", written)

	if failed != nil {
		return common.Fail(ctx, "some combinations failed", failed)
	}

	return nil
}
