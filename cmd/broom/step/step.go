// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package step provides the interactive command that pulls combinations one at a time.
package step

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/matt-FFFFFF/broom/cmd/broom/common"
	"github.com/matt-FFFFFF/broom/internal/color"
	"github.com/matt-FFFFFF/broom/internal/ctxlog"
	"github.com/matt-FFFFFF/broom/sweep"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const prompt = "step> "

// prompter reads one line of input.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// newPrompter is replaced in tests.
var newPrompter = func() prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	return line
}

// NewCommand returns the command that steps through the combinations of a sweep definition.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "step",
		Usage: "Step through the combinations of a sweep definition interactively",
		Description: "Press Enter or type `next` to show the next combination, " +
			"`quit` or `exit` or Ctrl+C to stop.",
		Flags: []cli.Flag{
			common.FileFlag(),
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	ctx = ctxlog.With(ctx, "command", cmd.Name)

	def, items, err := common.Load(ctx, cmd)
	if err != nil {
		return common.Fail(ctx, "failed to load definition", err)
	}

	line := newPrompter()
	defer line.Close() //nolint:errcheck

	return run(ctx, cmd.Root().Writer, line, sweep.Sweep(items...), def.JoinOptions()...)
}

func run(ctx context.Context, w io.Writer, line prompter, seq iter.Seq2[sweep.Combination, error], opts ...sweep.JoinOption) error {
	next, stop := iter.Pull2(seq)
	defer stop()

	fmt.Fprintln(w, "Press Enter for the next combination, `quit` or `exit` or Ctrl+C to stop.") //nolint:errcheck

	index := 0

	for ctx.Err() == nil {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(w, "Aborted") //nolint:errcheck
				return nil
			}

			return common.Fail(ctx, "error reading line", err)
		}

		switch cmd := strings.TrimSpace(input); cmd {
		case "quit", "exit":
			return nil
		case "", "next", "n":
			if cmd != "" {
				line.AppendHistory(cmd)
			}
		default:
			fmt.Fprintf(w, "unknown command %q, use next, quit or exit\n", cmd) //nolint:errcheck
			continue
		}

		c, err, ok := next()
		if !ok {
			fmt.Fprintf(w, "No more combinations, %d in total.\n", index) //nolint:errcheck
			return nil
		}

		index++

		if err != nil {
			fmt.Fprintf(w, "%d: %s\n", index, color.Colorize(err.Error(), color.FgRed)) //nolint:errcheck
			continue
		}

		fmt.Fprintf(w, "%d: %s\n", index, sweep.Join(c.Keys, c.State, opts...)) //nolint:errcheck
	}

	return nil
}
