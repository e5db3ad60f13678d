// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the broom command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/broom"
	"github.com/matt-FFFFFF/broom/cmd/broom/count"
	"github.com/matt-FFFFFF/broom/cmd/broom/list"
	"github.com/matt-FFFFFF/broom/cmd/broom/shorten"
	"github.com/matt-FFFFFF/broom/cmd/broom/sources"
	"github.com/matt-FFFFFF/broom/cmd/broom/step"
	"github.com/matt-FFFFFF/broom/internal/allsources"
	"github.com/matt-FFFFFF/broom/internal/color"
	"github.com/matt-FFFFFF/broom/internal/ctxlog"
	"github.com/matt-FFFFFF/broom/internal/signalbroker"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/urfave/cli/v3"
)

const (
	logJSONFlag  = "log-json"
	logLevelFlag = "log-level"
	noColorFlag  = "no-color"
)

// newRootCmd returns the root command for the CLI.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			list.NewCommand(),
			count.NewCommand(),
			step.NewCommand(),
			shorten.NewCommand(),
			sources.NewCommand(),
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        logJSONFlag,
				Usage:       "Write logs as JSON",
				Value:       false,
				DefaultText: "false",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "Log level: debug, info, warn or error. Defaults to $" + ctxlog.LevelEnvVar() + " or warn",
			},
			&cli.BoolFlag{
				Name:        noColorFlag,
				Usage:       "Disable coloured output",
				Value:       false,
				DefaultText: "false",
			},
		},
		Before:    before,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "broom",
		Description: `Broom enumerates the combinations of a parameter sweep and renders each one
as a command line. A sweep is an ordered list of params: fixed values, lists of
values, and sources whose values depend on the choices made for earlier params.`,
		Usage:     "broom list -f sweep.yaml",
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		EnableShellCompletion: true,
		Version:               fmt.Sprintf("%s (commit: %s)", broom.Version, broom.Commit),
	}
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool(noColorFlag) {
		color.SetEnabled(false)
	}

	if lvl := cmd.String(logLevelFlag); lvl != "" {
		ctxlog.LevelVar.Set(ctxlog.ParseLevel(lvl))
	}

	if cmd.Bool(logJSONFlag) {
		ctx = ctxlog.New(ctx, ctxlog.JSONLogger)
	}

	return ctxlog.With(ctx, "run", uuid.NewString()), nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	ctx = sourceregistry.WithRegistry(ctx, allsources.New())

	err := newRootCmd().Run(ctx, os.Args) // Err is handled by cli framework

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		os.Exit(signalbroker.ExitCodeInterrupted)
	}

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Info(ctx, "command completed successfully")
}
