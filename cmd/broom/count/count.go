// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package count provides the command that prints the number of combinations of a sweep definition.
package count

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/broom/cmd/broom/common"
	"github.com/matt-FFFFFF/broom/internal/ctxlog"
	"github.com/matt-FFFFFF/broom/sweep"
	"github.com/urfave/cli/v3"
)

// NewCommand returns the command that counts the combinations of a sweep definition.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "count",
		Usage: "Print the number of combinations of a sweep definition",
		Flags: []cli.Flag{
			common.FileFlag(),
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	ctx = ctxlog.With(ctx, "command", cmd.Name)

	_, items, err := common.Load(ctx, cmd)
	if err != nil {
		return common.Fail(ctx, "failed to load definition", err)
	}

	n, err := sweep.Count(sweep.Sweep(items...))
	if err != nil {
		return common.Fail(ctx, "failed to enumerate combinations", err)
	}

	if _, err := fmt.Fprintln(cmd.Root().Writer, n); err != nil {
		return common.Fail(ctx, "failed to write count", err)
	}

	return nil
}
