// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shorten provides the command that abbreviates option names.
package shorten

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/broom/cmd/broom/common"
	"github.com/matt-FFFFFF/broom/sweep"
	"github.com/urfave/cli/v3"
)

const maxLengthFlag = "max-length"

// NewCommand returns the command that prints the abbreviation of each option.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "shorten",
		Usage:     "Abbreviate option names, e.g. --some-long-option becomes slopt",
		ArgsUsage: "<option>...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    maxLengthFlag,
				Aliases: []string{"m"},
				Usage:   "Maximum length of an abbreviation",
				Value:   sweep.DefaultShortLength,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	maxLength := cmd.Int(maxLengthFlag)

	for _, option := range cmd.Args().Slice() {
		if _, err := fmt.Fprintln(cmd.Root().Writer, sweep.ShortenOption(option, maxLength)); err != nil {
			return common.Fail(ctx, "failed to write abbreviation", err)
		}
	}

	return nil
}
