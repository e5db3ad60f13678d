// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sources provides the command that documents the value source types.
package sources

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/cmd/broom/common"
	"github.com/matt-FFFFFF/broom/internal/allsources"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/urfave/cli/v3"
)

const typeArg = "type"

// NewCommand returns the command that lists the source types, or shows an example of one.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "sources",
		Usage: "List the value source types, or print an example definition of one type",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: typeArg,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	r := sourceregistry.FromContext(ctx)
	if r == nil {
		r = allsources.New()
	}

	w := cmd.Root().Writer

	name := cmd.StringArg(typeArg)
	if name == "" {
		fmt.Fprintf(w, "Available source types:\n\n") //nolint:errcheck

		for k, b := range r.Iter() {
			fmt.Fprintf(w, "- %s: %s\n", k, b.Description()) //nolint:errcheck
		}

		return nil
	}

	b, ok := r[name]
	if !ok {
		return common.Fail(ctx, "unknown source type", fmt.Errorf("%w: %s", sourceregistry.ErrUnknownSourceType, name))
	}

	out, err := yaml.Marshal(map[string]any{"source": b.Example()})
	if err != nil {
		return common.Fail(ctx, "failed to marshal example", err)
	}

	fmt.Fprintf(w, "# %s\n%s", b.Description(), out) //nolint:errcheck

	return nil
}
