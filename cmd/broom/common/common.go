// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package common holds the flags and helpers shared by the broom commands.
package common

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/broom/internal/allsources"
	"github.com/matt-FFFFFF/broom/internal/ctxlog"
	"github.com/matt-FFFFFF/broom/internal/definition"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/matt-FFFFFF/broom/sweep"
	"github.com/urfave/cli/v3"
)

const (
	// FileFlagName is the name of the definition file flag.
	FileFlagName = "file"
	// CliExitStr is the message passed to cli.Exit after the error has been logged.
	CliExitStr = ""
)

// ErrNoFile is returned when no definition file was given.
var ErrNoFile = errors.New("please specify the definition file using the --file or -f flag")

// FileFlag returns the flag selecting the definition file.
func FileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    FileFlagName,
		Aliases: []string{"f"},
		Usage: "Specify the URL of the sweep definition (.yaml, .yml, .toml or .hcl). " +
			"Supports Hashicorp's go-getter syntax for fetching files from various sources.",
		TakesFile: true,
		OnlyOnce:  true,
	}
}

// Load reads the definition named by the file flag and converts it into sweep items.
func Load(ctx context.Context, cmd *cli.Command) (*definition.Definition, []sweep.Item, error) {
	url := cmd.String(FileFlagName)
	if url == "" {
		return nil, nil, ErrNoFile
	}

	def, err := definition.Load(ctx, url)
	if err != nil {
		return nil, nil, err
	}

	r := sourceregistry.FromContext(ctx)
	if r == nil {
		r = allsources.New()
	}

	items, err := def.Items(ctx, r)
	if err != nil {
		return nil, nil, err
	}

	ctxlog.Debug(ctx, "definition loaded", "file", url, "name", def.Name, "params", len(items))

	return def, items, nil
}

// Fail logs err and returns the error that makes the CLI exit with status 1.
func Fail(ctx context.Context, msg string, err error) error {
	ctxlog.Error(ctx, msg, "error", err.Error())
	return cli.Exit(CliExitStr, 1)
}
