// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/broom/internal/ctxlog"
	"github.com/matt-FFFFFF/broom/internal/fsys"
	"github.com/spf13/afero"
)

// ErrGetDefinition is returned when the definition file cannot be fetched.
var ErrGetDefinition = errors.New("failed to get definition file")

// Load fetches the definition at url and decodes it according to its file extension.
func Load(ctx context.Context, url string) (*Definition, error) {
	data, fileName, err := getURL(ctx, url)
	if err != nil {
		return nil, err
	}

	format, err := FormatFromFilename(fileName)
	if err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "decoding definition", "file", fileName, "format", string(format))

	return Parse(data, fileName, format)
}

// getURL retrieves the content from the specified URL.
// Paths present on the local filesystem are read directly, anything else is
// fetched with Hashicorp's go-getter into a temporary directory that is removed
// after reading. It returns the content and the file name.
func getURL(ctx context.Context, url string) ([]byte, string, error) {
	if url == "" {
		return nil, "", ErrGetDefinition
	}

	fs := fsys.FsFactory()
	if ok, _ := afero.Exists(fs, url); ok {
		ctxlog.Debug(ctx, "reading local definition", "path", url)

		data, err := afero.ReadFile(fs, url)
		if err != nil {
			return nil, "", errors.Join(ErrGetDefinition, err)
		}

		return data, filepath.Base(url), nil
	}

	tmpDir, err := os.MkdirTemp("", "broom-getter-*")
	if err != nil {
		return nil, "", errors.Join(ErrGetDefinition, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Join(ErrGetDefinition, err)
	}

	cli := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     url,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string
	// Remote sources are fetched as a directory and the file is read from there.
	// https://github.com/hashicorp/go-getter/issues/98
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, "", errors.Join(ErrGetDefinition, err)
		}

		var newURL string

		newURL, fileName = splitFileNameFromGetterURL(url)
		if newURL == "" || fileName == "" {
			return nil, "", fmt.Errorf("%w: invalid URL format: %s", ErrGetDefinition, url)
		}

		req.Src = newURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(url)
		fileName = filepath.Base(url)
	}

	ctxlog.Debug(ctx, "fetching definition", "src", req.Src, "file", fileName)

	res, err := cli.Get(ctx, req)
	if err != nil {
		return nil, "", errors.Join(ErrGetDefinition, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, "", errors.Join(ErrGetDefinition, err)
	}

	return data, fileName, nil
}

const (
	goGetterPathSeparator = "//"
	goGetterRefSeparator  = "?"
	minimumGetterParts    = 3 // Minimum parts in a go-getter URL: scheme, host, and path
)

// splitFileNameFromGetterURL splits the URL into the directory and file name.
// It returns the new getter URL without the file name and the file name itself.
// It will append any ref query parameter to the new URL if it exists.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, goGetterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if path, query, found := strings.Cut(last, goGetterRefSeparator); found {
		ref = query
		last = path
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	parts[len(parts)-1] = filepath.Dir(last)

	if parts[len(parts)-1] == "." {
		parts = parts[:len(parts)-1]
	}

	newURL := strings.Join(parts, goGetterPathSeparator)

	if ref != "" {
		newURL += goGetterRefSeparator + ref
	}

	return newURL, fileName
}
