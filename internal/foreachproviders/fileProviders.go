// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package foreachproviders

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// IncludeHidden is a type that indicates whether to include hidden directories.
type IncludeHidden bool

var (
	// HiddenInclude tells the provider to include hidden directories.
	HiddenInclude = IncludeHidden(true)
	// HiddenExclude tells the provider to exclude hidden directories.
	HiddenExclude = IncludeHidden(false)
)

// ListFiles lists the files matching pattern, sorted.
// A relative pattern is resolved against workingDirectory, and the results are
// returned relative to it.
func ListFiles(fs afero.Fs, workingDirectory, pattern string) ([]string, error) {
	searchPattern := pattern
	if !filepath.IsAbs(pattern) && workingDirectory != "" {
		searchPattern = filepath.Join(workingDirectory, pattern)
	}

	matches, err := afero.Glob(fs, searchPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list files with pattern %s: %w", pattern, err)
	}

	if !filepath.IsAbs(pattern) && workingDirectory != "" {
		for i, m := range matches {
			if rel, err := filepath.Rel(workingDirectory, m); err == nil {
				matches[i] = rel
			}
		}
	}

	slices.Sort(matches)

	return matches, nil
}

// ListDirectoriesDepth lists the directories below root, relative to root, in walk order.
// A depth of zero or less means no limit.
func ListDirectoriesDepth(fs afero.Fs, root string, depth int, includeHidden IncludeHidden) ([]string, error) {
	var dirs []string

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if path == root {
			return nil
		}

		if !bool(includeHidden) && strings.HasPrefix(filepath.Base(path), ".") {
			return filepath.SkipDir
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}

		if depth > 0 && strings.Count(relPath, string(os.PathSeparator)) > depth-1 {
			return filepath.SkipDir
		}

		dirs = append(dirs, relPath)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list directories in %s: %w", root, err)
	}

	return dirs, nil
}

// SplitString splits s by delimiter, trimming surrounding spaces from each part.
// Empty parts are dropped, so an empty string has no parts.
func SplitString(s, delimiter string) []string {
	var out []string

	for part := range strings.SplitSeq(s, delimiter) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
