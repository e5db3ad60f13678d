// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/broom/internal/fsys"
	"github.com/matt-FFFFFF/broom/sweep"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func combinations(t *testing.T) []sweep.Combination {
	t.Helper()

	var out []sweep.Combination
	for c, err := range sweep.Sweep(
		sweep.Constant("train"),
		sweep.Pair("--constant-option", sweep.Value("pink")),
		sweep.Pair("--a", sweep.Values("zero", "one")),
		sweep.Pair("--gone", sweep.Value(nil)),
	) {
		require.NoError(t, err)
		out = append(out, c)
	}

	return out
}

func write(t *testing.T, format Format, opts ...Option) string {
	t.Helper()

	buf := new(bytes.Buffer)
	sink, err := New(buf, format, opts...)
	require.NoError(t, err)

	for _, c := range combinations(t) {
		require.NoError(t, sink.Write(c))
	}

	require.NoError(t, sink.Close())

	return buf.String()
}

func TestText(t *testing.T) {
	assert.Equal(t,
		"train --constant-option=pink --a=zero\ntrain --constant-option=pink --a=one\n",
		write(t, FormatText))

	assert.Equal(t,
		"train,--constant-option:pink,--a:zero\ntrain,--constant-option:pink,--a:one\n",
		write(t, FormatText, WithJoinOptions(sweep.WithDelimiter(","), sweep.WithAssignment(":"))))
}

func TestJSON(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(write(t, FormatJSON)), "\n")
	require.Len(t, lines, 2)

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))

	assert.Equal(t, 1, rec.Index)
	assert.Equal(t, "train --constant-option=pink --a=one", rec.Line)
	assert.Equal(t, []Param{
		{Key: "#1", Value: "train", Anonymous: true},
		{Key: "--constant-option", Value: "pink"},
		{Key: "--a", Value: "one"},
		{Key: "--gone", Value: nil},
	}, rec.Params)
}

func TestYAML(t *testing.T) {
	stubs := gostub.Stub(&newID, func() string { return "00000000-0000-0000-0000-000000000001" })
	defer stubs.Reset()

	out := write(t, FormatYAML, WithName("demo"))

	var doc struct {
		ID           string           `yaml:"id"`
		Name         string           `yaml:"name"`
		Combinations []map[string]any `yaml:"combinations"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "00000000-0000-0000-0000-000000000001", doc.ID)
	assert.Equal(t, "demo", doc.Name)
	require.Len(t, doc.Combinations, 2)
	assert.Equal(t, "zero", doc.Combinations[0]["--a"])

	// key order follows the sweep
	first := strings.Index(out, "'#1'")
	if first < 0 {
		first = strings.Index(out, `"#1"`)
	}

	assert.Less(t, first, strings.Index(out, "--constant-option"))
	assert.Less(t, strings.Index(out, "--constant-option"), strings.Index(out, "--a"))
}

func TestYAMLEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	sink, err := New(buf, FormatYAML)
	require.NoError(t, err)
	require.NoError(t, sink.Close())
	assert.Contains(t, buf.String(), "combinations: []")
}

func TestTable(t *testing.T) {
	out := write(t, FormatTable)
	for _, want := range []string{"#1", "--constant-option", "--a", "--gone", "train", "pink", "zero", "one"} {
		assert.Contains(t, out, want)
	}

	short := write(t, FormatTable, WithShortHeaders(sweep.DefaultShortLength))
	assert.Contains(t, short, "copti")
	assert.NotContains(t, short, "--constant-option")
}

func TestUnknownFormat(t *testing.T) {
	_, err := New(new(bytes.Buffer), Format("csv"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))

	stubs := gostub.Stub(&fsys.FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	w, err := Open("/out/combos.txt")
	require.NoError(t, err)

	sink, err := New(w, FormatText)
	require.NoError(t, err)

	for _, c := range combinations(t) {
		require.NoError(t, sink.Write(c))
	}

	require.NoError(t, sink.Close())
	require.NoError(t, w.Close())

	got, err := afero.ReadFile(fs, "/out/combos.txt")
	require.NoError(t, err)
	assert.Equal(t, "train --constant-option=pink --a=zero\ntrain --constant-option=pink --a=one\n", string(got))
}

func TestOpenStdout(t *testing.T) {
	w, err := Open("")
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}
