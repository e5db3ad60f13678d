// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/broom/internal/allsources"
	"github.com/matt-FFFFFF/broom/internal/sourceregistry"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromFilename(t *testing.T) {
	testCases := []struct {
		name    string
		want    Format
		wantErr error
	}{
		{name: "sweep.yaml", want: FormatYAML},
		{name: "sweep.YML", want: FormatYAML},
		{name: "dir/sweep.toml", want: FormatTOML},
		{name: "sweep.hcl", want: FormatHCL},
		{name: "sweep.json", wantErr: ErrUnknownFormat},
		{name: "sweep", wantErr: ErrUnknownFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatFromFilename(tc.name)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadWorkedExampleInEveryFormat(t *testing.T) {
	for _, file := range []string{"testdata/worked.yaml", "testdata/worked.toml", "testdata/worked.hcl"} {
		t.Run(file, func(t *testing.T) {
			def, err := Load(context.Background(), file)
			require.NoError(t, err)

			assert.Equal(t, "worked", def.Name)
			assert.NotEmpty(t, def.Description)
			assert.Len(t, def.Params, 5)
			assert.Equal(t, workedExample, sweepLines(t, def))
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		format  Format
		wantErr error
	}{
		{name: "yaml syntax", data: "params: [", format: FormatYAML, wantErr: ErrInvalidYaml},
		{name: "yaml unknown field", data: "nam: x\nparams: []", format: FormatYAML, wantErr: ErrInvalidYaml},
		{name: "toml syntax", data: "name = ", format: FormatTOML, wantErr: ErrInvalidToml},
		{name: "toml unknown key", data: "nmae = \"x\"", format: FormatTOML, wantErr: ErrInvalidToml},
		{name: "hcl syntax", data: "param {", format: FormatHCL, wantErr: ErrParseHcl},
		{name: "hcl unknown block", data: "params {}", format: FormatHCL, wantErr: ErrParseHcl},
		{name: "hcl unknown attribute", data: "title = \"x\"", format: FormatHCL, wantErr: ErrUnsupportedValue},
		{name: "unknown format", data: "", format: Format("ini"), wantErr: ErrUnknownFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), "test", tc.format)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseTOMLSources(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{
			name: "source table",
			data: "[[param]]\nkey = \"--b\"\n[param.source]\ntype = \"range\"\nend = 2\n",
		},
		{
			name: "inline source table",
			data: "[[param]]\nkey = \"--b\"\nsource = { type = \"range\", end = 2 }\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := Parse([]byte(tc.data), "test.toml", FormatTOML)
			require.NoError(t, err)
			assert.Equal(t, []string{"--b=0", "--b=1"}, sweepLines(t, def))
		})
	}
}

func TestParseTOMLUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("title = \"x\"\n[[param]]\nvalue = 1\n"), "test.toml", FormatTOML)
	require.ErrorIs(t, err, ErrInvalidToml)
	assert.Contains(t, err.Error(), "title")

	def, err := Parse([]byte("[[param]]\nkey = \"--b\"\nvlaue = 1\n"), "test.toml", FormatTOML)
	require.NoError(t, err)

	_, err = def.Items(context.Background(), allsources.New())
	require.ErrorIs(t, err, ErrInvalidDefinition)

	def, err = Parse([]byte("[[param]]\nkey = \"--b\"\n[param.source]\ntype = \"range\"\nend = 2\nstep = 2\n"), "test.toml", FormatTOML)
	require.NoError(t, err)

	_, err = def.Items(context.Background(), allsources.New())
	require.ErrorIs(t, err, sourceregistry.ErrSourceCreation)
}

func TestParseHCL(t *testing.T) {
	stubs := gostub.Stub(&environ, func() []string {
		return []string{"MODEL=large", "NOT-AN-IDENT=x", "EMPTY="}
	})
	defer stubs.Reset()

	def, err := Parse([]byte(`
delimiter  = " "
assignment = " "

param "--model" {
  value = lower(env.MODEL)
}

param "--seed" {
  values = range(1, 3)
}

param "--ratio" {
  value = 0.5
}

param "--skipped" {
  skip = true
}

param {
  source {
    type       = "expr"
    expression = "Get(\"--seed\") == 1 ? [\"a\", \"b\"] : nil"
  }
}
`), "test.hcl", FormatHCL)
	require.NoError(t, err)

	require.Len(t, def.Params, 5)
	assert.Equal(t, map[string]any{"key": "--model", "value": "large"}, def.Params[0])
	assert.Equal(t, map[string]any{"key": "--seed", "values": []any{1, 2}}, def.Params[1])
	assert.Equal(t, map[string]any{"key": "--ratio", "value": 0.5}, def.Params[2])
	assert.Equal(t, map[string]any{"key": "--skipped", "skip": true}, def.Params[3])

	assert.Equal(t, []string{
		"--model large --seed 1 --ratio 0.5 a",
		"--model large --seed 1 --ratio 0.5 b",
	}, sweepLines(t, def))
}

func TestParseHCLErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "two labels", data: `param "a" "b" { value = 1 }`},
		{name: "nested block in param", data: `param "a" { other {} }`},
		{name: "two sources", data: `param "a" {
  source "range" { end = 1 }
  source "range" { end = 2 }
}`},
		{name: "nested block in source", data: `param "a" {
  source "range" {
    inner {}
  }
}`},
		{name: "unknown variable", data: `param "a" { value = nope }`},
		{name: "non string name", data: `name = 3`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), "test.hcl", FormatHCL)
			assert.ErrorIs(t, err, ErrParseHcl)
		})
	}
}
