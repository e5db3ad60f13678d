// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

var (
	// ErrParseHcl is returned when an HCL definition cannot be parsed.
	ErrParseHcl = errors.New("failed to parse HCL definition")
	// ErrUnsupportedValue is returned when an HCL value has no plain Go equivalent.
	ErrUnsupportedValue = errors.New("unsupported HCL value")
)

// environ is replaced in tests.
var environ = os.Environ

const (
	blockParam  = "param"
	blockSource = "source"
)

// ErrInvalidBlockType represents an error for an unexpected block in an HCL definition.
type ErrInvalidBlockType struct {
	BlockType string
	Range     hcl.Range
}

// NewErrInvalidBlockType creates a new ErrInvalidBlockType with the specified block type and range.
func NewErrInvalidBlockType(blockType string, r hcl.Range) *ErrInvalidBlockType {
	return &ErrInvalidBlockType{
		BlockType: blockType,
		Range:     r,
	}
}

// Error implements the error interface for ErrInvalidBlockType.
func (e *ErrInvalidBlockType) Error() string {
	return fmt.Sprintf("invalid block type %q at %s", e.BlockType, e.Range.String())
}

// EvalContext returns the context HCL expressions are evaluated in.
// It exposes the environment as `env.NAME` and a few string and list functions.
func EvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)

	for _, kv := range environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && hclsyntax.ValidIdentifier(k) {
			vars[k] = cty.StringVal(v)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"concat": stdlib.ConcatFunc,
			"format": stdlib.FormatFunc,
			"join":   stdlib.JoinFunc,
			"lower":  stdlib.LowerFunc,
			"range":  stdlib.RangeFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}

func parseHCL(data []byte, filename string) (*Definition, error) {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Join(ErrParseHcl, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected body type %T", ErrParseHcl, file.Body)
	}

	evalCtx := EvalContext()
	def := new(Definition)

	var result error

	attrs, err := attributes(body, evalCtx)
	if err != nil {
		result = multierror.Append(result, err)
	}

	for name, v := range attrs {
		if err := setTopLevel(def, name, v); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w at %s", err, body.Attributes[name].SrcRange))
		}
	}

	for _, b := range body.Blocks {
		if b.Type != blockParam {
			result = multierror.Append(result, NewErrInvalidBlockType(b.Type, b.DefRange()))
			continue
		}

		p, err := paramFromBlock(b, evalCtx)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		def.Params = append(def.Params, p)
	}

	if result != nil {
		return nil, errors.Join(ErrParseHcl, result)
	}

	return def, nil
}

func setTopLevel(def *Definition, name string, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: %s must be a string", ErrUnsupportedValue, name)
	}

	switch name {
	case "name":
		def.Name = s
	case "description":
		def.Description = s
	case "delimiter":
		def.Delimiter = &s
	case "assignment":
		def.Assignment = &s
	default:
		return fmt.Errorf("%w: unknown attribute %q", ErrUnsupportedValue, name)
	}

	return nil
}

// paramFromBlock converts `param "<key>" { ... }` into a param map.
// A param block without a label is anonymous.
func paramFromBlock(b *hclsyntax.Block, evalCtx *hcl.EvalContext) (map[string]any, error) {
	p, err := attributes(b.Body, evalCtx)
	if err != nil {
		return nil, err
	}

	switch len(b.Labels) {
	case 0:
	case 1:
		p[fieldKey] = b.Labels[0]
	default:
		return nil, fmt.Errorf("%w: param block takes at most one label at %s", ErrParseHcl, b.DefRange())
	}

	for _, sb := range b.Body.Blocks {
		if sb.Type != blockSource {
			return nil, NewErrInvalidBlockType(sb.Type, sb.DefRange())
		}

		if _, dup := p[fieldSource]; dup {
			return nil, fmt.Errorf("%w: more than one source at %s", ErrParseHcl, sb.DefRange())
		}

		src, err := attributes(sb.Body, evalCtx)
		if err != nil {
			return nil, err
		}

		if len(sb.Labels) == 1 {
			src["type"] = sb.Labels[0]
		}

		if len(sb.Body.Blocks) > 0 {
			return nil, NewErrInvalidBlockType(sb.Body.Blocks[0].Type, sb.Body.Blocks[0].DefRange())
		}

		p[fieldSource] = src
	}

	return p, nil
}

func attributes(body *hclsyntax.Body, evalCtx *hcl.EvalContext) (map[string]any, error) {
	out := make(map[string]any, len(body.Attributes))

	var result error

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			result = multierror.Append(result, diags)
			continue
		}

		v, err := ctyToGo(val)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%w at %s", err, attr.SrcRange))
			continue
		}

		out[name] = v
	}

	return out, result
}

// ctyToGo converts a cty value into the plain Go values the other formats decode to.
// Whole numbers become int, other numbers float64.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("%w: unknown value", ErrUnsupportedValue)
	}

	t := v.Type()

	switch {
	case t == cty.String:
		return v.AsString(), nil
	case t == cty.Bool:
		return v.True(), nil
	case t == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return int(i), nil
			}
		}

		f, _ := bf.Float64()

		return f, nil
	case t.IsListType() || t.IsTupleType() || t.IsSetType():
		out := make([]any, 0, v.LengthInt())

		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()

			g, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}

			out = append(out, g)
		}

		return out, nil
	case t.IsMapType() || t.IsObjectType():
		out := make(map[string]any)

		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()

			g, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}

			out[k.AsString()] = g
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, t.FriendlyName())
	}
}
