// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// GeneratorFunc produces the candidate values of one item.
// keys holds the keys fixed before the item, in order, and state their values.
// The returned sequence is consumed lazily, once per branch.
type GeneratorFunc func(keys []Key, state State) (iter.Seq[any], error)

// ValueSpec describes the candidates of a key-value or anonymous item.
// It is one of Value, Values or Generator.
type ValueSpec interface {
	candidates(keys []Key, state State) (iter.Seq[any], error)
}

type fixedValue struct {
	v any
}

func (f fixedValue) candidates(_ []Key, _ State) (iter.Seq[any], error) {
	return func(yield func(any) bool) {
		yield(f.v)
	}, nil
}

type fixedSequence []any

func (f fixedSequence) candidates(_ []Key, _ State) (iter.Seq[any], error) {
	return slices.Values(f), nil
}

type dependentGenerator GeneratorFunc

func (g dependentGenerator) candidates(keys []Key, state State) (iter.Seq[any], error) {
	return g(keys, state)
}

// Value returns a spec with the single candidate v.
func Value(v any) ValueSpec {
	return fixedValue{v: v}
}

// Values returns a spec whose candidates are vs, in order.
func Values(vs ...any) ValueSpec {
	return fixedSequence(slices.Clone(vs))
}

// Generator returns a spec whose candidates are computed by fn for every branch.
func Generator(fn GeneratorFunc) ValueSpec {
	if fn == nil {
		return nil
	}

	return dependentGenerator(fn)
}

// Item is one element of a sweep: a skip marker, a constant, an anonymous item or a key-value pair.
type Item interface {
	item()
}

type skipItem struct{}

func (skipItem) item() {}

type entry struct {
	key       string
	anonymous bool
	spec      ValueSpec
}

func (entry) item() {}

// Skip returns an item that is ignored by the sweep. A nil Item behaves the same.
func Skip() Item {
	return skipItem{}
}

// Constant returns an item with the single value v and an automatically assigned key.
// Join renders it without a key.
func Constant(v any) Item {
	return entry{anonymous: true, spec: Value(v)}
}

// Anonymous returns an item with an automatically assigned key and the candidates of spec.
func Anonymous(spec ValueSpec) Item {
	return entry{anonymous: true, spec: spec}
}

// Pair returns a key-value item.
func Pair(key string, spec ValueSpec) Item {
	return entry{key: key, spec: spec}
}

var generatorFuncType = reflect.TypeOf(GeneratorFunc(nil))

// Infer converts a loosely shaped value to an Item.
//
//   - nil is a skip marker;
//   - an Item is returned as is;
//   - a slice or array must hold exactly two elements, a key and a value;
//   - a GeneratorFunc, or a func with the same signature, is an anonymous generator,
//     and a nil one is a shape error;
//   - anything else is a constant.
//
// The value of a pair is a ValueSpec, a generator func, a slice or array of
// candidates, or a single value.
func Infer(v any) (Item, error) {
	switch t := v.(type) {
	case nil:
		return Skip(), nil
	case Item:
		return t, nil
	}

	if fn, ok := asGenerator(v); ok {
		if fn == nil {
			return nil, fmt.Errorf("%w: nil generator", ErrShape)
		}

		return Anonymous(Generator(fn)), nil
	}

	rv := reflect.ValueOf(v)
	if !isSequence(rv) {
		return Constant(v), nil
	}

	if rv.Len() != 2 { //nolint:mnd
		return nil, fmt.Errorf("%w: key-value items must have exactly two elements, got %d: %v", ErrShape, rv.Len(), v)
	}

	return Pair(fmt.Sprint(rv.Index(0).Interface()), inferSpec(rv.Index(1).Interface())), nil
}

func inferSpec(v any) ValueSpec {
	if spec, ok := v.(ValueSpec); ok {
		return spec
	}

	if fn, ok := asGenerator(v); ok {
		return Generator(fn)
	}

	rv := reflect.ValueOf(v)
	if !isSequence(rv) {
		return Value(v)
	}

	vals := make([]any, rv.Len())
	for i := range vals {
		vals[i] = rv.Index(i).Interface()
	}

	return fixedSequence(vals)
}

// asGenerator reports whether v has the GeneratorFunc signature. The returned
// func is nil for a typed nil func.
func asGenerator(v any) (GeneratorFunc, bool) {
	if fn, ok := v.(GeneratorFunc); ok {
		return fn, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || !rv.Type().ConvertibleTo(generatorFuncType) {
		return nil, false
	}

	if rv.IsNil() {
		return nil, true
	}

	return rv.Convert(generatorFuncType).Interface().(GeneratorFunc), true //nolint:forcetypeassert
}

// isSequence reports whether rv is a slice or array other than a string or byte slice.
func isSequence(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	default:
		return false
	}
}
