// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidToml is returned when a TOML definition cannot be decoded.
var ErrInvalidToml = errors.New("invalid TOML definition")

func parseTOML(data []byte) (*Definition, error) {
	def := new(Definition)

	md, err := toml.Decode(string(data), def)
	if err != nil {
		return nil, errors.Join(ErrInvalidToml, err)
	}

	if unknown := unknownKeys(md.Undecoded()); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidToml, unknown)
	}

	return def, nil
}

// unknownKeys returns the undecoded keys of the definition itself and of its params.
// Keys nested deeper, such as the fields of a param source, decode into maps and are
// checked by the param and source validation.
func unknownKeys(undecoded []toml.Key) []toml.Key {
	var unknown []toml.Key

	for _, k := range undecoded {
		if len(k) == 1 || (len(k) == 2 && k[0] == "param") {
			unknown = append(unknown, k)
		}
	}

	return unknown
}
