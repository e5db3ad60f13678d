// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package definition

import (
	"errors"

	"github.com/goccy/go-yaml"
)

// ErrInvalidYaml is returned when a YAML definition cannot be decoded.
var ErrInvalidYaml = errors.New("invalid YAML definition")

func parseYAML(data []byte) (*Definition, error) {
	def := new(Definition)
	if err := yaml.UnmarshalWithOptions(data, def, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Join(ErrInvalidYaml, err)
	}

	return def, nil
}
