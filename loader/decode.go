// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads one definition from r in the given format and validates it.
// Unknown fields are rejected in both formats.
func Decode(r io.Reader, format Format) (*Definition, error) {
	var d Definition

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrInvalidDefinition, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidDefinition, err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load reads and validates the definition stored at path. The format is
// chosen by FormatFromPath.
func Load(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, FormatFromPath(path))
}
