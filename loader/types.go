// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrUnsupportedFormat indicates a format other than json or yaml.
	ErrUnsupportedFormat = errors.New("loader: unsupported format")

	// ErrInvalidDefinition indicates a definition that fails to parse or validate.
	ErrInvalidDefinition = errors.New("loader: invalid definition")

	// ErrUnknownDataset indicates a bundled dataset name that does not exist.
	ErrUnknownDataset = errors.New("loader: unknown dataset")
)

// Format names an input encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps "json", "yaml" or "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON for everything else.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// NodeID is a node identifier that accepts both string and integer literals.
// Integers are stored in canonical decimal form, so 7 and 007 name one node.
type NodeID string

// UnmarshalJSON accepts a JSON string or integer.
func (n *NodeID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = NodeID(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var num json.Number
	if err := dec.Decode(&num); err != nil {
		return fmt.Errorf("node id %s: must be a string or an integer", b)
	}
	i, err := num.Int64()
	if err != nil {
		return fmt.Errorf("node id %s: must be a string or an integer", b)
	}
	*n = NodeID(strconv.FormatInt(i, 10))

	return nil
}

// UnmarshalYAML accepts a string or integer scalar; null becomes the empty ID.
func (n *NodeID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: node id must be a scalar", value.Line)
	}
	switch value.ShortTag() {
	case "!!null":
		*n = ""
		return nil
	case "!!int":
		var i int64
		if err := value.Decode(&i); err != nil {
			return fmt.Errorf("line %d: node id %s: %w", value.Line, value.Value, err)
		}
		*n = NodeID(strconv.FormatInt(i, 10))
		return nil
	case "!!float":
		return fmt.Errorf("line %d: node id %s: must be a string or an integer", value.Line, value.Value)
	}
	*n = NodeID(value.Value)

	return nil
}

// EdgeDef is one line of a definition.
type EdgeDef struct {
	ID            string   `json:"id,omitempty" yaml:"id,omitempty"`
	U             NodeID   `json:"u" yaml:"u" validate:"required"`
	V             NodeID   `json:"v" yaml:"v" validate:"required"`
	Cost          *float64 `json:"cost,omitempty" yaml:"cost,omitempty" validate:"omitempty,gte=0"`
	WindThreshold *float64 `json:"wind_threshold" yaml:"wind_threshold" validate:"required,gte=0"`
}

// Definition is the decoded form of a grid file.
type Definition struct {
	Nodes      []NodeID  `json:"nodes" yaml:"nodes" validate:"dive,required"`
	Generators []NodeID  `json:"generators,omitempty" yaml:"generators,omitempty" validate:"dive,required"`
	Edges      []EdgeDef `json:"edges" yaml:"edges" validate:"dive"`
}

// GeneratorIDs returns the generator list as plain strings.
func (d *Definition) GeneratorIDs() []string {
	out := make([]string, len(d.Generators))
	for i, id := range d.Generators {
		out[i] = string(id)
	}

	return out
}

// MergedGenerators returns the definition's generators followed by the
// extra IDs that are not already present. Blank extras are skipped.
func (d *Definition) MergedGenerators(extra ...string) []string {
	out := d.GeneratorIDs()
	seen := make(map[string]struct{}, len(out)+len(extra))
	for _, id := range out {
		seen[id] = struct{}{}
	}
	for _, id := range extra {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// SplitList splits a comma separated list, trimming blanks.
func SplitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
