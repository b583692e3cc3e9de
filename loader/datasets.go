// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed datasets/*.yaml
var datasetFS embed.FS

// DatasetNames lists the bundled datasets in lexical order.
func DatasetNames() []string {
	entries, err := fs.ReadDir(datasetFS, "datasets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

// Dataset returns the bundled definition called name.
func Dataset(name string) (*Definition, error) {
	raw, err := datasetFS.ReadFile("datasets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}

	return Decode(bytes.NewReader(raw), FormatYAML)
}
