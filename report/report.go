// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/windgrid/simulation"
)

// ErrUnsupportedFormat indicates an output format other than json or yaml.
var ErrUnsupportedFormat = errors.New("report: unsupported format")

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFromPath picks yaml for .yaml/.yml and json otherwise.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes res to w in format.
func Encode(w io.Writer, res *simulation.Result, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrUnsupportedFormat
	}
}

// WriteFile writes res to path, choosing the format from the extension.
func WriteFile(path string, res *simulation.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, res, FormatFromPath(path))
}

// Summary writes the console block:
//
//	Selected reinforcements (1): [e1]
//	--- Simulation Summary ---
//	Surviving edges (2): [e1 e2]
//	Failed edges (0): []
//	Connected components (1):
//	  C1: [A B C]
//	Blackout zones (no generators) count: 0
//	--------------------------
func Summary(w io.Writer, res *simulation.Result) error {
	return summary(w, res, func(_ tone, s string) string { return s })
}

// SummaryColor writes the Summary block styled for w's terminal. Writers that
// are not terminals get the plain text.
func SummaryColor(w io.Writer, res *simulation.Result) error {
	r := lipgloss.NewRenderer(w)
	styles := map[tone]lipgloss.Style{
		toneTitle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")),
		toneGood:  r.NewStyle().Foreground(lipgloss.Color("#00C853")),
		toneBad:   r.NewStyle().Foreground(lipgloss.Color("#FF1744")),
		toneDim:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}

	return summary(w, res, func(t tone, s string) string { return styles[t].Render(s) })
}

type tone int

const (
	toneTitle tone = iota
	toneGood
	toneBad
	toneDim
)

func summary(w io.Writer, res *simulation.Result, paint func(tone, string) string) error {
	var b strings.Builder
	line := func(t tone, format string, args ...any) {
		b.WriteString(paint(t, fmt.Sprintf(format, args...)))
		b.WriteByte('\n')
	}

	line(toneTitle, "Selected reinforcements (%d): %v", len(res.Selected), res.Selected)
	line(toneDim, "--- Simulation Summary ---")
	line(toneGood, "Surviving edges (%d): %v", len(res.Surviving), res.Surviving)
	failed := toneGood
	if len(res.Failed) > 0 {
		failed = toneBad
	}
	line(failed, "Failed edges (%d): %v", len(res.Failed), res.Failed)
	line(toneTitle, "Connected components (%d):", len(res.Components))
	for i, c := range res.Components {
		line(toneDim, "  C%d: %v", i+1, c)
	}
	dark := toneGood
	if len(res.Blackouts) > 0 {
		dark = toneBad
	}
	line(dark, "Blackout zones (no generators) count: %d", len(res.Blackouts))
	line(toneDim, "--------------------------")

	_, err := io.WriteString(w, b.String())
	return err
}
