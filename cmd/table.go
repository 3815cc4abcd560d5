// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"os"
	"strings"

	"cogentcore.org/cam/cie"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// defaultWidth is the line width used when the output is not a terminal.
const defaultWidth = 100

// Table formats rows of text with aligned columns, followed by
// a color swatch for each row.
type Table struct {
	headers  []string
	rows     [][]string
	swatches [][]uint32
	padding  int
}

// NewTable returns a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, padding: 2}
}

// AddRow adds a row with the given cells and swatch colors. Cells are
// padded or truncated to the number of headers.
func (t *Table) AddRow(cells []string, swatches ...uint32) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
	t.swatches = append(t.swatches, swatches)
}

// Render writes the table to the given writer, truncating the text of
// each line to the width of the terminal.
func (t *Table) Render(w io.Writer) error {
	out := termenv.NewOutput(w)
	width := lineWidth(w)

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], runewidth.StringWidth(cell))
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = runewidth.FillRight(c, colWidths[i])
		}
		s := strings.TrimRight(strings.Join(parts, strings.Repeat(" ", t.padding)), " ")
		return runewidth.Truncate(s, width, "…")
	}

	var b strings.Builder
	b.WriteString(line(t.headers))
	b.WriteString("\n")
	for i, row := range t.rows {
		b.WriteString(line(row))
		for _, argb := range t.swatches[i] {
			if sw := Swatch(out, argb); sw != "" {
				b.WriteString(" ")
				b.WriteString(sw)
			}
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Swatch returns a block showing the given color as the background,
// or the empty string if the output does not support color.
func Swatch(out *termenv.Output, argb uint32) string {
	if out.Profile == termenv.Ascii {
		return ""
	}
	return out.String("    ").Background(out.Color(cie.AsHex(argb | 0xFF000000))).String()
}

// lineWidth returns the width of the terminal the given writer
// writes to, or [defaultWidth] if it is not a terminal.
func lineWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
