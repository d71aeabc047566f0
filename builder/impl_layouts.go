// SPDX-License-Identifier: MIT
// Package: gridwalk/builder
//
// impl_layouts.go - implementation of FromRows and the two fixed layouts.
//
// Contract:
//   • Layout rows use grid.Parse symbols: S, E, '.', X (weight 1), 0-3.
//   • The layout must match the grid size exactly (else ErrBadSize).
//   • Cells are copied row-major; the grid is only touched after the whole
//     layout parsed cleanly.
//
// Complexity:
//   • Time: O(R×C). Space: O(R×C) for the parsed copy.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
)

// predefined1Rows: start and end share the top row; a weight-3 wall in
// column 3 has a single weight-1 gap, and a row of mixed weights guards the
// right half.
var predefined1Rows = []string{
	"S..3.....E",
	"01.3......",
	"...1......",
	".323..3210",
	"...3......",
	"...3......",
	"...3......",
	"...3123...",
	"...3......",
	"..........",
}

// predefined2Rows: a weight-3 U-shaped barrier separates the bottom-left
// start from the top-right end.
var predefined2Rows = []string{
	"..........",
	"........E.",
	"...33333..",
	".......3..",
	".......3..",
	".......3..",
	".......3..",
	".......3..",
	"S..33333..",
	"..........",
}

// FromRows returns a Constructor that copies the ASCII layout rows into g.
func FromRows(method string, rows []string) Constructor {
	return func(g *grid.Grid, cfg builderConfig) error {
		src, err := grid.Parse(strings.Join(rows, "\n"))
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		if err := validateExactSize(method, g.Height(), g.Width(), src.Height(), src.Width()); err != nil {
			return err
		}

		for y := 0; y < src.Height(); y++ {
			for x := 0; x < src.Width(); x++ {
				c := grid.Coord{X: x, Y: y}
				g.Set(c, src.CellAt(c))
			}
		}

		return nil
	}
}
