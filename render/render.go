// Package render maps grid cells to screen colors and rectangles. It holds
// no drawing backend; cmd/gridwalk paints what it computes.
//
// A cell is filled with the color of its current kind. Visited and OnPath
// cells additionally keep a SeenBorder-wide ring in the color of the kind
// they wrap, so a crossed obstacle stays recognizable.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

const (
	// Width and Height are the logical window size in pixels.
	Width  = 800
	Height = 600

	// SeenBorder is the ring width of marked cells.
	SeenBorder = 10
)

// Window palette.
var (
	GridColor       = color.NRGBA{0x5e, 0x48, 0xe8, 0xff}
	BackgroundColor = color.NRGBA{0x18, 0x18, 0x18, 0xff}
	StartColor      = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	EndColor        = color.NRGBA{0xd7, 0x42, 0xf5, 0xff}
	PathColor       = color.NRGBA{0xff, 0xb0, 0x00, 0xff}
	SeenColor       = color.NRGBA{0xff, 0xff, 0x91, 0xff}

	// ObstacleColors is indexed by obstacle weight; heavier is fainter.
	ObstacleColors = [grid.MaxWeight + 1]color.NRGBA{
		{0x60, 0xbf, 0x74, 0xff},
		{0x40, 0xbf, 0x74, 0xbf},
		{0x20, 0xbf, 0x74, 0x80},
		{0x00, 0xbf, 0x74, 0x40},
	}
)

// Fill returns the color of c's interior.
func Fill(c grid.Cell) color.NRGBA {
	switch c.Mark {
	case grid.Visited:
		return SeenColor
	case grid.OnPath:
		return PathColor
	}

	return kindColor(c)
}

// Border returns the ring color of a marked cell: the color of the kind it
// wraps. Unmarked cells have no ring.
func Border(c grid.Cell) (color.NRGBA, bool) {
	if !c.Marked() {
		return color.NRGBA{}, false
	}
	return kindColor(c.Original()), true
}

func kindColor(c grid.Cell) color.NRGBA {
	switch c.Kind {
	case grid.Start:
		return StartColor
	case grid.End:
		return EndColor
	case grid.Obstacle:
		if c.Weight >= 0 && c.Weight < len(ObstacleColors) {
			return ObstacleColors[c.Weight]
		}
	}

	return BackgroundColor
}

// Geometry splits a width×height canvas into equal cells, one per grid cell.
// Integer division leaves any remainder unused at the right and bottom.
type Geometry struct {
	CellW, CellH int
	Cols, Rows   int
}

// NewGeometry fits v into a width×height canvas.
func NewGeometry(v grid.View, width, height int) Geometry {
	return Geometry{
		CellW: width / v.Width(),
		CellH: height / v.Height(),
		Cols:  v.Width(),
		Rows:  v.Height(),
	}
}

// Rect returns the pixel rectangle of c.
func (g Geometry) Rect(c grid.Coord) image.Rectangle {
	x, y := c.X*g.CellW, c.Y*g.CellH
	return image.Rect(x, y, x+g.CellW, y+g.CellH)
}

// Inner returns Rect(c) shrunk by SeenBorder on every side, or an empty
// rectangle when the cell is too small to keep an interior.
func (g Geometry) Inner(c grid.Coord) image.Rectangle {
	return g.Rect(c).Inset(SeenBorder)
}

// Caption is the one-line status shown above the grid.
func Caption(f search.PathFinder) string {
	s := fmt.Sprintf("%s: %s, visited %d", f.Name(), f.Status(), f.Visited())
	if p, ok := f.Path(); ok {
		s += fmt.Sprintf(", length %d, hops %d", p.Length, p.Hops())
	} else if f.Status() == search.StatusExhausted {
		s += ", path is not found"
	}

	return s
}
