package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from its ASCII form, one row per line.
// Symbols: S start, E end, . free, X obstacle of weight 1, 0-3 obstacle of
// that weight. Surrounding whitespace and blank lines are ignored.
// Returns ErrBadSymbol for any other character and the New errors otherwise.
func Parse(s string) (*Grid, error) {
	var rows [][]Cell
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		for x, r := range line {
			c, err := cellFromSymbol(r)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", err, r, x, len(rows))
			}
			row = append(row, c)
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(s string) *Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return g
}

func cellFromSymbol(r rune) (Cell, error) {
	switch r {
	case 'S':
		return StartCell(), nil
	case 'E':
		return EndCell(), nil
	case '.':
		return FreeCell(), nil
	case 'X':
		return ObstacleCell(1), nil
	case '0', '1', '2', '3':
		return ObstacleCell(int(r - '0')), nil
	default:
		return Cell{}, ErrBadSymbol
	}
}
