// Package grid models the fixed-size 2D board that the path finders walk.
//
// What:
//
//   - Grid owns a rectangular matrix of Cell values addressed by Coord{X, Y}.
//   - A Cell is a flat value: a Kind (Free, Start, End, Obstacle), an obstacle
//     Weight in [0,3] and a search Mark (Unmarked, Visited, OnPath).
//   - Marking a cell never loses its original kind, so Restore can undo every
//     search mark in place.
//   - Neighbors answers the up-to-4 orthogonal in-bounds neighbors of a cell.
//   - Parse and String convert to and from a compact ASCII form.
//
// Why:
//
//   - Search algorithms mutate marks while a renderer reads them; keeping the
//     original kind inside the cell lets the renderer draw an overlay and lets
//     a reset restore the board without keeping a second copy.
//
// Complexity:
//
//   - Neighbors, CellAt, Set: O(1).
//   - Restore, Locate, Clone, String: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadWeight: an obstacle weight outside [0,3].
//   - ErrMarkedCell: an input cell already carries a search mark.
//   - ErrBadSymbol: Parse met an unknown character.
package grid
