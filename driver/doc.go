// Package driver ties a grid, a layout generator and one active path finder
// into a Session that process adapters (the ebiten window, the websocket
// stream) drive with discrete Commands.
//
// A Session owns exactly one search.PathFinder at a time. Switching the
// algorithm hands a clone of the current grid to a fresh finder, which starts
// from a clean, restored grid. Loading a layout rebuilds the active finder
// over a newly generated grid, keeping the algorithm.
//
// The package also carries the process-level ambient stack: YAML
// configuration (LoadConfig), a logrus logger factory (NewLogger) and
// logrus-backed search hooks (LogHooks).
//
// A Session is not safe for concurrent use; adapters serialize access.
package driver
