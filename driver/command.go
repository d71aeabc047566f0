package driver

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/heuristic"
	"github.com/katalvlaran/gridwalk/search"
)

// Algorithm selects the path finder of a Session.
type Algorithm int

const (
	// BFS is breadth-first search: unweighted, obstacles are walls.
	BFS Algorithm = iota
	// Dijkstra crosses obstacles at a weight-dependent cost.
	Dijkstra
	// Heuristic is greedy best-first search on the Manhattan estimate.
	Heuristic
)

// String returns the finder's Name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return bfs.Name
	case Dijkstra:
		return dijkstra.Name
	case Heuristic:
		return heuristic.Name
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range []Algorithm{BFS, Dijkstra, Heuristic} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
}

// newFinder builds the finder for a over g.
func newFinder(a Algorithm, g *grid.Grid, opts []search.Option) (search.PathFinder, error) {
	var (
		f   search.PathFinder
		err error
	)
	switch a {
	case BFS:
		f, err = bfs.New(g, opts...)
	case Dijkstra:
		f, err = dijkstra.New(g, opts...)
	case Heuristic:
		f, err = heuristic.New(g, opts...)
	default:
		return nil, fmt.Errorf("%v: %w", a, ErrUnknownAlgorithm)
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Command is one discrete input event.
type Command int

const (
	// Step advances the active search by one unit of work.
	Step Command = iota
	// Reset restores the grid and restarts the active search.
	Reset
	// UseBFS switches to breadth-first search over the current grid.
	UseBFS
	// UseDijkstra switches to Dijkstra over the current grid.
	UseDijkstra
	// UseHeuristic switches to greedy best-first search over the current grid.
	UseHeuristic
	// LoadPredefined1 replaces the grid with the first fixed layout.
	LoadPredefined1
	// LoadPredefined2 replaces the grid with the second fixed layout.
	LoadPredefined2
	// LoadRandom replaces the grid with a freshly generated random layout.
	LoadRandom
	// Quit asks the process adapter to exit.
	Quit
)

var commandNames = [...]string{
	Step:            "step",
	Reset:           "reset",
	UseBFS:          "bfs",
	UseDijkstra:     "dijkstra",
	UseHeuristic:    "heuristic",
	LoadPredefined1: "predefined1",
	LoadPredefined2: "predefined2",
	LoadRandom:      "random",
	Quit:            "quit",
}

// String returns the wire name of the command.
func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand is the inverse of Command.String.
func ParseCommand(s string) (Command, error) {
	for i, name := range commandNames {
		if name == s {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownCommand)
}

// keyBindings maps keyboard runes to commands.
var keyBindings = map[rune]Command{
	's': Step,
	'r': Reset,
	'b': UseBFS,
	'd': UseDijkstra,
	'h': UseHeuristic,
	'1': LoadPredefined1,
	'2': LoadPredefined2,
	'-': LoadRandom,
	'q': Quit,
}

// KeyCommand returns the command bound to key, if any.
func KeyCommand(key rune) (Command, bool) {
	c, ok := keyBindings[key]
	return c, ok
}

// Keys returns the bound runes in a fixed order, for help text and input polling.
func Keys() []rune {
	return []rune{'s', 'r', 'b', 'd', 'h', '1', '2', '-', 'q'}
}
