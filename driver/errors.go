package driver

import "errors"

var (
	// ErrQuit is returned by Session.Apply for the Quit command. Adapters
	// treat it as a clean shutdown request.
	ErrQuit = errors.New("driver: quit requested")

	// ErrUnknownCommand indicates a Command value or name outside the set.
	ErrUnknownCommand = errors.New("driver: unknown command")

	// ErrUnknownAlgorithm indicates an algorithm name other than bfs,
	// dijkstra or heuristic.
	ErrUnknownAlgorithm = errors.New("driver: unknown algorithm")

	// ErrBadConfig wraps every configuration validation failure.
	ErrBadConfig = errors.New("driver: invalid config")
)
