// Package stream serves gridwalk sessions over websockets.
//
// Every connection gets its own driver.Session. The client sends
// ClientMessage values naming driver commands ("step", "reset", "bfs", ...);
// after the initial state and after every applied command the server answers
// with a ServerMessage carrying a driver.Snapshot. When the configuration
// sets Autostep, the server also steps the search on a ticker until it
// settles. Messages are JSON text frames.
package stream
