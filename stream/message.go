package stream

import "github.com/katalvlaran/gridwalk/driver"

// ClientMessage is one command sent by the remote controller.
type ClientMessage struct {
	Command string `json:"command"`
}

// ServerMessage reports the session after a command. Event is empty for the
// initial and the autostep snapshots. Error is set when the command was
// rejected; the snapshot then shows the unchanged session.
type ServerMessage struct {
	Event    string           `json:"event,omitempty"`
	Reached  bool             `json:"reached,omitempty"`
	Error    string           `json:"error,omitempty"`
	Snapshot *driver.Snapshot `json:"snapshot,omitempty"`
}
