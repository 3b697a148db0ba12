// Package replay feeds scripted input to a session and records live input.
// Recordings stay in memory.
package replay

import "github.com/younwookim/tilegrid/internal/application/system"

// FrameInput is the input delivered during a single tick
type FrameInput struct {
	F      int            // Frame number
	Events []system.Event // Events in delivery order, empty for an idle tick
}

// ReplayData is a sequence of per-tick inputs
type ReplayData struct {
	Name   string
	Frames []FrameInput
}

// EventCount returns the total number of events across all frames
func (d ReplayData) EventCount() int {
	n := 0
	for _, f := range d.Frames {
		n += len(f.Events)
	}
	return n
}
