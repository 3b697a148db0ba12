package replay

import "github.com/younwookim/tilegrid/internal/application/system"

// Replayer plays back recorded frames as an input source.
// Once the frames run out it delivers no further events.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// Poll returns the events for the current frame and advances
func (r *Replayer) Poll() []system.Event {
	if r.Done() {
		return nil
	}

	events := r.data.Frames[r.frame].Events
	r.frame++
	return events
}

// Done reports whether every frame has been delivered
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
