package replay

import "github.com/younwookim/tilegrid/internal/application/system"

// Source is anything that can be polled for input events
type Source interface {
	Poll() []system.Event
}

// Recorder wraps an input source and records every poll as one frame
type Recorder struct {
	source    Source
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder in front of source
func NewRecorder(source Source, name string) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Name:   name,
			Frames: make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Poll polls the wrapped source and records the result
func (r *Recorder) Poll() []system.Event {
	events := r.source.Poll()
	if !r.recording {
		return events
	}

	frame := FrameInput{F: len(r.data.Frames)}
	if len(events) > 0 {
		frame.Events = append([]system.Event(nil), events...)
	}
	r.data.Frames = append(r.data.Frames, frame)

	return events
}

// Stop stops recording; polls still pass through
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording, ready to be handed to a Replayer
func (r *Recorder) Data() ReplayData {
	return r.data
}
