package display

// Fake is a test double that records every committed frame.
type Fake struct {
	// Frames holds each frame passed to WriteFrame, in order.
	Frames []Frame

	// WriteErr, if set, is returned by WriteFrame and the frame is dropped.
	WriteErr error

	// Closed tracks if Close was called.
	Closed bool
}

// WriteFrame records the frame, or returns the injected error.
func (f *Fake) WriteFrame(frame Frame) error {
	if f.WriteErr != nil {
		return f.WriteErr
	}
	f.Frames = append(f.Frames, frame)

	return nil
}

// Close marks the device as closed.
func (f *Fake) Close() error {
	f.Closed = true

	return nil
}

// LastFrame returns the most recently committed frame, or the zero frame if
// nothing was written.
func (f *Fake) LastFrame() Frame {
	if len(f.Frames) == 0 {
		return Frame{}
	}

	return f.Frames[len(f.Frames)-1]
}

// Reset discards recorded state.
func (f *Fake) Reset() {
	f.Frames = nil
	f.Closed = false
	f.WriteErr = nil
}
