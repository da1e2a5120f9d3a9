package display

import (
	"errors"
	"testing"
)

func TestFakeRecordsFrames(t *testing.T) {
	fake := &Fake{}

	var frame Frame
	frame[2] = Color{R: 255}

	if err := fake.WriteFrame(frame); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if err := fake.WriteFrame(Frame{}); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	if len(fake.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(fake.Frames))
	}
	if fake.Frames[0][2] != (Color{R: 255}) {
		t.Errorf("first frame not recorded correctly: %+v", fake.Frames[0][2])
	}
	if fake.LastFrame() != (Frame{}) {
		t.Errorf("last frame should be the cleared frame")
	}
}

func TestFakeWriteErrorDropsFrame(t *testing.T) {
	injected := errors.New("write failed")
	fake := &Fake{WriteErr: injected}

	err := fake.WriteFrame(Frame{})
	if !errors.Is(err, injected) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if len(fake.Frames) != 0 {
		t.Errorf("failed write must not record a frame")
	}
}

func TestFakeClose(t *testing.T) {
	fake := &Fake{}
	if err := fake.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !fake.Closed {
		t.Errorf("Closed flag not set")
	}
}
