package display

const (
	// brightness5 is the 5-bit APA102 global brightness field. The strip is
	// physically very bright; 3 of 31 (~10%) is a fixed usability ceiling.
	brightness5 = 3

	startFrameBytes = 4
	bytesPerPixel   = 4

	// latchClocks is the number of trailing clock pulses (data held low)
	// needed to shift the last pixel through the strip.
	latchClocks = 36
)

// encodeFrame serializes a frame into the APA102 wire format: a 4-byte zero
// start frame, then per pixel a header byte 0xE0|brightness followed by the
// blue, green and red channels. The trailing latch clocks are not part of
// the byte stream; the driver emits them separately.
func encodeFrame(frame Frame) []byte {
	buf := make([]byte, 0, startFrameBytes+NumCells*bytesPerPixel)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00)
	for _, c := range frame {
		buf = append(buf, 0xE0|brightness5, c.B, c.G, c.R)
	}

	return buf
}
