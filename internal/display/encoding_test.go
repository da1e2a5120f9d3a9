package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFrameStartFrame(t *testing.T) {
	buf := encodeFrame(Frame{})

	require.Len(t, buf, startFrameBytes+NumCells*bytesPerPixel)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, buf[:4], "start frame must be four zero bytes")
}

func TestEncodeFramePixelLayout(t *testing.T) {
	var frame Frame
	frame[0] = Color{R: 0x11, G: 0x22, B: 0x33}
	frame[7] = Color{R: 0xFF, G: 0x00, B: 0x80}

	buf := encodeFrame(frame)

	// Per pixel: header 0xE0|brightness, then blue, green, red.
	first := buf[4:8]
	assert.Equal(t, byte(0xE0|brightness5), first[0])
	assert.Equal(t, byte(0x33), first[1], "blue channel first")
	assert.Equal(t, byte(0x22), first[2], "green channel second")
	assert.Equal(t, byte(0x11), first[3], "red channel last")

	last := buf[4+7*bytesPerPixel:]
	assert.Equal(t, []byte{0xE0 | brightness5, 0x80, 0x00, 0xFF}, last)
}

func TestEncodeFrameAllPixelsCarryBrightnessHeader(t *testing.T) {
	buf := encodeFrame(Frame{})
	for i := 0; i < NumCells; i++ {
		header := buf[startFrameBytes+i*bytesPerPixel]
		assert.Equal(t, byte(0xE0|brightness5), header, "pixel %d header", i)
	}
}
