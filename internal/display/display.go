// Package display drives the 8-pixel RGB strip. The real implementation
// bit-bangs the APA102 protocol over the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package display

// NumCells is the number of addressable pixels on the strip.
const NumCells = 8

// Pin definitions (BCM numbering, Pimoroni Blinkt layout)
const (
	PinData  = 23
	PinClock = 24
)

// Color is one pixel value. Channels are 8-bit intensities; the global
// brightness ceiling is applied by the device, not per color.
type Color struct {
	R, G, B uint8
}

// Frame is one complete strip image. The zero value is all pixels off.
type Frame [NumCells]Color

// Device commits frames to an output strip. WriteFrame is a batch
// operation: all pixels latch together, never one at a time.
type Device interface {
	WriteFrame(frame Frame) error
	Close() error
}
