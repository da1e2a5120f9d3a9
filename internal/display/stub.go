//go:build !linux

package display

import "github.com/earthlume/statusled/internal/errors"

// Blinkt is not available on non-Linux platforms.
type Blinkt struct{}

// NewBlinkt returns an error on non-Linux platforms.
func NewBlinkt() (*Blinkt, error) {
	return nil, errors.New().WithMessage(ErrUnsupported, "display: not supported on this platform (requires Linux)")
}

// WriteFrame is not implemented on non-Linux platforms.
func (b *Blinkt) WriteFrame(Frame) error {
	return errors.New().New(ErrUnsupported)
}

// Close is not implemented on non-Linux platforms.
func (b *Blinkt) Close() error {
	return nil
}
