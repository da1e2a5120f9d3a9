//go:build linux

package display

import (
	"github.com/earthlume/statusled/internal/errors"
	"github.com/warthog618/go-gpiocdev"
)

const chipName = "gpiochip0"

// Blinkt drives the strip over two GPIO lines requested from the Linux GPIO
// character device.
type Blinkt struct {
	chip  *gpiocdev.Chip
	data  *gpiocdev.Line
	clock *gpiocdev.Line
}

// NewBlinkt opens gpiochip0 and requests the data and clock lines as outputs
// driven low, matching the strip's idle state.
func NewBlinkt() (*Blinkt, error) {
	errFactory := errors.New()

	chip, err := gpiocdev.NewChip(chipName, gpiocdev.WithConsumer("statusled"))
	if err != nil {
		return nil, errFactory.Wrap(ErrOpenFailed, err)
	}

	dataLine, err := chip.RequestLine(PinData, gpiocdev.AsOutput(0))
	if err != nil {
		chip.Close()
		return nil, errFactory.Wrap(ErrOpenFailed, err)
	}

	clockLine, err := chip.RequestLine(PinClock, gpiocdev.AsOutput(0))
	if err != nil {
		dataLine.Close()
		chip.Close()
		return nil, errFactory.Wrap(ErrOpenFailed, err)
	}

	return &Blinkt{
		chip:  chip,
		data:  dataLine,
		clock: clockLine,
	}, nil
}

// WriteFrame shifts out the whole frame and latches it. All 8 pixels change
// together on the latch; there is no visible partial update.
func (b *Blinkt) WriteFrame(frame Frame) error {
	errFactory := errors.New()

	for _, octet := range encodeFrame(frame) {
		if err := b.shiftOut(octet); err != nil {
			return errFactory.Wrap(ErrWriteFailed, err)
		}
	}

	if err := b.latch(); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	return nil
}

// Close clears the strip and releases the GPIO lines and chip.
func (b *Blinkt) Close() error {
	errFactory := errors.New()

	writeErr := b.WriteFrame(Frame{})

	var closeErr error
	if b.data != nil {
		if err := b.data.Close(); err != nil {
			closeErr = err
		}
	}
	if b.clock != nil {
		if err := b.clock.Close(); err != nil && closeErr == nil {
			closeErr = err
		}
	}
	if b.chip != nil {
		if err := b.chip.Close(); err != nil && closeErr == nil {
			closeErr = err
		}
	}

	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return errFactory.Wrap(ErrCloseFailed, closeErr)
	}

	return nil
}

// shiftOut clocks one byte onto the strip, most significant bit first.
func (b *Blinkt) shiftOut(octet byte) error {
	for bit := 7; bit >= 0; bit-- {
		value := int(octet>>uint(bit)) & 1
		if err := b.data.SetValue(value); err != nil {
			return err
		}
		if err := b.pulseClock(); err != nil {
			return err
		}
	}

	return nil
}

// latch holds data low and pulses the clock enough times to shift the last
// pixel through the strip.
func (b *Blinkt) latch() error {
	if err := b.data.SetValue(0); err != nil {
		return err
	}
	for i := 0; i < latchClocks; i++ {
		if err := b.pulseClock(); err != nil {
			return err
		}
	}

	return nil
}

func (b *Blinkt) pulseClock() error {
	if err := b.clock.SetValue(1); err != nil {
		return err
	}

	return b.clock.SetValue(0)
}
