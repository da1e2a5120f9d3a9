package display

// Nop discards frames. Used in monitor mode, where status is logged but no
// LED hardware is driven.
type Nop struct{}

func NewNop() *Nop {
	return &Nop{}
}

func (*Nop) WriteFrame(Frame) error {
	return nil
}

func (*Nop) Close() error {
	return nil
}
