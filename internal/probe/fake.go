package probe

import "context"

// Fake is a test double that returns scripted liveness values.
type Fake struct {
	// Results contains scripted values; each Alive call consumes the next.
	// Once exhausted, the last value repeats.
	Results []bool

	// Calls counts Alive invocations.
	Calls int
}

// Alive returns the next scripted value.
func (f *Fake) Alive(context.Context) bool {
	index := f.Calls
	f.Calls++

	if len(f.Results) == 0 {
		return false
	}
	if index >= len(f.Results) {
		return f.Results[len(f.Results)-1]
	}

	return f.Results[index]
}
