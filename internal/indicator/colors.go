package indicator

import (
	"math"

	"github.com/earthlume/statusled/internal/display"
)

// loadColor maps a [0,1] fraction onto a continuous green→yellow→red ramp,
// with yellow exactly at 0.5. Shared by the CPU, RAM, disk and temperature
// cells.
func loadColor(fraction float64) display.Color {
	if fraction < 0.5 {
		return display.Color{
			R: clampChannel(255 * fraction * 2),
			G: 255,
		}
	}

	return display.Color{
		R: 255,
		G: clampChannel(255 * (1 - (fraction-0.5)*2)),
	}
}

// heartbeatIntensity computes the sinusoidal pulse brightness for a tick.
// The result stays within [heartbeatFloor, 255] for any tick value.
func heartbeatIntensity(tick uint64) uint8 {
	periodTicks := float64(heartbeatPeriod / tickInterval)
	phase := math.Sin(float64(tick) * 2 * math.Pi / periodTicks)

	return clampChannel(heartbeatFloor + heartbeatSpan*(phase+1)/2)
}

// heartbeatColor picks the band color for the SoC temperature, with the
// non-zero channels set to the pulse intensity.
func heartbeatColor(tempC float64, intensity uint8) display.Color {
	switch {
	case tempC >= heartbeatHotTemp:
		return display.Color{R: intensity}
	case tempC >= heartbeatWarmTemp:
		return display.Color{R: intensity, G: intensity}
	default:
		return display.Color{G: intensity}
	}
}

// tempFraction maps a temperature linearly from [30°C, 80°C] onto [0,1],
// clamped at both ends.
func tempFraction(tempC float64) float64 {
	fraction := (tempC - tempRangeMin) / (tempRangeMax - tempRangeMin)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}

	return fraction
}

// clampChannel rounds to the nearest 8-bit intensity, guarding against
// floating-point overshoot.
func clampChannel(value float64) uint8 {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}

	return uint8(math.Round(value))
}
