package indicator

import (
	"time"

	"github.com/earthlume/statusled/internal/display"
)

// Cell assignments. The role→slot mapping is fixed for the process
// lifetime; no two roles share a slot.
const (
	CellHeartbeat = iota
	CellCPULoad
	CellRAMUsage
	CellDiskUsage
	CellNetEth0
	CellNetWlan0
	CellAccelerator
	CellTemperature
)

const (
	tickInterval    = time.Second
	heartbeatPeriod = 2 * time.Second

	// The accelerator probe spawns a subprocess; re-checking every tick
	// would let the probe delay rendering. Probe every 30th tick and cache
	// the result in between.
	probeEveryTicks = 30

	heartbeatFloor = 40
	heartbeatSpan  = 215

	// Heartbeat temperature bands (°C)
	heartbeatWarmTemp = 60
	heartbeatHotTemp  = 70

	// Temperature cell range (°C), mapped linearly onto [0,1]
	tempRangeMin = 30.0
	tempRangeMax = 80.0

	sweepStepDelay = 75 * time.Millisecond
)

// Fixed cell colors
var (
	colorEth0      = display.Color{B: 255}
	colorWlan0     = display.Color{G: 255, B: 255}
	colorAccelLive = display.Color{R: 255, B: 255}
	colorAccelIdle = display.Color{R: 16, B: 16}
	colorSweep     = display.Color{R: 255, G: 255, B: 255}
)
