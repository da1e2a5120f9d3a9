// Package indicator owns the render loop: once per second it samples host
// telemetry and drives the 8 LED cells to reflect current system health.
package indicator

import (
	"context"
	"time"

	"github.com/earthlume/statusled/internal/display"
	"github.com/earthlume/statusled/internal/logger"
	"github.com/earthlume/statusled/internal/probe"
	"github.com/earthlume/statusled/internal/sysmon"
)

// Indicator is the single owner of all mutable daemon state: the output
// device, the tick counter and the cached accelerator liveness. There is
// exactly one instance per process and no concurrent access.
type Indicator struct {
	device  display.Device
	source  sysmon.Source
	prober  probe.Prober
	monitor bool

	tick            uint64
	acceleratorLive bool
}

// New wires an Indicator. In monitor mode the status line is logged at
// info level on every tick.
func New(device display.Device, source sysmon.Source, prober probe.Prober, monitor bool) *Indicator {
	return &Indicator{
		device:  device,
		source:  source,
		prober:  prober,
		monitor: monitor,
	}
}

// Startup plays the one-shot attention sweep: a single highlight cell runs
// left-to-right, then right-to-left, then the strip clears. Purely
// cosmetic; any failure here is non-fatal.
func (in *Indicator) Startup(ctx context.Context) {
	in.writeCosmetic(display.Frame{})

	for pos := 0; pos < display.NumCells; pos++ {
		if !in.sweepStep(ctx, pos) {
			return
		}
	}
	for pos := display.NumCells - 2; pos >= 0; pos-- {
		if !in.sweepStep(ctx, pos) {
			return
		}
	}

	in.writeCosmetic(display.Frame{})
}

// Run executes the render loop until the context is canceled. The first
// tick fires immediately so the display lights without a one-second delay.
func (in *Indicator) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	in.RunTick(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			in.RunTick(ctx)
		}
	}
}

// RunTick executes one tick body. A panic anywhere in the body is logged
// and the tick abandoned; the loop continues on the next tick.
func (in *Indicator) RunTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn().Interface("panic", r).Msg("tick abandoned")
		}
	}()

	in.renderTick(ctx)
}

// Shutdown clears all cells, flushes the clear and closes the device. The
// committed clear is the last device interaction before process exit.
func (in *Indicator) Shutdown() {
	if err := in.device.WriteFrame(display.Frame{}); err != nil {
		logger.Error().Err(err).Msg("failed to clear display")
	}
	if err := in.device.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close display")
	}
}

func (in *Indicator) renderTick(ctx context.Context) {
	tempC, err := in.source.TemperatureC()
	if err != nil {
		logger.Debug().Err(err).Msg("temperature read failed")
	}

	loadFraction, err := in.source.LoadFraction()
	if err != nil {
		logger.Debug().Err(err).Msg("load read failed")
	}

	memFraction, err := in.source.MemoryUsedFraction()
	if err != nil {
		logger.Debug().Err(err).Msg("memory read failed")
	}

	diskFraction, err := in.source.DiskUsedFraction()
	if err != nil {
		logger.Debug().Err(err).Msg("disk read failed")
	}

	eth0Up, err := in.source.LinkUp("eth0")
	if err != nil {
		logger.Debug().Err(err).Msg("eth0 state read failed")
	}

	wlan0Up, err := in.source.LinkUp("wlan0")
	if err != nil {
		logger.Debug().Err(err).Msg("wlan0 state read failed")
	}

	if in.tick%probeEveryTicks == 0 {
		in.acceleratorLive = in.prober.Alive(ctx)
	}

	var frame display.Frame
	frame[CellHeartbeat] = heartbeatColor(tempC, heartbeatIntensity(in.tick))
	frame[CellCPULoad] = loadColor(loadFraction)
	frame[CellRAMUsage] = loadColor(memFraction)
	frame[CellDiskUsage] = loadColor(diskFraction)
	if eth0Up {
		frame[CellNetEth0] = colorEth0
	}
	if wlan0Up {
		frame[CellNetWlan0] = colorWlan0
	}
	if in.acceleratorLive {
		frame[CellAccelerator] = colorAccelLive
	} else {
		frame[CellAccelerator] = colorAccelIdle
	}
	frame[CellTemperature] = loadColor(tempFraction(tempC))

	if err := in.device.WriteFrame(frame); err != nil {
		logger.Warn().Err(err).Msg("failed to commit frame")
	}

	in.logStatus(tempC, loadFraction, memFraction, diskFraction, eth0Up, wlan0Up)

	in.tick++
}

func (in *Indicator) logStatus(tempC, loadFraction, memFraction, diskFraction float64, eth0Up, wlan0Up bool) {
	event := logger.Debug()
	if in.monitor {
		event = logger.Info()
	}

	event.
		Uint64("tick", in.tick).
		Float64("temperature_c", tempC).
		Float64("cpu_load", loadFraction).
		Float64("ram_used", memFraction).
		Float64("disk_used", diskFraction).
		Bool("eth0_up", eth0Up).
		Bool("wlan0_up", wlan0Up).
		Bool("accelerator_live", in.acceleratorLive).
		Msg("")
}

// sweepStep lights a single cell and waits for the next step. Returns false
// when the context is canceled mid-sweep.
func (in *Indicator) sweepStep(ctx context.Context, pos int) bool {
	var frame display.Frame
	frame[pos] = colorSweep
	in.writeCosmetic(frame)

	return sleepCtx(ctx, sweepStepDelay)
}

func (in *Indicator) writeCosmetic(frame display.Frame) {
	if err := in.device.WriteFrame(frame); err != nil {
		logger.Debug().Err(err).Msg("startup animation write failed")
	}
}

// sleepCtx waits for the duration or the context, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
