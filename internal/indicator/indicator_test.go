package indicator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/earthlume/statusled/internal/display"
	"github.com/earthlume/statusled/internal/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource returns scripted fractions and link states. Error fields
// simulate a transient read failure: the safe default is returned alongside
// the error, matching the sampler contract.
type stubSource struct {
	load, mem, disk, temp float64
	eth0, wlan0           bool

	loadErr, memErr, diskErr, linkErr, tempErr error
}

func (s *stubSource) LoadFraction() (float64, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	return s.load, nil
}

func (s *stubSource) MemoryUsedFraction() (float64, error) {
	if s.memErr != nil {
		return 0, s.memErr
	}
	return s.mem, nil
}

func (s *stubSource) DiskUsedFraction() (float64, error) {
	if s.diskErr != nil {
		return 0, s.diskErr
	}
	return s.disk, nil
}

func (s *stubSource) LinkUp(iface string) (bool, error) {
	if s.linkErr != nil {
		return false, s.linkErr
	}
	if iface == "eth0" {
		return s.eth0, nil
	}
	return s.wlan0, nil
}

func (s *stubSource) TemperatureC() (float64, error) {
	if s.tempErr != nil {
		return 0, s.tempErr
	}
	return s.temp, nil
}

func TestProbeCadence(t *testing.T) {
	fake := &display.Fake{}
	prober := &probe.Fake{Results: []bool{true, false, true}}
	ind := New(fake, &stubSource{temp: 45}, prober, false)

	for i := 0; i < 61; i++ {
		ind.RunTick(context.Background())
	}

	require.Equal(t, 3, prober.Calls, "probe fires at ticks 0, 30 and 60 only")
	require.Len(t, fake.Frames, 61)

	for i := 0; i < 30; i++ {
		assert.Equal(t, colorAccelLive, fake.Frames[i][CellAccelerator], "tick %d", i)
	}
	for i := 30; i < 60; i++ {
		assert.Equal(t, colorAccelIdle, fake.Frames[i][CellAccelerator], "tick %d", i)
	}
	assert.Equal(t, colorAccelLive, fake.Frames[60][CellAccelerator])
}

func TestSingleReadFailureAffectsOnlyItsCell(t *testing.T) {
	fake := &display.Fake{}
	source := &stubSource{
		load:    0.5,
		mem:     0.5,
		temp:    45,
		eth0:    true,
		diskErr: errors.New("statfs failed"),
	}
	ind := New(fake, source, &probe.Fake{}, false)

	ind.RunTick(context.Background())

	require.Len(t, fake.Frames, 1, "the tick must complete despite the failure")
	frame := fake.Frames[0]

	assert.Equal(t, loadColor(0), frame[CellDiskUsage], "failed metric falls back to its default color")
	assert.Equal(t, loadColor(0.5), frame[CellCPULoad], "other cells are unaffected")
	assert.Equal(t, loadColor(0.5), frame[CellRAMUsage])
	assert.Equal(t, colorEth0, frame[CellNetEth0])
}

func TestLinkCellsFollowOperationalState(t *testing.T) {
	fake := &display.Fake{}
	source := &stubSource{eth0: true, wlan0: false, temp: 40}
	ind := New(fake, source, &probe.Fake{}, false)

	ind.RunTick(context.Background())

	frame := fake.Frames[0]
	assert.Equal(t, colorEth0, frame[CellNetEth0])
	assert.Equal(t, display.Color{}, frame[CellNetWlan0], "down interface stays dark")
}

func TestEndToEndScenario(t *testing.T) {
	fake := &display.Fake{}
	source := &stubSource{
		load: 1.0, // load average 4.0 on 4 cores
		mem:  0.2, // 800000 kB available of 1000000 kB
		temp: 75,
	}
	ind := New(fake, source, &probe.Fake{}, false)

	ind.RunTick(context.Background())

	frame := fake.Frames[0]
	assert.Equal(t, display.Color{R: 255}, frame[CellCPULoad])
	assert.Equal(t, display.Color{R: 102, G: 255}, frame[CellRAMUsage])
	assert.Equal(t, display.Color{R: 255, G: 51}, frame[CellTemperature])

	heartbeat := frame[CellHeartbeat]
	assert.NotZero(t, heartbeat.R, "75°C puts the heartbeat in the red band")
	assert.Zero(t, heartbeat.G)
	assert.Zero(t, heartbeat.B)
}

func TestWriteFailureDoesNotAbortTick(t *testing.T) {
	fake := &display.Fake{WriteErr: errors.New("device gone")}
	ind := New(fake, &stubSource{temp: 45}, &probe.Fake{}, false)

	ind.RunTick(context.Background())
	ind.RunTick(context.Background())

	assert.Empty(t, fake.Frames, "failed writes drop the frame")
}

func TestRunStopsOnCancelAndShutdownClears(t *testing.T) {
	fake := &display.Fake{}
	ind := New(fake, &stubSource{temp: 45, eth0: true}, &probe.Fake{Results: []bool{true}}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- ind.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	ind.Shutdown()

	require.NotEmpty(t, fake.Frames)
	assert.Equal(t, display.Frame{}, fake.LastFrame(), "final committed frame is the full clear")
	assert.True(t, fake.Closed, "device closed on shutdown")
}

func TestStartupSweep(t *testing.T) {
	fake := &display.Fake{}
	ind := New(fake, &stubSource{}, &probe.Fake{}, false)

	ind.Startup(context.Background())

	// clear + 8 steps out + 7 steps back + clear
	require.Len(t, fake.Frames, 17)
	assert.Equal(t, display.Frame{}, fake.Frames[0])
	assert.Equal(t, display.Frame{}, fake.Frames[16])

	positions := []int{0, 1, 2, 3, 4, 5, 6, 7, 6, 5, 4, 3, 2, 1, 0}
	for i, pos := range positions {
		frame := fake.Frames[1+i]
		for cell := 0; cell < display.NumCells; cell++ {
			if cell == pos {
				assert.Equal(t, colorSweep, frame[cell], "step %d", i)
			} else {
				assert.Equal(t, display.Color{}, frame[cell], "step %d cell %d", i, cell)
			}
		}
	}
}

func TestStartupStopsOnCancel(t *testing.T) {
	fake := &display.Fake{}
	ind := New(fake, &stubSource{}, &probe.Fake{}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ind.Startup(ctx)

	// Initial clear plus the first sweep step, then the cancellation lands.
	assert.Len(t, fake.Frames, 2)
}

// panicSource blows up mid-tick to exercise the recover guard.
type panicSource struct {
	stubSource
}

func (*panicSource) MemoryUsedFraction() (float64, error) {
	panic("meminfo exploded")
}

func TestTickPanicIsRecovered(t *testing.T) {
	fake := &display.Fake{}
	ind := New(fake, &panicSource{}, &probe.Fake{}, false)

	assert.NotPanics(t, func() {
		ind.RunTick(context.Background())
		ind.RunTick(context.Background())
	})
	assert.Empty(t, fake.Frames, "a panicking tick is abandoned before the commit")
}

func TestStartupWriteFailureNonFatal(t *testing.T) {
	fake := &display.Fake{WriteErr: errors.New("device gone")}
	ind := New(fake, &stubSource{}, &probe.Fake{}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ind.Startup(ctx)

	assert.Empty(t, fake.Frames)
}
