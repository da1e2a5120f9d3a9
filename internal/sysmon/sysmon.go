// Package sysmon samples host telemetry from the kernel pseudo-filesystems.
// Readings are transient: taken fresh every call, never cached.
package sysmon

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/earthlume/statusled/internal/errors"
	"golang.org/x/sys/unix"
)

const (
	loadAvgFile     = "loadavg"
	memInfoFile     = "meminfo"
	thermalZoneFile = "class/thermal/thermal_zone0/temp"
	netStateDir     = "class/net"

	milliDegreesPerDegree = 1000
)

// StatfsFunc matches unix.Statfs; injectable for tests.
type StatfsFunc func(path string, buf *unix.Statfs_t) error

// Sampler reads telemetry from /proc and /sys. The paths and the statfs
// call are injectable so tests can run against synthetic trees.
type Sampler struct {
	procPath string
	sysPath  string
	rootPath string
	cores    int
	statfs   StatfsFunc

	errFactory errors.Factory
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithProcPath overrides the /proc root.
func WithProcPath(path string) Option {
	return func(s *Sampler) { s.procPath = path }
}

// WithSysPath overrides the /sys root.
func WithSysPath(path string) Option {
	return func(s *Sampler) { s.sysPath = path }
}

// WithRootPath overrides the filesystem path used for disk statistics.
func WithRootPath(path string) Option {
	return func(s *Sampler) { s.rootPath = path }
}

// WithCores overrides the core count used to normalize the load average.
func WithCores(cores int) Option {
	return func(s *Sampler) { s.cores = cores }
}

// WithStatfs overrides the statfs call.
func WithStatfs(fn StatfsFunc) Option {
	return func(s *Sampler) { s.statfs = fn }
}

// New builds a Sampler reading from the live system.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		procPath:   "/proc",
		sysPath:    "/sys",
		rootPath:   "/",
		cores:      runtime.NumCPU(),
		statfs:     unix.Statfs,
		errFactory: errors.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LoadFraction reads the 1-minute load average and normalizes it by the
// core count, clamped to [0,1].
func (s *Sampler) LoadFraction() (float64, error) {
	raw, err := os.ReadFile(filepath.Join(s.procPath, loadAvgFile))
	if err != nil {
		return 0, s.errFactory.Wrap(ErrReadLoadAvg, err)
	}

	fields := strings.Fields(string(raw))
	if len(fields) == 0 {
		return 0, s.errFactory.WithMessage(ErrReadLoadAvg, "empty loadavg")
	}

	loadAvg, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, s.errFactory.Wrap(ErrReadLoadAvg, err)
	}

	if s.cores <= 0 {
		return 0, s.errFactory.WithMessage(ErrReadLoadAvg, "no cores detected")
	}

	return clampFraction(loadAvg / float64(s.cores)), nil
}

// MemoryUsedFraction computes 1 - MemAvailable/MemTotal from meminfo.
func (s *Sampler) MemoryUsedFraction() (float64, error) {
	file, err := os.Open(filepath.Join(s.procPath, memInfoFile))
	if err != nil {
		return 0, s.errFactory.Wrap(ErrReadMemInfo, err)
	}
	defer file.Close()

	var totalKB, availableKB float64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "MemTotal:"):
			totalKB = parseMemInfoKB(line)
		case strings.HasPrefix(line, "MemAvailable:"):
			availableKB = parseMemInfoKB(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, s.errFactory.Wrap(ErrReadMemInfo, err)
	}

	if totalKB <= 0 {
		return 0, s.errFactory.WithMessage(ErrReadMemInfo, "missing MemTotal")
	}

	return clampFraction(1 - availableKB/totalKB), nil
}

// DiskUsedFraction computes 1 - free/total blocks for the root filesystem.
func (s *Sampler) DiskUsedFraction() (float64, error) {
	var st unix.Statfs_t
	if err := s.statfs(s.rootPath, &st); err != nil {
		return 0, s.errFactory.Wrap(ErrReadDiskStats, err)
	}

	if st.Blocks == 0 {
		return 0, s.errFactory.WithMessage(ErrReadDiskStats, "zero total blocks")
	}

	return clampFraction(1 - float64(st.Bfree)/float64(st.Blocks)), nil
}

// LinkUp reports whether the interface's operstate is "up".
func (s *Sampler) LinkUp(iface string) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(s.sysPath, netStateDir, iface, "operstate"))
	if err != nil {
		return false, s.errFactory.Wrap(ErrReadLinkState, err)
	}

	return strings.TrimSpace(string(raw)) == "up", nil
}

// TemperatureC reads the SoC thermal zone, reported in millidegrees.
func (s *Sampler) TemperatureC() (float64, error) {
	raw, err := os.ReadFile(filepath.Join(s.sysPath, thermalZoneFile))
	if err != nil {
		return 0, s.errFactory.Wrap(ErrReadTemperature, err)
	}

	milli, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return 0, s.errFactory.Wrap(ErrReadTemperature, err)
	}

	return milli / milliDegreesPerDegree, nil
}

// parseMemInfoKB extracts the numeric kB value from a meminfo line like
// "MemTotal:  1000000 kB". Returns 0 on any malformed line.
func parseMemInfoKB(line string) float64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}

	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0
	}

	return value
}

func clampFraction(fraction float64) float64 {
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}

	return fraction
}
