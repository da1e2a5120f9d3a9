package sysmon

// Source provides the per-tick telemetry readings. Every method returns the
// safe default value alongside any error, so a caller can log the failure
// and still render the tick.
type Source interface {
	// LoadFraction returns the 1-minute load average divided by the core
	// count, clamped to [0,1]. Defaults to 0.
	LoadFraction() (float64, error)

	// MemoryUsedFraction returns 1 - MemAvailable/MemTotal. Defaults to 0.
	MemoryUsedFraction() (float64, error)

	// DiskUsedFraction returns 1 - free/total blocks for the root
	// filesystem. Defaults to 0.
	DiskUsedFraction() (float64, error)

	// LinkUp reports whether the named interface's operational state is
	// "up". Defaults to false.
	LinkUp(iface string) (bool, error)

	// TemperatureC returns the SoC temperature in degrees Celsius.
	// Defaults to 0.
	TemperatureC() (float64, error)
}
