package sysmon

import "github.com/earthlume/statusled/internal/errors"

const (
	ErrReadLoadAvg     = errors.ErrorCode("sysmon_read_loadavg_failed")
	ErrReadMemInfo     = errors.ErrorCode("sysmon_read_meminfo_failed")
	ErrReadDiskStats   = errors.ErrorCode("sysmon_read_disk_stats_failed")
	ErrReadLinkState   = errors.ErrorCode("sysmon_read_link_state_failed")
	ErrReadTemperature = errors.ErrorCode("sysmon_read_temperature_failed")
)
