package config

import "time"

// SchedulerConfig defines the cadence of runs in automated mode.
type SchedulerConfig struct {
	// Interval between run starts, in seconds. Only used when mode is "automated".
	CheckIntervalSeconds int `json:"check_interval_seconds,omitempty" yaml:"check_interval_seconds,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultSchedulerConfig creates default scheduler configuration
func NewDefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		CheckIntervalSeconds: 86400, // daily
	}
}

// CheckInterval returns the interval between automated runs as a duration.
func (c SchedulerConfig) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}
