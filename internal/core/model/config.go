package model

import "time"

// Default phase lengths used when settings are absent or out of range.
const (
	DefaultAllowDuration    = 3 * time.Second
	DefaultProhibitDuration = 2 * time.Second
)

// CycleConfig contains the phase durations for one check cycle.
type CycleConfig struct {
	AllowDuration    time.Duration
	ProhibitDuration time.Duration
}

// DefaultCycleConfig returns the stock 3s/2s cycle.
func DefaultCycleConfig() CycleConfig {
	return CycleConfig{
		AllowDuration:    DefaultAllowDuration,
		ProhibitDuration: DefaultProhibitDuration,
	}
}

// Normalized replaces non-positive durations with defaults.
func (config CycleConfig) Normalized() CycleConfig {
	if config.AllowDuration <= 0 {
		config.AllowDuration = DefaultAllowDuration
	}
	if config.ProhibitDuration <= 0 {
		config.ProhibitDuration = DefaultProhibitDuration
	}
	return config
}
