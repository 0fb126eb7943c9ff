package preferences

import (
	"time"

	"github.com/vdulnev/MouseCheckMacOs/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	AllowDuration    time.Duration
	ProhibitDuration time.Duration
	AutoCycle        bool
	StopOnError      bool
	KeepHistory      bool
}

// DefaultSettings returns default settings for MouseCheck.
func DefaultSettings() Settings {
	return Settings{
		AllowDuration:    model.DefaultAllowDuration,
		ProhibitDuration: model.DefaultProhibitDuration,
		AutoCycle:        true,
		StopOnError:      false,
		KeepHistory:      true,
	}
}

// CycleConfig converts settings to a CycleConfig.
func (settings Settings) CycleConfig() model.CycleConfig {
	return model.CycleConfig{
		AllowDuration:    settings.AllowDuration,
		ProhibitDuration: settings.ProhibitDuration,
	}.Normalized()
}
