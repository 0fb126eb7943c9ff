package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowPad     func()
	OnPreferences func()
	OnStartCycle  func()
	OnStopCycle   func()
	OnToggleAuto  func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	stopItem    *fyne.MenuItem
	autoItem    *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	autoCycle   bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start check", func() {
		if manager.callbacks.OnStartCycle != nil {
			manager.callbacks.OnStartCycle()
		}
	})

	manager.stopItem = fyne.NewMenuItem("Stop", func() {
		if manager.callbacks.OnStopCycle != nil {
			manager.callbacks.OnStopCycle()
		}
	})
	manager.stopItem.Disabled = true

	manager.autoItem = fyne.NewMenuItem("Auto repeat", func() {
		if manager.callbacks.OnToggleAuto != nil {
			manager.callbacks.OnToggleAuto()
		}
	})

	app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetRunning toggles the start/stop items.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	manager.startItem.Disabled = running
	manager.stopItem.Disabled = !running
	manager.refreshMenu()
}

// SetAutoCycle updates the auto repeat checkmark.
func (manager *Manager) SetAutoCycle(enabled bool) {
	manager.autoCycle = enabled
	manager.autoItem.Checked = enabled
	manager.refreshMenu()
}

func (manager *Manager) buildMenu() *fyne.Menu {
	showPad := fyne.NewMenuItem("Show pad", func() {
		if manager.callbacks.OnShowPad != nil {
			manager.callbacks.OnShowPad()
		}
	})
	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	return fyne.NewMenu("MouseCheck",
		manager.statusItem,
		showPad,
		preferences,
		manager.startItem,
		manager.stopItem,
		manager.autoItem,
		quit,
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}
