package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/vdulnev/MouseCheckMacOs/internal/core/cycle"
	"github.com/vdulnev/MouseCheckMacOs/internal/platform"
	"github.com/vdulnev/MouseCheckMacOs/internal/storage"
	"github.com/vdulnev/MouseCheckMacOs/internal/ui/clickpad"
	"github.com/vdulnev/MouseCheckMacOs/internal/ui/preferences"
	"github.com/vdulnev/MouseCheckMacOs/internal/ui/tray"
	"github.com/vdulnev/MouseCheckMacOs/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "MouseCheck"

const historyLines = 5

// appState holds the pieces shared between the Fyne callbacks and the
// controller event loop.
type appState struct {
	mu       sync.Mutex
	settings preferences.Settings
	history  *storage.History
}

func (state *appState) current() (preferences.Settings, *storage.History) {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.settings, state.history
}

func main() {
	guard, err := platform.Acquire(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.vdulnev.mousecheck")
	fyneApp.SetIcon(resources.MustLogo("mouse_active.png"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	state := &appState{settings: settings}
	if settings.KeepHistory {
		history, err := storage.OpenHistory(appName)
		if err != nil {
			log.Printf("open history: %v", err)
		} else {
			state.history = history
		}
	}

	controller := cycle.New(settings.CycleConfig(), cycle.Config{PollInterval: 100 * time.Millisecond})

	var padWindow *clickpad.Window
	var prefsWindow *preferences.Window
	padWindow = clickpad.New(fyneApp, clickpad.Callbacks{
		OnClick: func() {
			controller.RegisterClick()
		},
		OnStart: func() {
			controller.StartCycle()
		},
		OnStop: func() {
			controller.StopCycle()
			padWindow.SetAutoCycle(false)
		},
		OnAutoCycle: func(enabled bool) {
			controller.SetAutoCycle(enabled)
		},
		OnPreferences: func() {
			if prefsWindow != nil {
				prefsWindow.Show()
			}
		},
	})
	padWindow.SetCloseIntercept(func() {
		padWindow.Hide()
	})

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		state.mu.Lock()
		previous := state.settings
		state.settings = updated
		if updated.KeepHistory && state.history == nil {
			opened, err := storage.OpenHistory(appName)
			if err != nil {
				log.Printf("open history: %v", err)
			} else {
				state.history = opened
			}
		}
		if !updated.KeepHistory && state.history != nil {
			_ = state.history.Close()
			state.history = nil
		}
		state.mu.Unlock()

		controller.UpdateConfig(updated.CycleConfig())
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
		if updated.AutoCycle != previous.AutoCycle {
			controller.SetAutoCycle(updated.AutoCycle)
			padWindow.SetAutoCycle(updated.AutoCycle)
		}
	})

	activeIcon := resources.MustLogo("mouse_active.png")
	idleIcon := resources.MustLogo("mouse_idle.png")

	var trayManager *tray.Manager
	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnShowPad: func() {
			padWindow.Show()
		},
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnStartCycle: func() {
			controller.StartCycle()
		},
		OnStopCycle: func() {
			controller.StopCycle()
			padWindow.SetAutoCycle(false)
		},
		OnToggleAuto: func() {
			enabled := !controller.AutoCycle()
			controller.SetAutoCycle(enabled)
			padWindow.SetAutoCycle(enabled)
			trayManager.SetAutoCycle(enabled)
		},
		OnQuit: func() {
			controller.Close()
			if _, history := state.current(); history != nil {
				_ = history.Close()
			}
			fyneApp.Quit()
		},
	})

	desktopApp.SetSystemTrayIcon(idleIcon)

	events := controller.Subscribe(16)
	go func() {
		for event := range events {
			switch event.Type {
			case cycle.EventPhaseChange:
				if event.Phase == cycle.PhaseProhibiting {
					recordWindow(controller, state, padWindow)
				}
				fyne.Do(func() {
					applyPhase(event, padWindow, trayManager, desktopApp, activeIcon, idleIcon)
				})
			case cycle.EventClick:
				fyne.Do(func() {
					padWindow.SetCount(event.Count)
				})
			case cycle.EventResult:
				fyne.Do(func() {
					padWindow.SetCount(event.Count)
					padWindow.SetOutcome(event.Outcome)
				})
			case cycle.EventProgress:
				fyne.Do(func() {
					padWindow.SetRemaining(event.Remaining)
					trayManager.SetStatus(fmt.Sprintf("%s, %s left", event.Phase, formatRemaining(event.Remaining)))
				})
			}
		}
	}()

	if settings.AutoCycle {
		controller.SetAutoCycle(true)
		padWindow.SetAutoCycle(true)
		trayManager.SetAutoCycle(true)
	}

	padWindow.Show()
	fyneApp.Run()
}

// recordWindow runs when an allowing window has just closed: it appends the
// outcome to the history and, when configured, stops auto-cycling after a
// failed window. The prohibiting phase still runs its full duration either
// way.
func recordWindow(controller *cycle.Controller, state *appState, padWindow *clickpad.Window) {
	snapshot := controller.Snapshot()
	if snapshot.LastOutcome == nil {
		return
	}
	outcome := *snapshot.LastOutcome
	settings, history := state.current()

	if settings.StopOnError && outcome.Kind != cycle.ResultSuccess && controller.AutoCycle() {
		controller.SetAutoCycle(false)
		fyne.Do(func() {
			padWindow.SetAutoCycle(false)
		})
	}

	if history == nil {
		return
	}
	entry := storage.HistoryEntry{
		Kind:            outcome.Kind,
		ClickCount:      outcome.Count,
		AllowSeconds:    int(settings.AllowDuration / time.Second),
		ProhibitSeconds: int(settings.ProhibitDuration / time.Second),
		RecordedAt:      outcome.At,
	}
	if _, err := history.Append(entry); err != nil {
		log.Printf("append history: %v", err)
		return
	}

	recent, err := history.Recent(historyLines)
	if err != nil {
		log.Printf("read history: %v", err)
		return
	}
	lines := make([]string, 0, len(recent))
	for _, item := range recent {
		result := cycle.Outcome{Kind: item.Kind, Count: item.ClickCount, At: item.RecordedAt}
		lines = append(lines, fmt.Sprintf("%s  %s",
			item.RecordedAt.Local().Format("15:04:05"), clickpad.FormatOutcome(&result)))
	}
	fyne.Do(func() {
		padWindow.SetHistory(lines)
	})
}

func applyPhase(event cycle.Event, padWindow *clickpad.Window, trayManager *tray.Manager, desktopApp desktop.App, activeIcon, idleIcon fyne.Resource) {
	padWindow.SetPhase(event.Phase)
	padWindow.SetRemaining(event.Remaining)
	switch event.Phase {
	case cycle.PhaseIdle:
		trayManager.SetRunning(false)
		trayManager.SetStatus("idle")
		desktopApp.SetSystemTrayIcon(idleIcon)
	case cycle.PhaseAllowing:
		padWindow.SetCount(0)
		padWindow.SetOutcome(nil)
		trayManager.SetRunning(true)
		trayManager.SetStatus("waiting for a click")
		desktopApp.SetSystemTrayIcon(activeIcon)
	case cycle.PhaseProhibiting:
		trayManager.SetRunning(true)
		trayManager.SetStatus("rest window")
	}
}

func formatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%.1fs", remaining.Seconds())
}
