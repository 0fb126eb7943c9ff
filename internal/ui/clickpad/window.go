// Package clickpad implements the main MouseCheck window: a large click
// target plus the cycle control surface. It renders controller state and
// forwards taps; all cycle semantics live in the core controller.
package clickpad

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/vdulnev/MouseCheckMacOs/internal/core/cycle"
)

// Callbacks defines click pad action handlers.
type Callbacks struct {
	OnClick       func()
	OnStart       func()
	OnStop        func()
	OnAutoCycle   func(bool)
	OnPreferences func()
}

// Window manages the click pad UI.
type Window struct {
	window       fyne.Window
	pad          *Pad
	phaseLabel   *widget.Label
	countLabel   *widget.Label
	resultLabel  *widget.Label
	timerLabel   *widget.Label
	historyLabel *widget.Label
	autoCheck    *widget.Check
	startButton  *widget.Button
	stopButton   *widget.Button
	callbacks    Callbacks
}

// New creates the click pad window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("MouseCheck")

	pad := NewPad(callbacks.OnClick)

	phaseLabel := widget.NewLabelWithStyle("Idle", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	countLabel := widget.NewLabel("Clicks: 0")
	resultLabel := widget.NewLabel("Result: —")
	timerLabel := widget.NewLabel("--.-s")

	historyLabel := widget.NewLabel("")
	historyLabel.Wrapping = fyne.TextWrapOff

	autoCheck := widget.NewCheck("Auto repeat", func(checked bool) {
		if callbacks.OnAutoCycle != nil {
			callbacks.OnAutoCycle(checked)
		}
	})

	startButton := widget.NewButton("Start", func() {
		if callbacks.OnStart != nil {
			callbacks.OnStart()
		}
	})
	stopButton := widget.NewButton("Stop", func() {
		if callbacks.OnStop != nil {
			callbacks.OnStop()
		}
	})
	prefsButton := widget.NewButton("Settings", func() {
		if callbacks.OnPreferences != nil {
			callbacks.OnPreferences()
		}
	})

	status := container.NewHBox(phaseLabel, layout.NewSpacer(), timerLabel)
	counters := container.NewHBox(countLabel, layout.NewSpacer(), resultLabel)
	controls := container.NewHBox(startButton, stopButton, autoCheck, layout.NewSpacer(), prefsButton)

	content := container.NewBorder(
		container.NewVBox(status, counters),
		container.NewVBox(controls, widget.NewSeparator(), historyLabel),
		nil, nil,
		pad,
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 420))

	return &Window{
		window:       window,
		pad:          pad,
		phaseLabel:   phaseLabel,
		countLabel:   countLabel,
		resultLabel:  resultLabel,
		timerLabel:   timerLabel,
		historyLabel: historyLabel,
		autoCheck:    autoCheck,
		startButton:  startButton,
		stopButton:   stopButton,
		callbacks:    callbacks,
	}
}

// Show displays the click pad window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// SetCloseIntercept forwards to the underlying window.
func (win *Window) SetCloseIntercept(intercept func()) {
	win.window.SetCloseIntercept(intercept)
}

// Hide hides the click pad window.
func (win *Window) Hide() {
	win.window.Hide()
}

// SetPhase updates the phase indicator and pad appearance.
func (win *Window) SetPhase(phase cycle.Phase) {
	switch phase {
	case cycle.PhaseAllowing:
		win.phaseLabel.SetText("Click now")
		win.pad.SetMode(padColorAllow, "click once")
	case cycle.PhaseProhibiting:
		win.phaseLabel.SetText("Do not click")
		win.pad.SetMode(padColorProhibit, "hands off")
	default:
		win.phaseLabel.SetText("Idle")
		win.pad.SetMode(padColorIdle, "press Start")
	}
}

// SetCount updates the click counter.
func (win *Window) SetCount(count int) {
	win.countLabel.SetText(fmt.Sprintf("Clicks: %d", count))
}

// SetOutcome updates the result line. A nil outcome clears it.
func (win *Window) SetOutcome(outcome *cycle.Outcome) {
	win.resultLabel.SetText("Result: " + FormatOutcome(outcome))
}

// SetRemaining updates the countdown.
func (win *Window) SetRemaining(remaining time.Duration) {
	if remaining < 0 {
		remaining = 0
	}
	win.timerLabel.SetText(fmt.Sprintf("%.1fs", remaining.Seconds()))
}

// SetAutoCycle syncs the auto repeat checkbox without firing its callback.
func (win *Window) SetAutoCycle(enabled bool) {
	if win.autoCheck.Checked == enabled {
		return
	}
	onChanged := win.autoCheck.OnChanged
	win.autoCheck.OnChanged = nil
	win.autoCheck.SetChecked(enabled)
	win.autoCheck.OnChanged = onChanged
}

// SetHistory replaces the recent results block.
func (win *Window) SetHistory(lines []string) {
	win.historyLabel.SetText(strings.Join(lines, "\n"))
}

// FormatOutcome renders an outcome for display.
func FormatOutcome(outcome *cycle.Outcome) string {
	if outcome == nil {
		return "—"
	}
	switch outcome.Kind {
	case cycle.ResultSuccess:
		return "OK, single click"
	case cycle.ResultNoClick:
		return "no click registered"
	case cycle.ResultMultipleClicks:
		return fmt.Sprintf("%d clicks registered", outcome.Count)
	default:
		return string(outcome.Kind)
	}
}
