package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	allowDur    *widget.Entry
	prohibitDur *widget.Entry
	autoCycle   *widget.Check
	stopOnError *widget.Check
	keepHistory *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("MouseCheck Settings")

	allowDur := widget.NewEntry()
	prohibitDur := widget.NewEntry()
	allowDur.SetText(fmt.Sprintf("%d", int(settings.AllowDuration.Seconds())))
	prohibitDur.SetText(fmt.Sprintf("%d", int(settings.ProhibitDuration.Seconds())))

	autoCycle := widget.NewCheck("Repeat cycles automatically", nil)
	autoCycle.SetChecked(settings.AutoCycle)

	stopOnError := widget.NewCheck("Stop cycling after a failed window", nil)
	stopOnError.SetChecked(settings.StopOnError)

	keepHistory := widget.NewCheck("Keep a history of results", nil)
	keepHistory.SetChecked(settings.KeepHistory)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timing", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Click window"), allowDur, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Rest window"), prohibitDur, widget.NewLabel("sec")),
		widget.NewLabelWithStyle("Behaviour", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autoCycle,
		stopOnError,
		keepHistory,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 320))

	prefs := &Window{
		window:      window,
		settings:    settings,
		onSave:      onSave,
		allowDur:    allowDur,
		prohibitDur: prohibitDur,
		autoCycle:   autoCycle,
		stopOnError: stopOnError,
		keepHistory: keepHistory,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.allowDur.SetText(fmt.Sprintf("%d", int(settings.AllowDuration.Seconds())))
	prefs.prohibitDur.SetText(fmt.Sprintf("%d", int(settings.ProhibitDuration.Seconds())))
	prefs.autoCycle.SetChecked(settings.AutoCycle)
	prefs.stopOnError.SetChecked(settings.StopOnError)
	prefs.keepHistory.SetChecked(settings.KeepHistory)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if seconds, ok := parsePositiveInt(prefs.allowDur.Text); ok {
		settings.AllowDuration = time.Duration(seconds) * time.Second
	}
	if seconds, ok := parsePositiveInt(prefs.prohibitDur.Text); ok {
		settings.ProhibitDuration = time.Duration(seconds) * time.Second
	}
	settings.AutoCycle = prefs.autoCycle.Checked
	settings.StopOnError = prefs.stopOnError.Checked
	settings.KeepHistory = prefs.keepHistory.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
