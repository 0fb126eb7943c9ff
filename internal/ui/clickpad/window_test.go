package clickpad

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/vdulnev/MouseCheckMacOs/internal/core/cycle"
)

func TestPadForwardsTaps(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	taps := 0
	win := New(app, Callbacks{OnClick: func() { taps++ }})

	test.Tap(win.pad)
	test.Tap(win.pad)
	if taps != 2 {
		t.Errorf("expected 2 forwarded taps, got %d", taps)
	}
}

func TestControlsFireCallbacks(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var started, stopped bool
	var autoValue *bool
	win := New(app, Callbacks{
		OnStart:     func() { started = true },
		OnStop:      func() { stopped = true },
		OnAutoCycle: func(enabled bool) { autoValue = &enabled },
	})

	test.Tap(win.startButton)
	if !started {
		t.Error("start button did not fire")
	}
	test.Tap(win.stopButton)
	if !stopped {
		t.Error("stop button did not fire")
	}

	win.autoCheck.SetChecked(true)
	if autoValue == nil || !*autoValue {
		t.Error("auto-cycle checkbox did not fire")
	}
}

func TestSetAutoCycleDoesNotFireCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	fired := 0
	win := New(app, Callbacks{OnAutoCycle: func(bool) { fired++ }})

	win.SetAutoCycle(true)
	win.SetAutoCycle(true)
	if fired != 0 {
		t.Errorf("programmatic sync fired the callback %d times", fired)
	}
	if !win.autoCheck.Checked {
		t.Error("checkbox state was not updated")
	}
}

func TestSetPhaseUpdatesLabels(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	win := New(app, Callbacks{})

	win.SetPhase(cycle.PhaseAllowing)
	if win.phaseLabel.Text != "Click now" {
		t.Errorf("allowing label: %q", win.phaseLabel.Text)
	}
	win.SetPhase(cycle.PhaseProhibiting)
	if win.phaseLabel.Text != "Do not click" {
		t.Errorf("prohibiting label: %q", win.phaseLabel.Text)
	}
	win.SetPhase(cycle.PhaseIdle)
	if win.phaseLabel.Text != "Idle" {
		t.Errorf("idle label: %q", win.phaseLabel.Text)
	}
}

func TestSetRemainingClampsNegative(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	win := New(app, Callbacks{})
	win.SetRemaining(-time.Second)
	if win.timerLabel.Text != "0.0s" {
		t.Errorf("negative remaining should clamp to zero, got %q", win.timerLabel.Text)
	}
}

func TestFormatOutcome(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name    string
		outcome *cycle.Outcome
		want    string
	}{
		{"absent", nil, "—"},
		{"success", &cycle.Outcome{Kind: cycle.ResultSuccess, Count: 1, At: now}, "OK, single click"},
		{"no click", &cycle.Outcome{Kind: cycle.ResultNoClick, At: now}, "no click registered"},
		{"multiple", &cycle.Outcome{Kind: cycle.ResultMultipleClicks, Count: 3, At: now}, "3 clicks registered"},
	}
	for _, tc := range cases {
		if got := FormatOutcome(tc.outcome); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
