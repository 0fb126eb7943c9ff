package cycle

import (
	"sync"
	"time"

	"github.com/vdulnev/MouseCheckMacOs/internal/core/model"
)

// Config contains runtime options for the Controller.
type Config struct {
	PollInterval time.Duration
}

// Controller is a state machine that alternates an allowing window, during
// which exactly one click is expected, with a prohibiting window, during
// which clicks are ignored. Each completed allowing window is classified
// into an Outcome. All mutable state is owned by the Controller and guarded
// by its mutex; collaborators interact only through the exported operations,
// none of which block.
type Controller struct {
	mu          sync.Mutex
	config      model.CycleConfig
	options     Config
	phase       Phase
	clickCount  int
	lastOutcome *Outcome
	autoCycle   bool
	interrupted bool
	cancel      chan struct{}
	events      []chan Event
	closed      bool
}

// New creates a Controller with the provided configuration.
func New(config model.CycleConfig, options Config) *Controller {
	if options.PollInterval <= 0 {
		options.PollInterval = 100 * time.Millisecond
	}

	return &Controller{
		config:  config.Normalized(),
		options: options,
		phase:   PhaseIdle,
	}
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	if controller.closed {
		close(ch)
	} else {
		controller.events = append(controller.events, ch)
	}
	controller.mu.Unlock()
	return ch
}

// UpdateConfig replaces the phase durations. A phase already in progress
// keeps the duration it started with; the new values take effect when the
// next phase begins.
func (controller *Controller) UpdateConfig(config model.CycleConfig) {
	controller.mu.Lock()
	controller.config = config.Normalized()
	controller.mu.Unlock()
}

// RegisterClick records one qualifying click. Outside the allowing phase the
// click is silently dropped. The second and any later click during a window
// record a MultipleClicks outcome at the time the click arrived and latch
// the window as interrupted; the running phase keeps its full duration.
func (controller *Controller) RegisterClick() {
	controller.mu.Lock()
	if controller.phase != PhaseAllowing {
		controller.mu.Unlock()
		return
	}

	controller.clickCount++
	now := time.Now()
	if controller.clickCount > 1 {
		outcome := OutcomeFromCount(controller.clickCount, now)
		controller.lastOutcome = &outcome
		controller.interrupted = true
		controller.emitLocked(Event{
			Type:    EventResult,
			Phase:   controller.phase,
			Count:   controller.clickCount,
			Outcome: &outcome,
			At:      now,
		})
	} else {
		controller.emitLocked(Event{
			Type:  EventClick,
			Phase: controller.phase,
			Count: controller.clickCount,
			At:    now,
		})
	}
	controller.mu.Unlock()
}

// StartCycle begins a single non-repeating cycle. It has no effect unless
// the controller is idle.
func (controller *Controller) StartCycle() {
	controller.mu.Lock()
	if controller.closed || controller.phase != PhaseIdle {
		controller.mu.Unlock()
		return
	}
	token := controller.beginRunLocked()
	controller.mu.Unlock()

	go controller.run(token)
}

// SetAutoCycle toggles automatic chaining of cycles. Enabling while idle
// starts a cycle immediately; disabling lets an in-flight cycle finish its
// current phases and settle in idle.
func (controller *Controller) SetAutoCycle(enabled bool) {
	controller.mu.Lock()
	controller.autoCycle = enabled
	start := enabled && !controller.closed && controller.phase == PhaseIdle
	var token chan struct{}
	if start {
		token = controller.beginRunLocked()
	}
	controller.mu.Unlock()

	if start {
		go controller.run(token)
	}
}

// StopCycle cancels any in-flight cycle, disables auto-cycling and resets
// the controller to a clean idle state.
func (controller *Controller) StopCycle() {
	controller.mu.Lock()
	if controller.cancel != nil {
		close(controller.cancel)
		controller.cancel = nil
	}
	controller.autoCycle = false
	changed := controller.phase != PhaseIdle
	controller.phase = PhaseIdle
	controller.clickCount = 0
	controller.lastOutcome = nil
	controller.interrupted = false
	if changed {
		controller.emitLocked(Event{Type: EventPhaseChange, Phase: PhaseIdle, At: time.Now()})
	}
	controller.mu.Unlock()
}

// Close stops the controller and closes all observer channels.
func (controller *Controller) Close() {
	controller.StopCycle()

	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Phase returns the current phase.
func (controller *Controller) Phase() Phase {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.phase
}

// AutoCycle reports whether cycles chain automatically.
func (controller *Controller) AutoCycle() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.autoCycle
}

// Snapshot returns a copy of the observable state.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	snapshot := Snapshot{
		Phase:      controller.phase,
		ClickCount: controller.clickCount,
		AutoCycle:  controller.autoCycle,
	}
	if controller.lastOutcome != nil {
		outcome := *controller.lastOutcome
		snapshot.LastOutcome = &outcome
	}
	return snapshot
}

// beginRunLocked supersedes any previous execution task and returns the
// cancel token owned by the new one. The token doubles as a generation
// marker: a task mutates state only while controller.cancel still points at
// its own token.
func (controller *Controller) beginRunLocked() chan struct{} {
	if controller.cancel != nil {
		close(controller.cancel)
	}
	token := make(chan struct{})
	controller.cancel = token
	return token
}

func (controller *Controller) run(token chan struct{}) {
	for {
		allowFor, ok := controller.enterAllowing(token)
		if !ok {
			return
		}
		if !controller.waitPhase(token, allowFor) {
			return
		}
		prohibitFor, ok := controller.closeWindow(token)
		if !ok {
			return
		}
		if !controller.waitPhase(token, prohibitFor) {
			return
		}
		if !controller.finishCycle(token) {
			return
		}
	}
}

func (controller *Controller) enterAllowing(token chan struct{}) (time.Duration, bool) {
	controller.mu.Lock()
	if controller.cancel != token {
		controller.mu.Unlock()
		return 0, false
	}
	controller.clickCount = 0
	controller.lastOutcome = nil
	controller.interrupted = false
	controller.phase = PhaseAllowing
	duration := controller.config.AllowDuration
	controller.emitLocked(Event{
		Type:      EventPhaseChange,
		Phase:     PhaseAllowing,
		Remaining: duration,
		At:        time.Now(),
	})
	controller.mu.Unlock()
	return duration, true
}

// waitPhase sleeps for the full phase duration in poll-interval steps. Each
// step checks the cancel token and publishes the remaining time; a latched
// interrupt never shortens the wait, so every phase honours its configured
// duration.
func (controller *Controller) waitPhase(token chan struct{}, total time.Duration) bool {
	deadline := time.Now().Add(total)
	ticker := time.NewTicker(controller.options.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-token:
			return false
		case now := <-ticker.C:
			remaining := deadline.Sub(now)
			if remaining <= 0 {
				return true
			}
			controller.emitProgress(token, remaining, now)
		}
	}
}

// closeWindow classifies the finished allowing window and enters the
// prohibiting phase. When the interrupt latch is set the outcome was already
// recorded by RegisterClick and must not be overwritten.
func (controller *Controller) closeWindow(token chan struct{}) (time.Duration, bool) {
	controller.mu.Lock()
	if controller.cancel != token {
		controller.mu.Unlock()
		return 0, false
	}

	now := time.Now()
	if !controller.interrupted {
		outcome := OutcomeFromCount(controller.clickCount, now)
		controller.lastOutcome = &outcome
		controller.emitLocked(Event{
			Type:    EventResult,
			Phase:   controller.phase,
			Count:   controller.clickCount,
			Outcome: &outcome,
			At:      now,
		})
	}

	controller.phase = PhaseProhibiting
	duration := controller.config.ProhibitDuration
	controller.emitLocked(Event{
		Type:      EventPhaseChange,
		Phase:     PhaseProhibiting,
		Remaining: duration,
		At:        now,
	})
	controller.mu.Unlock()
	return duration, true
}

// finishCycle either chains into the next cycle or settles in idle, leaving
// the last outcome visible to observers.
func (controller *Controller) finishCycle(token chan struct{}) bool {
	controller.mu.Lock()
	if controller.cancel != token {
		controller.mu.Unlock()
		return false
	}
	if controller.autoCycle && !controller.closed {
		controller.mu.Unlock()
		return true
	}

	controller.cancel = nil
	controller.phase = PhaseIdle
	controller.emitLocked(Event{Type: EventPhaseChange, Phase: PhaseIdle, At: time.Now()})
	controller.mu.Unlock()
	return false
}

func (controller *Controller) emitProgress(token chan struct{}, remaining time.Duration, now time.Time) {
	controller.mu.Lock()
	if controller.cancel == token {
		controller.emitLocked(Event{
			Type:      EventProgress,
			Phase:     controller.phase,
			Count:     controller.clickCount,
			Remaining: remaining,
			At:        now,
		})
	}
	controller.mu.Unlock()
}

func (controller *Controller) emitLocked(event Event) {
	events := append([]chan Event(nil), controller.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
