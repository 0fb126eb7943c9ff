package cycle

import "time"

// Phase represents the current Controller mode.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseAllowing    Phase = "allowing"
	PhaseProhibiting Phase = "prohibiting"
)

// ResultKind classifies a completed allowing window.
type ResultKind string

const (
	ResultSuccess        ResultKind = "success"
	ResultNoClick        ResultKind = "no_click"
	ResultMultipleClicks ResultKind = "multiple_clicks"
)

// Outcome is the classified result of one allowing window.
type Outcome struct {
	Kind  ResultKind
	Count int
	At    time.Time
}

// OutcomeFromCount maps a final click count to its classification.
func OutcomeFromCount(count int, at time.Time) Outcome {
	switch {
	case count == 0:
		return Outcome{Kind: ResultNoClick, At: at}
	case count == 1:
		return Outcome{Kind: ResultSuccess, Count: 1, At: at}
	default:
		return Outcome{Kind: ResultMultipleClicks, Count: count, At: at}
	}
}

// EventType defines the type of Controller event.
type EventType string

const (
	EventPhaseChange EventType = "phase_change"
	EventClick       EventType = "click"
	EventResult      EventType = "result"
	EventProgress    EventType = "progress"
)

// Event represents a Controller update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Count     int
	Outcome   *Outcome
	Remaining time.Duration
	At        time.Time
}

// Snapshot is the read-only state exposed to collaborators.
type Snapshot struct {
	Phase       Phase
	ClickCount  int
	LastOutcome *Outcome
	AutoCycle   bool
}
