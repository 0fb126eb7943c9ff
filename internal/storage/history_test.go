package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vdulnev/MouseCheckMacOs/internal/core/cycle"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	history, err := OpenHistoryFile(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() {
		if err := history.Close(); err != nil {
			t.Errorf("close history: %v", err)
		}
	})
	return history
}

func TestHistoryAppendAndRecent(t *testing.T) {
	history := openTestHistory(t)

	entries := []HistoryEntry{
		{Kind: cycle.ResultSuccess, ClickCount: 1, AllowSeconds: 3, ProhibitSeconds: 2},
		{Kind: cycle.ResultNoClick, ClickCount: 0, AllowSeconds: 3, ProhibitSeconds: 2},
		{Kind: cycle.ResultMultipleClicks, ClickCount: 4, AllowSeconds: 5, ProhibitSeconds: 2},
	}
	for _, entry := range entries {
		if _, err := history.Append(entry); err != nil {
			t.Fatalf("append %s: %v", entry.Kind, err)
		}
	}

	recent, err := history.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(recent))
	}
	// Newest first.
	if recent[0].Kind != cycle.ResultMultipleClicks {
		t.Errorf("expected multiple_clicks first, got %s", recent[0].Kind)
	}
	if recent[0].ClickCount != 4 {
		t.Errorf("expected click count 4, got %d", recent[0].ClickCount)
	}
	if recent[2].Kind != cycle.ResultSuccess {
		t.Errorf("expected success last, got %s", recent[2].Kind)
	}
	if recent[0].RecordedAt.IsZero() {
		t.Error("recorded_at should be populated on append")
	}
}

func TestHistoryRecentRespectsLimit(t *testing.T) {
	history := openTestHistory(t)

	for i := 0; i < 5; i++ {
		entry := HistoryEntry{
			Kind:            cycle.ResultNoClick,
			AllowSeconds:    3,
			ProhibitSeconds: 2,
			RecordedAt:      time.Now().Add(time.Duration(i) * time.Second),
		}
		if _, err := history.Append(entry); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := history.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 entries, got %d", len(recent))
	}
}

func TestHistoryAppendRejectsEmptyKind(t *testing.T) {
	history := openTestHistory(t)

	if _, err := history.Append(HistoryEntry{}); err == nil {
		t.Error("expected an error for an entry without a kind")
	}
}
