package platform

import (
	"errors"
	"testing"
)

func TestLockPortDeterministic(t *testing.T) {
	first := lockPort("MouseCheck-test")
	second := lockPort("MouseCheck-test")
	if first != second {
		t.Errorf("same name produced different ports: %d vs %d", first, second)
	}
	if first < 41000 || first > 49999 {
		t.Errorf("port %d outside the reserved range", first)
	}
}

func TestAcquireIsExclusive(t *testing.T) {
	const name = "MouseCheck-exclusive-test"

	guard, err := Acquire(name)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer func() {
		if err := guard.Release(); err != nil {
			t.Errorf("release: %v", err)
		}
	}()

	if _, err := Acquire(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second acquire should fail with ErrAlreadyRunning, got %v", err)
	}
}

func TestAcquireAfterRelease(t *testing.T) {
	const name = "MouseCheck-release-test"

	guard, err := Acquire(name)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	again, err := Acquire(name)
	if err != nil {
		t.Fatalf("re-acquire after release: %v", err)
	}
	_ = again.Release()
}
