package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// Guard holds the single-instance lock for the lifetime of the process.
// The lock is a deterministic localhost port derived from the app name, so
// a second instance fails to bind and exits early instead of fighting the
// first one over the tray icon.
type Guard struct {
	listener net.Listener
}

// Acquire attempts to take the single-instance lock for appName.
func Acquire(appName string) (*Guard, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", lockPort(appName)))
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &Guard{listener: listener}, nil
}

// Release frees the single-instance lock.
func (guard *Guard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

func lockPort(appName string) int {
	const (
		minPort = 41000
		maxPort = 49999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
