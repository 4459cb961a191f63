// Package clock provides wall and in-game time sources
package clock

import (
	"sync"
	"time"
)

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// World is the in-game calendar. It only moves when the game advances it.
type World struct {
	mu  sync.RWMutex
	now time.Time
}

// NewWorld creates a world clock starting at start
func NewWorld(start time.Time) *World {
	return &World{now: start}
}

// Now returns the current in-game date
func (w *World) Now() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.now
}

// Advance moves the world forward. Negative durations are ignored; the
// in-game calendar never runs backwards.
func (w *World) Advance(d time.Duration) time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.now = w.now.Add(d)
	}
	return w.now
}

var _ Clock = (*World)(nil)
