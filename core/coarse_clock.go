package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// CoarseClockInterval is how often the cached wall clock is refreshed
const CoarseClockInterval = time.Millisecond

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that refreshes the
// cached wall clock. It is safe to call multiple times; the goroutine is
// started exactly once and runs for the lifetime of the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(CoarseClockInterval)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time, or time.Now when the
// clock has not been started.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}
