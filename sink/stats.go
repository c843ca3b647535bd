package sink

import (
	"sync/atomic"

	"github.com/philipp01105/prettylog/core"
)

const levelCount = int(core.AssertLevel) + 1

// Stats tracks sink statistics
type Stats struct {
	processed [levelCount]atomic.Uint64
	failed    [levelCount]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func levelIndex(level core.Level) int {
	if level < core.VerboseLevel {
		return 0
	}
	if int(level) >= levelCount {
		return levelCount - 1
	}
	return int(level)
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	s.processed[levelIndex(level)].Add(1)
}

// IncrementFailed atomically increments the failed counter for a level
func (s *Stats) IncrementFailed(level core.Level) {
	s.failed[levelIndex(level)].Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	return s.processed[levelIndex(level)].Load()
}

// GetFailed returns the failed count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	return s.failed[levelIndex(level)].Load()
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// GetTotalFailed returns the failed count across all levels
func (s *Stats) GetTotalFailed() uint64 {
	var total uint64
	for i := range s.failed {
		total += s.failed[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
		s.failed[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	Failed         map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64, levelCount),
		Failed:    make(map[core.Level]uint64, levelCount),
	}
	for l := core.VerboseLevel; l <= core.AssertLevel; l++ {
		snap.Processed[l] = s.GetProcessed(l)
		snap.Failed[l] = s.GetFailed(l)
		snap.ProcessedTotal += snap.Processed[l]
		snap.FailedTotal += snap.Failed[l]
	}
	return snap
}
