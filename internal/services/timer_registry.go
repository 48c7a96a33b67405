package services

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// TimerIdleTimeout evicts stopwatches whose owner has sent no timer or
	// measure request for this long. An open measure page polls while running.
	TimerIdleTimeout = 2 * time.Hour
	// TimerSweepInterval is how often the registry looks for idle stopwatches.
	TimerSweepInterval = 5 * time.Minute
)

type registeredTimer struct {
	stopwatch  *Stopwatch
	lastAccess time.Time
}

// TimerRegistry holds one stopwatch per signed-in user.
type TimerRegistry struct {
	mu     sync.Mutex
	ticks  TickSource
	timers map[uint]*registeredTimer
	closed bool
	now    func() time.Time
}

func NewTimerRegistry(ticks TickSource) *TimerRegistry {
	return &TimerRegistry{
		ticks:  ticks,
		timers: make(map[uint]*registeredTimer),
		now:    time.Now,
	}
}

// ForUser returns the user's stopwatch and marks it as used. After Close it
// hands out a closed stopwatch that never starts.
func (registry *TimerRegistry) ForUser(userID uint) *Stopwatch {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if registry.closed {
		stopwatch := NewStopwatch(registry.ticks)
		stopwatch.Close()
		return stopwatch
	}
	if entry, ok := registry.timers[userID]; ok {
		entry.lastAccess = registry.now()
		return entry.stopwatch
	}
	entry := &registeredTimer{stopwatch: NewStopwatch(registry.ticks), lastAccess: registry.now()}
	registry.timers[userID] = entry
	return entry.stopwatch
}

// Discard stops and forgets the user's stopwatch.
func (registry *TimerRegistry) Discard(userID uint) {
	registry.mu.Lock()
	entry, ok := registry.timers[userID]
	delete(registry.timers, userID)
	registry.mu.Unlock()

	if ok {
		entry.stopwatch.Reset()
	}
}

func (registry *TimerRegistry) Running() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	count := 0
	for _, entry := range registry.timers {
		if entry.stopwatch.Snapshot().Running {
			count++
		}
	}
	return count
}

// EvictIdle discards every stopwatch not used for longer than idle and returns
// how many it dropped.
func (registry *TimerRegistry) EvictIdle(idle time.Duration) int {
	registry.mu.Lock()
	cutoff := registry.now().Add(-idle)
	evicted := make([]*Stopwatch, 0)
	for userID, entry := range registry.timers {
		if entry.lastAccess.Before(cutoff) {
			evicted = append(evicted, entry.stopwatch)
			delete(registry.timers, userID)
		}
	}
	registry.mu.Unlock()

	for _, stopwatch := range evicted {
		stopwatch.Close()
	}
	return len(evicted)
}

// RunEviction sweeps idle stopwatches every interval until ctx is done.
func (registry *TimerRegistry) RunEviction(ctx context.Context, interval time.Duration, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := registry.EvictIdle(idle); evicted > 0 {
				log.WithField("evicted", evicted).Info("idle timers evicted")
			}
		}
	}
}

// Close stops every tick goroutine. Stopwatches already handed out can no longer start.
func (registry *TimerRegistry) Close() {
	registry.mu.Lock()
	timers := registry.timers
	registry.timers = make(map[uint]*registeredTimer)
	registry.closed = true
	registry.mu.Unlock()

	for _, entry := range timers {
		entry.stopwatch.Close()
	}
}
