package services

import (
	"sync"
	"time"

	"github.com/terraincognita07/myfit/internal/models"
)

const TickInterval = 10 * time.Millisecond

type TimerStatus string

const (
	TimerIdle    TimerStatus = "idle"
	TimerRunning TimerStatus = "running"
	TimerPaused  TimerStatus = "paused"
)

// TickSource starts a repeating tick and returns its channel and a stop func.
type TickSource func(interval time.Duration) (<-chan time.Time, func())

func SystemTickSource(interval time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}

type TimerSnapshot struct {
	ElapsedMilliseconds int64       `json:"elapsed_ms"`
	Elapsed             string      `json:"elapsed"`
	Status              TimerStatus `json:"status"`
	Running             bool        `json:"running"`
	Exercise            string      `json:"exercise"`
	MET                 float64     `json:"met"`
	Calories            int         `json:"calories"`
}

// Stopwatch is a session timer. While running, every tick adds TickInterval to
// the elapsed time; nothing else changes it except Reset.
type Stopwatch struct {
	mu         sync.Mutex
	elapsed    int64
	running    bool
	exercise   models.ExerciseType
	ticks      TickSource
	generation uint64
	release    func()
	closed     bool
}

func NewStopwatch(ticks TickSource) *Stopwatch {
	if ticks == nil {
		ticks = SystemTickSource
	}
	return &Stopwatch{
		exercise: models.DefaultExerciseType(),
		ticks:    ticks,
	}
}

// Start acquires a tick source. It reports false when already running or closed.
func (stopwatch *Stopwatch) Start() bool {
	stopwatch.mu.Lock()
	defer stopwatch.mu.Unlock()

	if stopwatch.running || stopwatch.closed {
		return false
	}

	channel, stopTicks := stopwatch.ticks(TickInterval)
	quit := make(chan struct{})
	done := make(chan struct{})
	generation := stopwatch.generation

	stopwatch.running = true
	stopwatch.release = func() {
		close(quit)
		stopTicks()
		<-done
	}

	go func() {
		defer close(done)
		for {
			select {
			case <-quit:
				return
			case _, ok := <-channel:
				if !ok {
					return
				}
				stopwatch.applyTick(generation)
			}
		}
	}()
	return true
}

// Stop pauses the stopwatch, keeping the elapsed time.
func (stopwatch *Stopwatch) Stop() bool {
	stopwatch.mu.Lock()
	if !stopwatch.running {
		stopwatch.mu.Unlock()
		return false
	}
	release := stopwatch.detachLocked()
	stopwatch.mu.Unlock()

	release()
	return true
}

// Reset returns to idle from any state.
func (stopwatch *Stopwatch) Reset() {
	stopwatch.mu.Lock()
	release := stopwatch.detachLocked()
	stopwatch.elapsed = 0
	stopwatch.mu.Unlock()

	if release != nil {
		release()
	}
}

// Close releases the tick source without touching the elapsed time. A closed
// stopwatch never starts again.
func (stopwatch *Stopwatch) Close() {
	stopwatch.mu.Lock()
	stopwatch.closed = true
	release := stopwatch.detachLocked()
	stopwatch.mu.Unlock()

	if release != nil {
		release()
	}
}

// Tick applies one tick if running.
func (stopwatch *Stopwatch) Tick() {
	stopwatch.mu.Lock()
	defer stopwatch.mu.Unlock()
	if stopwatch.running {
		stopwatch.elapsed += TickInterval.Milliseconds()
	}
}

func (stopwatch *Stopwatch) SelectExercise(key string) bool {
	exercise, ok := models.LookupExerciseType(key)
	stopwatch.mu.Lock()
	stopwatch.exercise = exercise
	stopwatch.mu.Unlock()
	return ok
}

func (stopwatch *Stopwatch) Snapshot() TimerSnapshot {
	stopwatch.mu.Lock()
	defer stopwatch.mu.Unlock()
	return TimerSnapshot{
		ElapsedMilliseconds: stopwatch.elapsed,
		Elapsed:             FormatElapsed(stopwatch.elapsed),
		Status:              stopwatch.statusLocked(),
		Running:             stopwatch.running,
		Exercise:            stopwatch.exercise.Key,
		MET:                 stopwatch.exercise.MET,
		Calories:            EstimateEnergy(stopwatch.elapsed, stopwatch.exercise.MET, DefaultBodyWeightKg),
	}
}

func (stopwatch *Stopwatch) statusLocked() TimerStatus {
	switch {
	case stopwatch.running:
		return TimerRunning
	case stopwatch.elapsed > 0:
		return TimerPaused
	default:
		return TimerIdle
	}
}

// detachLocked marks the stopwatch stopped and hands back the release func for
// the caller to run after unlocking, since the tick goroutine needs the lock to exit.
func (stopwatch *Stopwatch) detachLocked() func() {
	release := stopwatch.release
	stopwatch.release = nil
	stopwatch.running = false
	stopwatch.generation++
	return release
}

func (stopwatch *Stopwatch) applyTick(generation uint64) {
	stopwatch.mu.Lock()
	defer stopwatch.mu.Unlock()
	if stopwatch.running && stopwatch.generation == generation {
		stopwatch.elapsed += TickInterval.Milliseconds()
	}
}
