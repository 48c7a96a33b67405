package services

import (
	"sync"
	"testing"
	"time"
)

type manualTicks struct {
	mu       sync.Mutex
	channel  chan time.Time
	acquired int
	released int
}

func newManualTicks() *manualTicks {
	return &manualTicks{channel: make(chan time.Time)}
}

func (ticks *manualTicks) source(time.Duration) (<-chan time.Time, func()) {
	ticks.mu.Lock()
	defer ticks.mu.Unlock()
	ticks.acquired++
	return ticks.channel, func() {
		ticks.mu.Lock()
		ticks.released++
		ticks.mu.Unlock()
	}
}

func (ticks *manualTicks) counts() (int, int) {
	ticks.mu.Lock()
	defer ticks.mu.Unlock()
	return ticks.acquired, ticks.released
}

func waitForElapsed(t *testing.T, stopwatch *Stopwatch, want int64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if stopwatch.Snapshot().ElapsedMilliseconds == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("elapsed = %d, want %d", stopwatch.Snapshot().ElapsedMilliseconds, want)
}

func TestStopwatchCountsTicksWhileRunning(t *testing.T) {
	ticks := newManualTicks()
	stopwatch := NewStopwatch(ticks.source)

	if !stopwatch.Start() {
		t.Fatal("expected first Start to succeed")
	}
	if stopwatch.Start() {
		t.Fatal("expected second Start to report already running")
	}
	for i := 0; i < 3; i++ {
		ticks.channel <- time.Now()
	}
	waitForElapsed(t, stopwatch, 30)

	snapshot := stopwatch.Snapshot()
	if snapshot.Status != TimerRunning || !snapshot.Running {
		t.Fatalf("expected running snapshot, got %+v", snapshot)
	}
	if snapshot.Elapsed != "00:00.03" {
		t.Fatalf("Elapsed = %q, want 00:00.03", snapshot.Elapsed)
	}

	if !stopwatch.Stop() {
		t.Fatal("expected Stop to succeed")
	}
	acquired, released := ticks.counts()
	if acquired != 1 || released != 1 {
		t.Fatalf("tick source acquired=%d released=%d, want 1/1", acquired, released)
	}
}

func TestStopwatchStopKeepsElapsedAndPauses(t *testing.T) {
	stopwatch := NewStopwatch(newManualTicks().source)
	stopwatch.Start()
	stopwatch.Tick()
	stopwatch.Tick()
	stopwatch.Stop()
	stopwatch.Tick()

	snapshot := stopwatch.Snapshot()
	if snapshot.ElapsedMilliseconds != 20 {
		t.Fatalf("elapsed = %d, want 20", snapshot.ElapsedMilliseconds)
	}
	if snapshot.Status != TimerPaused || snapshot.Running {
		t.Fatalf("expected paused snapshot, got %+v", snapshot)
	}
	if stopwatch.Stop() {
		t.Fatal("expected Stop on a paused stopwatch to report false")
	}

	stopwatch.Start()
	stopwatch.Tick()
	if got := stopwatch.Snapshot().ElapsedMilliseconds; got != 30 {
		t.Fatalf("elapsed after resume = %d, want 30", got)
	}
	stopwatch.Close()
}

func TestStopwatchResetFromAnyState(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Stopwatch)
	}{
		{name: "idle", prepare: func(*Stopwatch) {}},
		{name: "running", prepare: func(stopwatch *Stopwatch) {
			stopwatch.Start()
			stopwatch.Tick()
		}},
		{name: "paused", prepare: func(stopwatch *Stopwatch) {
			stopwatch.Start()
			stopwatch.Tick()
			stopwatch.Stop()
		}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ticks := newManualTicks()
			stopwatch := NewStopwatch(ticks.source)
			testCase.prepare(stopwatch)
			stopwatch.Start()
			stopwatch.Reset()

			snapshot := stopwatch.Snapshot()
			if snapshot.ElapsedMilliseconds != 0 || snapshot.Running || snapshot.Status != TimerIdle {
				t.Fatalf("expected idle snapshot after reset, got %+v", snapshot)
			}
			acquired, released := ticks.counts()
			if acquired != released {
				t.Fatalf("tick source leak: acquired=%d released=%d", acquired, released)
			}
		})
	}
}

func TestStopwatchExerciseSelection(t *testing.T) {
	stopwatch := NewStopwatch(newManualTicks().source)

	if got := stopwatch.Snapshot().Exercise; got != "walking_slow" {
		t.Fatalf("default exercise = %q, want walking_slow", got)
	}
	if !stopwatch.SelectExercise("jogging") {
		t.Fatal("expected jogging to be a known exercise")
	}
	if got := stopwatch.Snapshot().MET; got != 7.0 {
		t.Fatalf("MET = %v, want 7.0", got)
	}
	if stopwatch.SelectExercise("skydiving") {
		t.Fatal("expected unknown exercise to report false")
	}
	if got := stopwatch.Snapshot().Exercise; got != "walking_slow" {
		t.Fatalf("unknown exercise fallback = %q, want walking_slow", got)
	}
}

func TestStopwatchCaloriesFollowElapsed(t *testing.T) {
	stopwatch := NewStopwatch(newManualTicks().source)
	stopwatch.SelectExercise("running")
	stopwatch.Start()
	for i := 0; i < 6000; i++ {
		stopwatch.Tick()
	}
	stopwatch.Stop()

	snapshot := stopwatch.Snapshot()
	if snapshot.ElapsedMilliseconds != 60_000 {
		t.Fatalf("elapsed = %d, want 60000", snapshot.ElapsedMilliseconds)
	}
	if want := EstimateEnergy(60_000, 9.0, DefaultBodyWeightKg); snapshot.Calories != want {
		t.Fatalf("calories = %d, want %d", snapshot.Calories, want)
	}
}

func TestTimerRegistryKeepsOneStopwatchPerUser(t *testing.T) {
	registry := NewTimerRegistry(newManualTicks().source)
	defer registry.Close()

	first := registry.ForUser(1)
	if registry.ForUser(1) != first {
		t.Fatal("expected the same stopwatch for the same user")
	}
	if registry.ForUser(2) == first {
		t.Fatal("expected distinct stopwatches per user")
	}

	first.Start()
	if got := registry.Running(); got != 1 {
		t.Fatalf("Running = %d, want 1", got)
	}

	registry.Discard(1)
	if first.Snapshot().Running {
		t.Fatal("expected discarded stopwatch to stop")
	}
	if registry.ForUser(1) == first {
		t.Fatal("expected a fresh stopwatch after discard")
	}
}

func TestTimerRegistryCloseReleasesTickers(t *testing.T) {
	ticks := newManualTicks()
	registry := NewTimerRegistry(ticks.source)

	registry.ForUser(1).Start()
	registry.ForUser(2).Start()
	registry.Close()

	acquired, released := ticks.counts()
	if acquired != 2 || released != 2 {
		t.Fatalf("acquired=%d released=%d, want 2/2", acquired, released)
	}
	if got := registry.Running(); got != 0 {
		t.Fatalf("Running after close = %d, want 0", got)
	}
}

func TestTimerRegistryClosedHandsOutInertStopwatches(t *testing.T) {
	ticks := newManualTicks()
	registry := NewTimerRegistry(ticks.source)

	before := registry.ForUser(1)
	registry.Close()

	if before.Start() {
		t.Fatal("expected a stopwatch handed out before close to refuse to start")
	}
	late := registry.ForUser(2)
	if late.Start() {
		t.Fatal("expected a stopwatch handed out after close to refuse to start")
	}
	if acquired, _ := ticks.counts(); acquired != 0 {
		t.Fatalf("expected no tick source acquired after close, got %d", acquired)
	}
	if got := registry.Running(); got != 0 {
		t.Fatalf("Running after close = %d, want 0", got)
	}
}

func TestTimerRegistryEvictsIdleStopwatches(t *testing.T) {
	ticks := newManualTicks()
	registry := NewTimerRegistry(ticks.source)
	defer registry.Close()

	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }

	orphaned := registry.ForUser(1)
	orphaned.Start()
	active := registry.ForUser(2)
	active.Start()

	now = now.Add(TimerIdleTimeout - time.Minute)
	registry.ForUser(2)
	now = now.Add(2 * time.Minute)

	if evicted := registry.EvictIdle(TimerIdleTimeout); evicted != 1 {
		t.Fatalf("expected one idle stopwatch evicted, got %d", evicted)
	}
	if orphaned.Snapshot().Running {
		t.Fatal("expected evicted stopwatch to stop ticking")
	}
	if !active.Snapshot().Running {
		t.Fatal("expected recently used stopwatch to keep running")
	}
	if registry.ForUser(2) != active {
		t.Fatal("expected recently used stopwatch to stay registered")
	}
	if registry.ForUser(1) == orphaned {
		t.Fatal("expected a fresh stopwatch after eviction")
	}
	if _, released := ticks.counts(); released != 1 {
		t.Fatalf("expected the evicted tick source released, got %d releases", released)
	}
}

func TestStopwatchCloseIsFinal(t *testing.T) {
	ticks := newManualTicks()
	stopwatch := NewStopwatch(ticks.source)

	stopwatch.Start()
	stopwatch.Tick()
	stopwatch.Close()

	if stopwatch.Start() {
		t.Fatal("expected closed stopwatch not to start")
	}
	snapshot := stopwatch.Snapshot()
	if snapshot.Running || snapshot.ElapsedMilliseconds != TickInterval.Milliseconds() {
		t.Fatalf("expected stopped stopwatch keeping elapsed time, got %#v", snapshot)
	}
}
