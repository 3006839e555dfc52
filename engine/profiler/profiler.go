package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate, update cost and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	updateCount int
	updateTotal time.Duration
	updateMax   time.Duration

	// Last holds the stats of the most recently logged interval.
	Last Stats
}

// Stats is a summary of one logged profiling interval.
type Stats struct {
	TicksPerSecond float64
	Updates        int
	AverageUpdate  time.Duration
	MaxUpdate      time.Duration
	HeapMB         float64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// ObserveUpdate records the wall time one object update (one morph) took during the current interval.
//
// Parameters:
//   - d: the measured duration
func (p *Profiler) ObserveUpdate(d time.Duration) {
	p.updateCount++
	p.updateTotal += d
	if d > p.updateMax {
		p.updateMax = d
	}
}

// Tick should be called once per engine tick to track tick timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: tick rate, average and max update cost, heap usage, allocation rate, GC count/pause times.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.frameCount) / max(elapsed.Seconds(), 1e-9)

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / max(elapsed.Seconds(), 1e-9)

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	var avgUpdate time.Duration
	if p.updateCount > 0 {
		avgUpdate = p.updateTotal / time.Duration(p.updateCount)
	}

	p.Last = Stats{
		TicksPerSecond: tps,
		Updates:        p.updateCount,
		AverageUpdate:  avgUpdate,
		MaxUpdate:      p.updateMax,
		HeapMB:         allocMB,
	}

	log.Printf("[Profiler] TPS: %.2f | Updates: %d (avg: %s, max: %s) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs)",
		tps, p.updateCount, avgUpdate, p.updateMax, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.updateCount = 0
	p.updateTotal = 0
	p.updateMax = 0
	return true
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often stats are logged.
//
// Parameters:
//   - interval: the logging interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithUpdateInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}
