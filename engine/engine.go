package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/cubesphere/engine/collider"
	"github.com/Carmen-Shannon/cubesphere/engine/game_object"
	"github.com/Carmen-Shannon/cubesphere/engine/profiler"
)

// ErrAlreadyRunning is returned by Run when the tick loop is already active.
var ErrAlreadyRunning = errors.New("engine: already running")

// engine implements the Engine interface.
// Drives registered game objects from a single fixed-rate tick goroutine.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate atomic.Int64 // tick interval as a time.Duration
	tickCallback   func(deltaTime float32)

	mu      sync.RWMutex
	objects map[uint64]game_object.GameObject
	nextID  uint64

	binder collider.Binder
}

// Engine is the main entry point for the engine.
// It runs a headless fixed-rate tick loop that updates every enabled game object once per tick.
type Engine interface {
	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// TickRate returns the current tick interval.
	//
	// Returns:
	//   - time.Duration: the time between ticks
	TickRate() time.Duration

	// SetTickCallback registers the function called each engine tick before objects are updated.
	// Use this for game logic such as steering morph ratios by hand.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Add registers a game object, assigns it a fresh ID and, when it carries a cube sphere but no
	// collider, registers the mesh with the engine's collider binder.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the assigned ID
	//   - error: error if collider registration fails
	Add(obj game_object.GameObject) (uint64, error)

	// Remove drops the object with the given ID and unregisters its collider.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - bool: true if an object was removed
	Remove(id uint64) bool

	// Object returns the object with the given ID, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Object(id uint64) game_object.GameObject

	// Objects returns all registered objects in ascending ID order.
	//
	// Returns:
	//   - []game_object.GameObject: a copy of the registered objects
	Objects() []game_object.GameObject

	// Binder returns the collider registry used by Add.
	//
	// Returns:
	//   - collider.Binder: the binder
	Binder() collider.Binder

	// Step runs a single tick synchronously: the tick callback, then Update on every enabled object.
	//
	// Parameters:
	//   - deltaTime: seconds to advance
	Step(deltaTime float32)

	// Run starts the tick loop and blocks until Quit is called or ctx is done.
	//
	// Parameters:
	//   - ctx: context whose cancellation stops the loop
	//
	// Returns:
	//   - error: ctx.Err() if the context ended the loop, nil after Quit
	Run(ctx context.Context) error

	// Quit signals the tick loop to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Defaults to 60 ticks per second, profiling off and a quiet collider binder.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		profiler:        profiler.NewProfiler(),
		objects:         make(map[uint64]game_object.GameObject),
	}
	e.engineTickRate.Store(int64(time.Second / 60))

	for _, opt := range options {
		opt(e)
	}

	if e.binder == nil {
		e.binder = collider.NewBinder()
	}

	return e
}

func (e *engine) Add(obj game_object.GameObject) (uint64, error) {
	if obj == nil {
		panic("engine: cannot add a nil game object")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID + 1
	if cs := obj.CubeSphere(); cs != nil && obj.Collider() == nil {
		c, err := e.binder.Register(id, cs.Mesh())
		if err != nil {
			return 0, fmt.Errorf("failed to register collider for object %d: %w", id, err)
		}
		obj.SetCollider(c)
	}

	e.nextID = id
	obj.SetID(id)
	e.objects[id] = obj
	return id, nil
}

func (e *engine) Remove(id uint64) bool {
	e.mu.Lock()
	_, ok := e.objects[id]
	delete(e.objects, id)
	e.mu.Unlock()

	if ok {
		e.binder.Unregister(id)
	}
	return ok
}

func (e *engine) Object(id uint64) game_object.GameObject {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.objects[id]
}

func (e *engine) Objects() []game_object.GameObject {
	e.mu.RLock()
	keys := make([]uint64, 0, len(e.objects))
	for k := range e.objects {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	objs := make([]game_object.GameObject, 0, len(keys))
	for _, k := range keys {
		objs = append(objs, e.objects[k])
	}
	e.mu.RUnlock()
	return objs
}

func (e *engine) Binder() collider.Binder {
	return e.binder
}

func (e *engine) Step(deltaTime float32) {
	if e.tickCallback != nil {
		e.tickCallback(deltaTime)
	}

	for _, obj := range e.Objects() {
		if !obj.Enabled() {
			continue
		}
		start := time.Now()
		obj.Update(deltaTime)
		if e.profilingEnabled.Load() {
			e.profiler.ObserveUpdate(time.Since(start))
		}
	}

	if e.profilingEnabled.Load() && e.profiler != nil {
		e.profiler.Tick()
	}
}

func (e *engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	log.Printf("[Engine] running %d objects at %s per tick", len(e.Objects()), e.TickRate())
	return e.handleEngine(ctx)
}

// Quit signals the tick loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal the tick loop to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate tick loop on the calling goroutine.
// Steps all objects at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed or ctx is done.
func (e *engine) handleEngine(ctx context.Context) error {
	ticker := time.NewTicker(e.TickRate())
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.quitChannel:
			return nil
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.Step(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect on the next loop iteration.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)
	e.engineTickRate.Store(int64(newRate))

	if e.running.Load() {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			select {
			case e.tickRateChannel <- newRate:
			default:
			}
		}
	}
}

func (e *engine) TickRate() time.Duration {
	return time.Duration(e.engineTickRate.Load())
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// tickInterval converts a ticks-per-second rate into a ticker interval, defaulting to 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
