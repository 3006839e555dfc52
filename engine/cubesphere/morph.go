package cubesphere

import (
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/cubesphere/common"
)

// DefaultParallelThreshold is the vertex count below which the parallel morpher runs serially.
const DefaultParallelThreshold = 4096

// Morpher blends cube and sphere positions into a destination buffer.
type Morpher interface {
	// Morph writes Lerp3(cube[i], sphere[i], ratio) into dst[i] for every index shared by all three slices.
	// The ratio is not clamped.
	//
	// Parameters:
	//   - dst: the live position buffer to write
	//   - cube: the cube positions (read only)
	//   - sphere: the sphere positions (read only)
	//   - ratio: 0 for the cube, 1 for the sphere
	Morph(dst, cube, sphere []mgl32.Vec3, ratio float32)
}

// Morph is the serial Morpher. It is what a CubeSphere uses unless configured otherwise.
//
// Parameters:
//   - dst: the live position buffer to write
//   - cube: the cube positions (read only)
//   - sphere: the sphere positions (read only)
//   - ratio: 0 for the cube, 1 for the sphere
func Morph(dst, cube, sphere []mgl32.Vec3, ratio float32) {
	morphRange(dst, cube, sphere, ratio, 0, sharedLen(dst, cube, sphere))
}

// MorphFunc adapts a plain function to the Morpher interface.
type MorphFunc func(dst, cube, sphere []mgl32.Vec3, ratio float32)

// Morph calls f.
func (f MorphFunc) Morph(dst, cube, sphere []mgl32.Vec3, ratio float32) {
	f(dst, cube, sphere, ratio)
}

func morphRange(dst, cube, sphere []mgl32.Vec3, ratio float32, lo, hi int) {
	for i := lo; i < hi; i++ {
		dst[i] = common.Lerp3(cube[i], sphere[i], ratio)
	}
}

func sharedLen(dst, cube, sphere []mgl32.Vec3) int {
	return min(len(dst), len(cube), len(sphere))
}

// ParallelMorpher is a Morpher backed by a worker pool. Close must be called once the morpher is
// no longer used to release its workers.
type ParallelMorpher interface {
	Morpher
	io.Closer
}

// parallelMorpher splits the vertex range into chunks handled by a reusable worker pool.
type parallelMorpher struct {
	pool      worker.DynamicWorkerPool
	workers   int
	threshold int

	closeOnce sync.Once
	closed    bool
}

var _ ParallelMorpher = &parallelMorpher{}

// NewParallelMorpher creates a Morpher that fans the per-vertex blend out over a worker pool.
// Workers live until Close is called. Every call blocks until all of its chunks are written, so
// callers keep synchronous semantics.
//
// Parameters:
//   - options: functional options to configure the morpher
//
// Returns:
//   - ParallelMorpher: the parallel morpher
func NewParallelMorpher(options ...ParallelMorpherOption) ParallelMorpher {
	p := &parallelMorpher{
		workers:   max(runtime.NumCPU()-1, 1),
		threshold: DefaultParallelThreshold,
	}
	for _, opt := range options {
		opt(p)
	}
	p.pool = worker.NewDynamicWorkerPool(p.workers, 256, 1*time.Second)
	return p
}

func (p *parallelMorpher) Morph(dst, cube, sphere []mgl32.Vec3, ratio float32) {
	n := sharedLen(dst, cube, sphere)
	if p.closed || n < p.threshold || p.workers <= 1 {
		morphRange(dst, cube, sphere, ratio, 0, n)
		return
	}

	// The pool's own Wait blocks until workers idle out, so a WaitGroup is the per-call barrier.
	var wg sync.WaitGroup
	chunk := (n + p.workers - 1) / p.workers
	for id, lo := 0, 0; lo < n; id, lo = id+1, lo+chunk {
		start, end := lo, min(lo+chunk, n)
		wg.Add(1)
		p.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				morphRange(dst, cube, sphere, ratio, start, end)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// Close stops every pool worker and blocks until they have exited. Later Morph calls run serially.
// Safe to call multiple times.
//
// Returns:
//   - error: always nil
func (p *parallelMorpher) Close() error {
	p.closeOnce.Do(func() {
		p.closed = true

		// Pool workers share one stop channel and discard IDs that are not theirs, so Stop alone
		// can leave workers running. Each exit task ends exactly one worker goroutine.
		var wg sync.WaitGroup
		wg.Add(p.workers)
		for id := range p.workers {
			p.pool.SubmitTask(worker.Task{
				ID: id,
				Do: func() (any, error) {
					defer wg.Done()
					runtime.Goexit()
					return nil, nil
				},
			})
		}
		wg.Wait()
		p.pool.Stop()
	})
	return nil
}

// ParallelMorpherOption is a functional option for configuring a parallel Morpher.
type ParallelMorpherOption func(*parallelMorpher)

// WithMorphWorkers sets the number of pool workers and therefore the number of chunks per call.
// Values < 1 are treated as 1, which makes the morpher serial.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - ParallelMorpherOption: option function to apply
func WithMorphWorkers(workers int) ParallelMorpherOption {
	return func(p *parallelMorpher) {
		p.workers = max(workers, 1)
	}
}

// WithParallelThreshold sets the vertex count below which the morph runs on the calling goroutine.
//
// Parameters:
//   - threshold: the minimum vertex count for parallel execution
//
// Returns:
//   - ParallelMorpherOption: option function to apply
func WithParallelThreshold(threshold int) ParallelMorpherOption {
	return func(p *parallelMorpher) {
		p.threshold = threshold
	}
}
