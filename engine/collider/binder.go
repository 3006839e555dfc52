package collider

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/cubesphere/engine/model"
)

// ErrAlreadyRegistered is returned when an owner registers a second collider.
var ErrAlreadyRegistered = errors.New("collider: owner already has a collider")

// binder is the implementation of the Binder interface.
type binder struct {
	mu        *sync.RWMutex
	colliders map[uint64]Collider
	verbose   bool
}

// Binder defines the interface for the registry that turns generated meshes into collision shapes.
// Each owner (usually a game object ID) holds at most one collider. Registration snapshots the
// mesh once; the shape is not updated as the mesh morphs.
//
// A Binder is safe for concurrent use.
type Binder interface {
	// Register builds a MeshCollider for the mesh and stores it under owner.
	//
	// Parameters:
	//   - owner: the identifier the collider is registered under
	//   - m: the mesh to snapshot
	//
	// Returns:
	//   - Collider: the registered collider
	//   - error: ErrAlreadyRegistered, or any error from NewMeshCollider
	Register(owner uint64, m model.Mesh) (Collider, error)

	// Collider returns the collider registered under owner, or nil.
	//
	// Parameters:
	//   - owner: the identifier to look up
	//
	// Returns:
	//   - Collider: the collider or nil
	Collider(owner uint64) Collider

	// Unregister removes the collider registered under owner.
	//
	// Parameters:
	//   - owner: the identifier to remove
	//
	// Returns:
	//   - bool: true if a collider was removed
	Unregister(owner uint64) bool

	// Count returns the number of registered colliders.
	//
	// Returns:
	//   - int: the collider count
	Count() int
}

var _ Binder = &binder{}

// NewBinder creates an empty collider registry.
//
// Parameters:
//   - options: functional options to configure the binder
//
// Returns:
//   - Binder: the new registry
func NewBinder(options ...BinderBuilderOption) Binder {
	b := &binder{
		mu:        &sync.RWMutex{},
		colliders: make(map[uint64]Collider),
	}
	for _, opt := range options {
		opt(b)
	}
	return b
}

func (b *binder) Register(owner uint64, m model.Mesh) (Collider, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.colliders[owner]; ok {
		return nil, fmt.Errorf("owner %d: %w", owner, ErrAlreadyRegistered)
	}
	c, err := NewMeshCollider(m)
	if err != nil {
		return nil, fmt.Errorf("failed to register collider for owner %d: %w", owner, err)
	}
	b.colliders[owner] = c

	if b.verbose {
		log.Printf("[Collider] registered %q for owner %d: triangles=%d radius=%.3f volume=%.3f",
			m.Name(), owner, c.TriangleCount(), c.BoundingRadius(), c.Volume())
	}
	return c, nil
}

func (b *binder) Collider(owner uint64) Collider {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.colliders[owner]
}

func (b *binder) Unregister(owner uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.colliders[owner]; !ok {
		return false
	}
	delete(b.colliders, owner)
	return true
}

func (b *binder) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.colliders)
}

// BinderBuilderOption is a functional option for configuring a Binder.
type BinderBuilderOption func(*binder)

// WithVerbose enables a log line for every registration.
//
// Parameters:
//   - verbose: true to log registrations
//
// Returns:
//   - BinderBuilderOption: option function to apply
func WithVerbose(verbose bool) BinderBuilderOption {
	return func(b *binder) {
		b.verbose = verbose
	}
}
