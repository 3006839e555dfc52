package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/cubesphere/engine/collider"
	"github.com/Carmen-Shannon/cubesphere/engine/cubesphere"
)

// MorphDriver computes the morph ratio for a tick.
//
// Parameters:
//   - elapsed: seconds since the object's first update, including this tick
//   - deltaTime: seconds since the previous tick
//   - current: the ratio currently set on the cube sphere
//
// Returns:
//   - float32: the ratio to apply
type MorphDriver func(elapsed, deltaTime, current float32) float32

type gameObject struct {
	id         uint64
	enabled    atomic.Bool
	name       string
	cubeSphere cubesphere.CubeSphere
	collider   collider.Collider
	driver     MorphDriver
	elapsed    float32
}

// GameObject defines the interface for a scene entity that owns a morphing cube sphere.
// Update is the per-tick hook: it applies the optional MorphDriver and rewrites the mesh positions.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns the object's display name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether this object is updated each tick.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is updated each tick.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// CubeSphere returns the morphing mesh component, or nil if none is attached.
	//
	// Returns:
	//   - cubesphere.CubeSphere: the component or nil
	CubeSphere() cubesphere.CubeSphere

	// SetCubeSphere attaches a morphing mesh component.
	//
	// Parameters:
	//   - cs: the component to attach
	SetCubeSphere(cs cubesphere.CubeSphere)

	// Collider returns the collision shape registered for this object, or nil.
	//
	// Returns:
	//   - collider.Collider: the collider or nil
	Collider() collider.Collider

	// SetCollider stores the collision shape registered for this object.
	//
	// Parameters:
	//   - c: the collider
	SetCollider(c collider.Collider)

	// SetMorphDriver sets the function that picks the morph ratio every tick. Pass nil to leave the
	// ratio under external control.
	//
	// Parameters:
	//   - driver: the driver or nil
	SetMorphDriver(driver MorphDriver)

	// Update advances the object by one tick. Disabled objects and objects without a cube sphere are skipped.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick
	Update(deltaTime float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects are enabled unless WithEnabled(false) is passed.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) CubeSphere() cubesphere.CubeSphere {
	return g.cubeSphere
}

func (g *gameObject) SetCubeSphere(cs cubesphere.CubeSphere) {
	g.cubeSphere = cs
}

func (g *gameObject) Collider() collider.Collider {
	return g.collider
}

func (g *gameObject) SetCollider(c collider.Collider) {
	g.collider = c
}

func (g *gameObject) SetMorphDriver(driver MorphDriver) {
	g.driver = driver
}

func (g *gameObject) Update(deltaTime float32) {
	if !g.Enabled() || g.cubeSphere == nil {
		return
	}
	g.elapsed += deltaTime
	if g.driver != nil {
		g.cubeSphere.SetMorphRatio(g.driver(g.elapsed, deltaTime, g.cubeSphere.MorphRatio()))
	}
	g.cubeSphere.RecomputeVertices()
}
