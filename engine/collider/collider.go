package collider

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/Carmen-Shannon/cubesphere/engine/model"
)

var (
	// ErrNilMesh is returned when a collider is requested for a nil mesh.
	ErrNilMesh = errors.New("collider: mesh is nil")

	// ErrEmptyMesh is returned when the mesh has no vertices or no triangles.
	ErrEmptyMesh = errors.New("collider: mesh has no triangles")

	// ErrIndexOutOfRange is returned when a triangle references a vertex the mesh does not have.
	ErrIndexOutOfRange = errors.New("collider: triangle index out of range")
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the edge lengths of the box.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside or on the box.
func (b Bounds) Contains(p mgl32.Vec3) bool {
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] || p[k] > b.Max[k] {
			return false
		}
	}
	return true
}

// meshCollider is the implementation of the Collider interface.
type meshCollider struct {
	mesh      model.Mesh
	revision  uint64
	vertices  []mgl32.Vec3
	triangles []uint32

	bounds         Bounds
	boundingRadius float32
	surfaceArea    float64
	volume         float64
}

// Collider defines the interface for a static triangle-mesh collision shape.
// The shape is a snapshot of the mesh taken when the collider was created (or last refreshed);
// later writes to the mesh's position buffer do not move it.
type Collider interface {
	// Mesh returns the mesh the collider was built from.
	//
	// Returns:
	//   - model.Mesh: the source mesh
	Mesh() model.Mesh

	// Vertices returns the snapshotted vertex positions.
	//
	// Returns:
	//   - []mgl32.Vec3: the collision vertices
	Vertices() []mgl32.Vec3

	// Triangles returns the snapshotted triangle indices, all submeshes concatenated.
	//
	// Returns:
	//   - []uint32: the collision triangles, three indices each
	Triangles() []uint32

	// TriangleCount returns the number of collision triangles.
	//
	// Returns:
	//   - int: the triangle count
	TriangleCount() int

	// Bounds returns the axis-aligned bounding box of the snapshot.
	//
	// Returns:
	//   - Bounds: the bounding box
	Bounds() Bounds

	// BoundingRadius returns the largest vertex distance from the origin.
	//
	// Returns:
	//   - float32: the bounding sphere radius
	BoundingRadius() float32

	// SurfaceArea returns the total area of the collision triangles.
	//
	// Returns:
	//   - float64: the surface area
	SurfaceArea() float64

	// Volume returns the signed volume enclosed by the triangles. It is positive for a closed
	// surface whose triangles face outward.
	//
	// Returns:
	//   - float64: the enclosed volume
	Volume() float64

	// Stale reports whether the mesh positions were rewritten after the snapshot was taken.
	//
	// Returns:
	//   - bool: true if the snapshot no longer matches the mesh
	Stale() bool

	// Refresh re-snapshots the mesh and recomputes every derived property.
	//
	// Returns:
	//   - error: error if the mesh is no longer a valid collision shape
	Refresh() error
}

var _ Collider = &meshCollider{}

// NewMeshCollider snapshots the mesh's current positions and triangles into a static collision shape.
//
// Parameters:
//   - m: the mesh to snapshot
//
// Returns:
//   - Collider: the collider
//   - error: ErrNilMesh, ErrEmptyMesh or ErrIndexOutOfRange if the mesh cannot be used
func NewMeshCollider(m model.Mesh) (Collider, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	c := &meshCollider{mesh: m}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *meshCollider) Mesh() model.Mesh {
	return c.mesh
}

func (c *meshCollider) Vertices() []mgl32.Vec3 {
	return c.vertices
}

func (c *meshCollider) Triangles() []uint32 {
	return c.triangles
}

func (c *meshCollider) TriangleCount() int {
	return len(c.triangles) / 3
}

func (c *meshCollider) Bounds() Bounds {
	return c.bounds
}

func (c *meshCollider) BoundingRadius() float32 {
	return c.boundingRadius
}

func (c *meshCollider) SurfaceArea() float64 {
	return c.surfaceArea
}

func (c *meshCollider) Volume() float64 {
	return c.volume
}

func (c *meshCollider) Stale() bool {
	return c.mesh.Revision() != c.revision
}

func (c *meshCollider) Refresh() error {
	positions := c.mesh.Positions()
	triangles := c.mesh.Indices()
	if len(positions) == 0 || len(triangles) < 3 {
		return fmt.Errorf("mesh %q: %w", c.mesh.Name(), ErrEmptyMesh)
	}
	for i, idx := range triangles {
		if int(idx) >= len(positions) {
			return fmt.Errorf("mesh %q index %d -> vertex %d of %d: %w", c.mesh.Name(), i, idx, len(positions), ErrIndexOutOfRange)
		}
	}

	c.vertices = append(c.vertices[:0], positions...)
	c.triangles = triangles[:len(triangles)/3*3]
	c.revision = c.mesh.Revision()
	c.computeProperties()
	return nil
}

// computeProperties derives the bounds and mass properties. Area and volume are accumulated in
// float64 since they sum many small per-triangle terms.
func (c *meshCollider) computeProperties() {
	b := Bounds{
		Min: mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
	var maxSq float32
	for _, v := range c.vertices {
		for k := 0; k < 3; k++ {
			b.Min[k] = min(b.Min[k], v[k])
			b.Max[k] = max(b.Max[k], v[k])
		}
		maxSq = max(maxSq, v.Dot(v))
	}
	c.bounds = b
	c.boundingRadius = float32(math.Sqrt(float64(maxSq)))

	var area, volume float64
	for i := 0; i < len(c.triangles); i += 3 {
		p0 := toR3(c.vertices[c.triangles[i]])
		p1 := toR3(c.vertices[c.triangles[i+1]])
		p2 := toR3(c.vertices[c.triangles[i+2]])

		area += r3.Norm(r3.Cross(r3.Sub(p1, p0), r3.Sub(p2, p0))) / 2
		volume += r3.Dot(p0, r3.Cross(p1, p2)) / 6
	}
	c.surfaceArea = area
	c.volume = volume
}

func toR3(v mgl32.Vec3) r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
