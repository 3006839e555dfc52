package cubesphere

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/cubesphere/engine/model"
)

// ErrInvalidSubdivision is returned when a CubeSphere is configured with a subdivision below 1.
var ErrInvalidSubdivision = errors.New("cubesphere: subdivision must be at least 1")

// cubeSphere is the implementation of the CubeSphere interface.
type cubeSphere struct {
	name            string
	subdivision     int
	cubeSize        float32
	sphereRadius    float32
	ratio           float32
	lastRatio       float32
	morphed         bool
	alwaysRecompute bool
	morpher         Morpher

	cubeVertices   []mgl32.Vec3
	sphereVertices []mgl32.Vec3
	mesh           model.Mesh
}

// CubeSphere defines the interface for a mesh that morphs between a subdivided cube and a sphere.
// The cube and sphere positions are generated once by NewCubeSphere and share one vertex layout,
// so blending them index by index deforms one shape into the other.
//
// A CubeSphere is driven from a single goroutine: set the ratio, then call RecomputeVertices once
// per tick before the mesh is consumed.
type CubeSphere interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Subdivision returns the grid resolution per cube edge.
	//
	// Returns:
	//   - int: the subdivision
	Subdivision() int

	// CubeSize returns half the edge length of the cube shape.
	//
	// Returns:
	//   - float32: the cube size
	CubeSize() float32

	// SphereRadius returns the radius of the sphere shape.
	//
	// Returns:
	//   - float32: the sphere radius
	SphereRadius() float32

	// MorphRatio returns the current blend factor.
	//
	// Returns:
	//   - float32: 0 for the cube, 1 for the sphere
	MorphRatio() float32

	// SetMorphRatio sets the blend factor used by the next RecomputeVertices.
	// Values outside [0, 1] are accepted and extrapolate past the cube or the sphere.
	//
	// Parameters:
	//   - ratio: the new blend factor
	SetMorphRatio(ratio float32)

	// AdjustMorph adds delta to the current blend factor.
	//
	// Parameters:
	//   - delta: the amount to add
	AdjustMorph(delta float32)

	// RecomputeVertices blends the cube and sphere positions at the current ratio into the mesh's
	// live position buffer. The blend is skipped when the ratio has not changed since the previous
	// call, unless the CubeSphere was built with WithAlwaysRecompute(true).
	//
	// Returns:
	//   - []mgl32.Vec3: the mesh's live position buffer
	RecomputeVertices() []mgl32.Vec3

	// Mesh returns the generated mesh. Its positions are rewritten by RecomputeVertices; normals,
	// colors and submeshes never change.
	//
	// Returns:
	//   - model.Mesh: the mesh
	Mesh() model.Mesh

	// CubeVertices returns the generated cube positions. The slice must not be modified.
	//
	// Returns:
	//   - []mgl32.Vec3: the cube positions
	CubeVertices() []mgl32.Vec3

	// SphereVertices returns the generated sphere positions. The slice must not be modified.
	//
	// Returns:
	//   - []mgl32.Vec3: the sphere positions
	SphereVertices() []mgl32.Vec3

	// TriangleCount returns the number of triangles across all submeshes.
	//
	// Returns:
	//   - int: the triangle count
	TriangleCount() int

	// Close releases the morpher's resources when it holds any, such as the workers of a
	// ParallelMorpher. The mesh stays readable and later recomputes run serially.
	//
	// Returns:
	//   - error: error from the morpher's Close
	Close() error
}

var _ CubeSphere = &cubeSphere{}

// NewCubeSphere generates the cube and sphere vertex sets, the triangle lists and the mesh, then
// blends the mesh positions once at the configured ratio.
//
// Parameters:
//   - options: functional options to configure the generation
//
// Returns:
//   - CubeSphere: the generated cube sphere
//   - error: error wrapping ErrInvalidSubdivision if the subdivision is below 1
func NewCubeSphere(options ...CubeSphereBuilderOption) (CubeSphere, error) {
	cfg := DefaultConfig()
	c := &cubeSphere{
		name:         cfg.Name,
		subdivision:  cfg.Subdivision,
		cubeSize:     cfg.CubeSize,
		sphereRadius: cfg.SphereRadius,
	}
	for _, opt := range options {
		opt(c)
	}

	if c.subdivision < 1 {
		return nil, fmt.Errorf("failed to generate %q with subdivision %d: %w", c.name, c.subdivision, ErrInvalidSubdivision)
	}
	if c.morpher == nil {
		c.morpher = MorphFunc(Morph)
	}

	c.generate()
	c.RecomputeVertices()

	log.Printf("[CubeSphere] generated %q: subdivision=%d vertices=%d triangles=%d submeshes=[%s]",
		c.name, c.subdivision, c.mesh.VertexCount(), c.TriangleCount(), submeshSummary(c.mesh))
	return c, nil
}

// generate runs the one-off generation stages and assembles the mesh.
func (c *cubeSphere) generate() {
	var normals []mgl32.Vec3
	var colors []model.Color32
	c.sphereVertices, normals, colors = SphereVertices(c.subdivision, c.sphereRadius)
	c.cubeVertices = CubeVertices(c.subdivision, c.cubeSize)
	zFacing, xFacing, caps := Triangles(c.subdivision)

	c.mesh = model.NewMesh(
		model.WithName(c.name),
		model.WithPositions(make([]mgl32.Vec3, len(c.sphereVertices))),
		model.WithNormals(normals),
		model.WithColors(colors),
		model.WithSubmesh(model.SubmeshZ, zFacing),
		model.WithSubmesh(model.SubmeshX, xFacing),
		model.WithSubmesh(model.SubmeshY, caps),
	)
}

func (c *cubeSphere) Name() string {
	return c.name
}

func (c *cubeSphere) Subdivision() int {
	return c.subdivision
}

func (c *cubeSphere) CubeSize() float32 {
	return c.cubeSize
}

func (c *cubeSphere) SphereRadius() float32 {
	return c.sphereRadius
}

func (c *cubeSphere) MorphRatio() float32 {
	return c.ratio
}

func (c *cubeSphere) SetMorphRatio(ratio float32) {
	c.ratio = ratio
}

func (c *cubeSphere) AdjustMorph(delta float32) {
	c.ratio += delta
}

func (c *cubeSphere) RecomputeVertices() []mgl32.Vec3 {
	positions := c.mesh.Positions()
	if c.morphed && !c.alwaysRecompute && c.ratio == c.lastRatio {
		return positions
	}

	c.morpher.Morph(positions, c.cubeVertices, c.sphereVertices, c.ratio)
	c.lastRatio = c.ratio
	c.morphed = true
	c.mesh.MarkPositionsUpdated()
	return positions
}

func (c *cubeSphere) Mesh() model.Mesh {
	return c.mesh
}

func (c *cubeSphere) CubeVertices() []mgl32.Vec3 {
	return c.cubeVertices
}

func (c *cubeSphere) SphereVertices() []mgl32.Vec3 {
	return c.sphereVertices
}

func (c *cubeSphere) TriangleCount() int {
	return c.mesh.IndexCount() / 3
}

func (c *cubeSphere) Close() error {
	closer, ok := c.morpher.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("failed to close morpher of %q: %w", c.name, err)
	}
	return nil
}

// submeshSummary lists the index count of every submesh, e.g. "z:48 x:48 y:48".
func submeshSummary(m model.Mesh) string {
	parts := make([]string, 0, model.SubmeshCount)
	for id := model.SubmeshZ; id < model.SubmeshCount; id++ {
		parts = append(parts, fmt.Sprintf("%s:%d", id, len(m.Submesh(id))))
	}
	return strings.Join(parts, " ")
}
