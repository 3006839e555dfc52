package model

import (
	"github.com/Carmen-Shannon/cubesphere/common"
	"github.com/go-gl/mathgl/mgl32"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name      string
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	colors    []Color32
	submeshes [SubmeshCount][]uint32
	revision  uint64
}

// Mesh defines the interface for the in-memory geometry shared between the mesh generator,
// the per-tick morph and any downstream consumers (collision, GPU upload).
// The position buffer is the only part that changes after construction; normals, colors
// and submesh indices are fixed.
//
// A Mesh is not safe for concurrent mutation. The position buffer has a single writer and is
// expected to be consumed on the same tick it was written.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// VertexCount returns the number of vertices in the mesh.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// Positions returns the live vertex position buffer. Writes through the returned slice
	// are visible to every holder of the Mesh.
	//
	// Returns:
	//   - []mgl32.Vec3: the position buffer
	Positions() []mgl32.Vec3

	// SetPositions replaces the live vertex position buffer and bumps the revision.
	//
	// Parameters:
	//   - positions: the new position buffer
	SetPositions(positions []mgl32.Vec3)

	// Normals returns the per-vertex normal buffer.
	//
	// Returns:
	//   - []mgl32.Vec3: the normal buffer
	Normals() []mgl32.Vec3

	// Colors returns the per-vertex color buffer.
	//
	// Returns:
	//   - []Color32: the color buffer
	Colors() []Color32

	// Submesh returns the triangle index list for the given submesh, or nil if the ID is out of range.
	//
	// Parameters:
	//   - id: the submesh to look up
	//
	// Returns:
	//   - []uint32: the triangle indices, three per triangle
	Submesh(id SubmeshID) []uint32

	// Indices returns all submesh triangle lists concatenated in SubmeshID order.
	//
	// Returns:
	//   - []uint32: a newly allocated index list
	Indices() []uint32

	// IndexCount returns the total number of indices across all submeshes.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Revision returns a counter that increases every time the position buffer is rewritten.
	//
	// Returns:
	//   - uint64: the current revision
	Revision() uint64

	// MarkPositionsUpdated bumps the revision after the position buffer was written in place.
	MarkPositionsUpdated()

	// BoundingRadius returns the maximum distance of any current vertex position from the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// VertexData packs the current positions, normals and colors into interleaved GPUVertex records.
	//
	// Returns:
	//   - []byte: VertexCount() * GPUVertexSize bytes, little-endian
	VertexData() []byte

	// IndexData returns the raw bytes of a submesh index list for GPU upload.
	// The returned slice shares memory with the submesh and must not be modified.
	//
	// Parameters:
	//   - id: the submesh to read
	//
	// Returns:
	//   - []byte: the index bytes, or nil for an empty or unknown submesh
	IndexData(id SubmeshID) []byte
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new instance of Mesh configured with the provided options
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) VertexCount() int {
	return len(m.positions)
}

func (m *mesh) Positions() []mgl32.Vec3 {
	return m.positions
}

func (m *mesh) SetPositions(positions []mgl32.Vec3) {
	m.positions = positions
	m.revision++
}

func (m *mesh) Normals() []mgl32.Vec3 {
	return m.normals
}

func (m *mesh) Colors() []Color32 {
	return m.colors
}

func (m *mesh) Submesh(id SubmeshID) []uint32 {
	if id < 0 || id >= SubmeshCount {
		return nil
	}
	return m.submeshes[id]
}

func (m *mesh) Indices() []uint32 {
	out := make([]uint32, 0, m.IndexCount())
	for _, s := range m.submeshes {
		out = append(out, s...)
	}
	return out
}

func (m *mesh) IndexCount() int {
	n := 0
	for _, s := range m.submeshes {
		n += len(s)
	}
	return n
}

func (m *mesh) Revision() uint64 {
	return m.revision
}

func (m *mesh) MarkPositionsUpdated() {
	m.revision++
}

func (m *mesh) BoundingRadius() float32 {
	return common.MaxLength(m.positions)
}

func (m *mesh) VertexData() []byte {
	buf := make([]byte, len(m.positions)*GPUVertexSize)
	var v GPUVertex
	for i, p := range m.positions {
		v.Position = p
		v.Normal = [3]float32{}
		if i < len(m.normals) {
			v.Normal = m.normals[i]
		}
		v.Color = [4]float32{}
		if i < len(m.colors) {
			v.Color = ColorToFloat(m.colors[i])
		}
		v.MarshalTo(buf[i*GPUVertexSize : (i+1)*GPUVertexSize])
	}
	return buf
}

func (m *mesh) IndexData(id SubmeshID) []byte {
	return common.SliceToBytes(m.Submesh(id))
}
