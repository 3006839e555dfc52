package model

import "github.com/go-gl/mathgl/mgl32"

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithPositions is an option builder that sets the initial live position buffer.
// The slice is owned by the Mesh afterwards.
//
// Parameters:
//   - positions: the vertex positions
//
// Returns:
//   - MeshBuilderOption: a function that applies the positions option to a mesh
func WithPositions(positions []mgl32.Vec3) MeshBuilderOption {
	return func(m *mesh) {
		m.positions = positions
	}
}

// WithNormals is an option builder that sets the fixed per-vertex normals.
//
// Parameters:
//   - normals: the vertex normals
//
// Returns:
//   - MeshBuilderOption: a function that applies the normals option to a mesh
func WithNormals(normals []mgl32.Vec3) MeshBuilderOption {
	return func(m *mesh) {
		m.normals = normals
	}
}

// WithColors is an option builder that sets the fixed per-vertex colors.
//
// Parameters:
//   - colors: the vertex colors
//
// Returns:
//   - MeshBuilderOption: a function that applies the colors option to a mesh
func WithColors(colors []Color32) MeshBuilderOption {
	return func(m *mesh) {
		m.colors = colors
	}
}

// WithSubmesh is an option builder that sets the triangle index list of one submesh.
// Out-of-range IDs are ignored.
//
// Parameters:
//   - id: the submesh to set
//   - indices: the triangle indices, three per triangle
//
// Returns:
//   - MeshBuilderOption: a function that applies the submesh option to a mesh
func WithSubmesh(id SubmeshID, indices []uint32) MeshBuilderOption {
	return func(m *mesh) {
		if id < 0 || id >= SubmeshCount {
			return
		}
		m.submeshes[id] = indices
	}
}
