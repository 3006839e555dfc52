package cubesphere

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/cubesphere/engine/model"
)

// CubeVertices computes the flat cube surface positions for the given subdivision.
// The cube is centred on the origin and spans [-cubeSize, cubeSize] on every axis.
//
// Parameters:
//   - n: the grid subdivision (must be >= 1)
//   - cubeSize: half the edge length of the cube
//
// Returns:
//   - []mgl32.Vec3: VertexCount(n) positions in vertex index order
func CubeVertices(n int, cubeSize float32) []mgl32.Vec3 {
	vertices := make([]mgl32.Vec3, VertexCount(n))
	walkGrid(n, func(i, x, y, z int) {
		vertices[i] = unitCube(n, x, y, z).Mul(cubeSize)
	})
	return vertices
}

// SphereVertices computes the sphere surface positions, unit normals and grid debug colors for
// the given subdivision. Index i of every returned slice refers to the same surface point as
// index i of CubeVertices.
//
// Parameters:
//   - n: the grid subdivision (must be >= 1)
//   - radius: the sphere radius
//
// Returns:
//   - positions: the sphere positions, normal * radius
//   - normals: the unit sphere normals
//   - colors: the integer grid coordinate of each vertex packed into RGB, alpha 0
func SphereVertices(n int, radius float32) (positions, normals []mgl32.Vec3, colors []model.Color32) {
	count := VertexCount(n)
	positions = make([]mgl32.Vec3, count)
	normals = make([]mgl32.Vec3, count)
	colors = make([]model.Color32, count)
	walkGrid(n, func(i, x, y, z int) {
		s := ProjectToSphere(n, x, y, z)
		normals[i] = s
		positions[i] = s.Mul(radius)
		colors[i] = model.Color32{uint8(x), uint8(y), uint8(z), 0}
	})
	return positions, normals, colors
}

// ProjectToSphere maps a grid coordinate onto the unit cube [-1, 1]^3 and then onto the unit sphere.
// The mapping spreads points more evenly than normalizing the cube position.
//
// Parameters:
//   - n: the grid subdivision
//   - x, y, z: the grid coordinate, each in [0, n]
//
// Returns:
//   - mgl32.Vec3: a unit vector
func ProjectToSphere(n, x, y, z int) mgl32.Vec3 {
	v := unitCube(n, x, y, z)
	x2 := v[0] * v[0]
	y2 := v[1] * v[1]
	z2 := v[2] * v[2]
	return mgl32.Vec3{
		v[0] * math32.Sqrt(1-y2/2-z2/2+y2*z2/3),
		v[1] * math32.Sqrt(1-x2/2-z2/2+x2*z2/3),
		v[2] * math32.Sqrt(1-x2/2-y2/2+x2*y2/3),
	}
}

// unitCube maps a grid coordinate onto [-1, 1]^3. Grid coordinates 0 and n land exactly on -1 and 1.
func unitCube(n, x, y, z int) mgl32.Vec3 {
	fn := float32(n)
	return mgl32.Vec3{
		float32(x)*2/fn - 1,
		float32(y)*2/fn - 1,
		float32(z)*2/fn - 1,
	}
}
