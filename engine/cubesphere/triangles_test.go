package cubesphere

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrianglesSizes(t *testing.T) {
	for _, n := range testSubdivisions {
		z, x, y := Triangles(n)
		total := 0
		for _, list := range [][]uint32{z, x, y} {
			assert.Len(t, list, IndexCount(n), "n=%d", n)
			assert.Zero(t, len(list)%6, "n=%d", n)
			total += len(list)
			for _, idx := range list {
				assert.Less(t, int(idx), VertexCount(n), "n=%d", n)
			}
		}
		assert.Equal(t, 36*n*n, total, "n=%d", n)
		assert.Zero(t, total%3, "n=%d", n)
	}
}

func TestTrianglesSingleSubdivision(t *testing.T) {
	z, x, y := Triangles(1)
	assert.Equal(t, []uint32{
		0, 4, 1, 1, 4, 5, // front
		2, 6, 3, 3, 6, 7, // back
	}, z)
	assert.Equal(t, []uint32{
		1, 5, 2, 2, 5, 6, // right
		3, 7, 0, 0, 7, 4, // left, wrapping to the ring start
	}, x)
	assert.Equal(t, []uint32{
		4, 7, 5, 5, 7, 6, // top
		3, 0, 2, 2, 0, 1, // bottom
	}, y)
}

func TestTrianglesThreeSubdivisions(t *testing.T) {
	z, x, y := Triangles(3)
	require.Equal(t, 56, VertexCount(3))
	for _, list := range [][]uint32{z, x, y} {
		for _, idx := range list {
			assert.Less(t, idx, uint32(56))
		}
	}
}

func TestTrianglesReferenceEveryVertex(t *testing.T) {
	for _, n := range testSubdivisions {
		used := make([]bool, VertexCount(n))
		for _, idx := range allIndices(n) {
			used[idx] = true
		}
		for i, u := range used {
			assert.True(t, u, "n=%d vertex %d is not part of any triangle", n, i)
		}
	}
}

// Every directed edge must appear exactly once and its reverse exactly once, which makes the surface
// a closed, consistently oriented 2-manifold.
func TestTrianglesClosedManifold(t *testing.T) {
	type edge struct{ a, b uint32 }
	for _, n := range testSubdivisions {
		indices := allIndices(n)
		edges := make(map[edge]int, len(indices))
		for i := 0; i < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			require.False(t, a == b || b == c || a == c, "n=%d degenerate triangle %d", n, i/3)
			edges[edge{a, b}]++
			edges[edge{b, c}]++
			edges[edge{c, a}]++
		}
		for e, count := range edges {
			assert.Equal(t, 1, count, "n=%d edge %v", n, e)
			assert.Equal(t, 1, edges[edge{e.b, e.a}], "n=%d edge %v has no opposite", n, e)
		}

		v := VertexCount(n)
		f := len(indices) / 3
		assert.Equal(t, 2, v-len(edges)/2+f, "n=%d euler characteristic", n)
	}
}

func TestTrianglesFaceOutward(t *testing.T) {
	for _, n := range testSubdivisions {
		cube := CubeVertices(n, 1.5)
		sphere, _, _ := SphereVertices(n, 1)
		indices := allIndices(n)
		for i := 0; i < len(indices); i += 3 {
			for _, positions := range [][]mgl32.Vec3{cube, sphere} {
				normal, centroid := triangleNormal(positions, indices[i:i+3])
				assert.Positive(t, normal.Dot(centroid), "n=%d triangle %d faces inward", n, i/3)
			}
		}
	}
}

func TestTrianglesSubmeshAxes(t *testing.T) {
	for _, n := range testSubdivisions {
		cube := CubeVertices(n, 1.5)
		z, x, y := Triangles(n)
		for axis, list := range [][]uint32{x, y, z} {
			for i := 0; i < len(list); i += 3 {
				normal, _ := triangleNormal(cube, list[i:i+3])
				assert.Equal(t, axis, dominantAxis(normal), "n=%d triangle %d", n, i/3)
			}
		}
	}
}

func TestTrianglesDeterministic(t *testing.T) {
	z1, x1, y1 := Triangles(5)
	z2, x2, y2 := Triangles(5)
	assert.Equal(t, z1, z2)
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}

func allIndices(n int) []uint32 {
	z, x, y := Triangles(n)
	out := append([]uint32{}, z...)
	out = append(out, x...)
	return append(out, y...)
}

func triangleNormal(positions []mgl32.Vec3, tri []uint32) (normal, centroid mgl32.Vec3) {
	a, b, c := positions[tri[0]], positions[tri[1]], positions[tri[2]]
	normal = b.Sub(a).Cross(c.Sub(a))
	centroid = a.Add(b).Add(c).Mul(1.0 / 3)
	return normal, centroid
}

func dominantAxis(v mgl32.Vec3) int {
	axis := 0
	for k := 1; k < 3; k++ {
		if math32.Abs(v[k]) > math32.Abs(v[axis]) {
			axis = k
		}
	}
	return axis
}
