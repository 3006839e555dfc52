package cubesphere

// The vertex index space is shared by the cube positions, sphere positions, normals and colors.
//
// Rings: for every height y in [0, n] the 4n perimeter points are stored at y*4n + p where p walks
// the front face (z = 0) left to right, then the right face (x = n), the back face (z = n) and
// the left face (x = 0). After the n+1 rings come the (n-1)^2 interior points of the top cap
// (y = n) and then those of the bottom cap (y = 0), both row-major over z then x.

// VertexCount returns the number of vertices of a cube sphere with the given subdivision:
// 8 corners, 4*(3n-3) edge points and 6*(n-1)^2 face points.
//
// Parameters:
//   - n: the grid subdivision (must be >= 1)
//
// Returns:
//   - int: the vertex count
func VertexCount(n int) int {
	const cornerVertices = 8
	edgeVertices := (3*n - 3) * 4
	faceVertices := (n - 1) * (n - 1) * 6
	return cornerVertices + edgeVertices + faceVertices
}

// RingSize returns the number of perimeter vertices in one horizontal ring.
//
// Parameters:
//   - n: the grid subdivision
//
// Returns:
//   - int: the ring stride, 4n
func RingSize(n int) int {
	return 4 * n
}

// IndexCount returns the length of each of the three submesh index lists: two faces of n*n quads,
// six indices per quad.
//
// Parameters:
//   - n: the grid subdivision
//
// Returns:
//   - int: the per-submesh index count
func IndexCount(n int) int {
	return 2 * n * n * 6
}

// capStart returns the index of the first top cap interior vertex.
func capStart(n int) int {
	return RingSize(n) * (n + 1)
}

// perimeterPosition returns the position of (x, z) along a ring. The point must lie on the perimeter.
func perimeterPosition(n, x, z int) int {
	switch {
	case z == 0:
		return x
	case x == n:
		return n + z
	case z == n:
		return 3*n - x
	default:
		return 4*n - z
	}
}

// GridIndex maps an integer surface grid coordinate to its position in the vertex index space.
// Every coordinate must lie on the cube surface, i.e. at least one component is 0 or n.
//
// Parameters:
//   - n: the grid subdivision
//   - x, y, z: the grid coordinate, each in [0, n]
//
// Returns:
//   - int: the vertex index
func GridIndex(n, x, y, z int) int {
	if x == 0 || x == n || z == 0 || z == n {
		return y*RingSize(n) + perimeterPosition(n, x, z)
	}
	i := capStart(n) + (z-1)*(n-1) + (x - 1)
	if y == 0 {
		i += (n - 1) * (n - 1)
	}
	return i
}

// walkGrid visits every surface grid point once, in vertex index order.
func walkGrid(n int, visit func(i, x, y, z int)) {
	i := 0
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			visit(i, x, y, 0)
			i++
		}
		for z := 1; z <= n; z++ {
			visit(i, n, y, z)
			i++
		}
		for x := n - 1; x >= 0; x-- {
			visit(i, x, y, n)
			i++
		}
		for z := n - 1; z > 0; z-- {
			visit(i, 0, y, z)
			i++
		}
	}
	for z := 1; z < n; z++ {
		for x := 1; x < n; x++ {
			visit(i, x, n, z)
			i++
		}
	}
	for z := 1; z < n; z++ {
		for x := 1; x < n; x++ {
			visit(i, x, 0, z)
			i++
		}
	}
}
