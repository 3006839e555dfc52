package cubesphere

// Triangles computes the triangle index lists connecting the vertex layout into a closed surface.
// The side band is split by the axis the face normal points along so the submeshes can be told
// apart while morphing; the caps go into the third list.
//
// Every quad is emitted as the triangles (v00, v01, v10) and (v10, v01, v11), which winds each
// triangle so that its geometric normal points away from the centre.
//
// Parameters:
//   - n: the grid subdivision (must be >= 1)
//
// Returns:
//   - zFacing: the front and back face triangles
//   - xFacing: the right and left face triangles
//   - caps: the top and bottom face triangles
func Triangles(n int) (zFacing, xFacing, caps []uint32) {
	zFacing = make([]uint32, 0, IndexCount(n))
	xFacing = make([]uint32, 0, IndexCount(n))
	caps = make([]uint32, 0, IndexCount(n))

	ring := RingSize(n)
	for y := 0; y < n; y++ {
		base := y * ring
		for p := 0; p < ring; p++ {
			v00 := base + p
			v10 := base + (p+1)%ring
			if (p/n)%2 == 0 {
				zFacing = setQuad(zFacing, v00, v10, v00+ring, v10+ring)
			} else {
				xFacing = setQuad(xFacing, v00, v10, v00+ring, v10+ring)
			}
		}
	}

	caps = topFace(caps, n)
	caps = bottomFace(caps, n)
	return zFacing, xFacing, caps
}

// topFace walks the y = n face row by row from z = 0, with x as the quad's first axis and z as its second.
func topFace(triangles []uint32, n int) []uint32 {
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			triangles = setQuad(triangles,
				GridIndex(n, x, n, z), GridIndex(n, x+1, n, z),
				GridIndex(n, x, n, z+1), GridIndex(n, x+1, n, z+1))
		}
	}
	return triangles
}

// bottomFace walks the y = 0 face row by row from z = 0. The second quad axis runs towards -z
// so the triangles face down.
func bottomFace(triangles []uint32, n int) []uint32 {
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			triangles = setQuad(triangles,
				GridIndex(n, x, 0, z+1), GridIndex(n, x+1, 0, z+1),
				GridIndex(n, x, 0, z), GridIndex(n, x+1, 0, z))
		}
	}
	return triangles
}

func setQuad(triangles []uint32, v00, v10, v01, v11 int) []uint32 {
	return append(triangles,
		uint32(v00), uint32(v01), uint32(v10),
		uint32(v10), uint32(v01), uint32(v11),
	)
}
