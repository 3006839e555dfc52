package collider

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/cubesphere/engine/cubesphere"
	"github.com/Carmen-Shannon/cubesphere/engine/model"
)

func newCubeSphere(t *testing.T, n int, ratio float32) cubesphere.CubeSphere {
	t.Helper()
	cs, err := cubesphere.NewCubeSphere(
		cubesphere.WithSubdivision(n),
		cubesphere.WithCubeSize(1.5),
		cubesphere.WithSphereRadius(1),
		cubesphere.WithMorphRatio(ratio),
	)
	require.NoError(t, err)
	return cs
}

func TestMeshColliderCube(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		cs := newCubeSphere(t, n, 0)
		c, err := NewMeshCollider(cs.Mesh())
		require.NoError(t, err)

		assert.Equal(t, 12*n*n, c.TriangleCount(), "n=%d", n)
		assert.InDelta(t, 54, c.SurfaceArea(), 1e-3, "n=%d", n)
		assert.InDelta(t, 27, c.Volume(), 1e-3, "n=%d", n)
		assert.InDelta(t, 1.5*math.Sqrt(3), c.BoundingRadius(), 1e-5, "n=%d", n)

		b := c.Bounds()
		assert.Equal(t, mgl32.Vec3{-1.5, -1.5, -1.5}, b.Min)
		assert.Equal(t, mgl32.Vec3{1.5, 1.5, 1.5}, b.Max)
		assert.Equal(t, mgl32.Vec3{3, 3, 3}, b.Size())
		assert.Equal(t, mgl32.Vec3{0, 0, 0}, b.Center())
		assert.True(t, b.Contains(mgl32.Vec3{1.5, 0, -1.5}))
		assert.False(t, b.Contains(mgl32.Vec3{1.6, 0, 0}))
	}
}

func TestMeshColliderSphere(t *testing.T) {
	cs := newCubeSphere(t, 16, 1)
	c, err := NewMeshCollider(cs.Mesh())
	require.NoError(t, err)

	sphereVolume := 4.0 / 3.0 * math.Pi
	assert.Less(t, c.Volume(), sphereVolume)
	assert.Greater(t, c.Volume(), 0.97*sphereVolume)
	assert.Less(t, c.SurfaceArea(), 4*math.Pi)
	assert.InDelta(t, 1, c.BoundingRadius(), 1e-5)
}

func TestMeshColliderIsStaticSnapshot(t *testing.T) {
	cs := newCubeSphere(t, 4, 0)
	c, err := NewMeshCollider(cs.Mesh())
	require.NoError(t, err)
	cubeVolume := c.Volume()
	assert.False(t, c.Stale())

	cs.SetMorphRatio(1)
	cs.RecomputeVertices()

	assert.True(t, c.Stale())
	assert.Equal(t, cubeVolume, c.Volume(), "the snapshot does not follow the morph")
	assert.Equal(t, cs.CubeVertices(), c.Vertices())

	require.NoError(t, c.Refresh())
	assert.False(t, c.Stale())
	assert.Less(t, c.Volume(), cubeVolume)
	assert.Equal(t, cs.SphereVertices(), c.Vertices())
}

func TestMeshColliderErrors(t *testing.T) {
	_, err := NewMeshCollider(nil)
	assert.ErrorIs(t, err, ErrNilMesh)

	_, err = NewMeshCollider(model.NewMesh(model.WithName("empty")))
	assert.ErrorIs(t, err, ErrEmptyMesh)

	_, err = NewMeshCollider(model.NewMesh(
		model.WithPositions(make([]mgl32.Vec3, 3)),
		model.WithSubmesh(model.SubmeshZ, []uint32{0, 1, 3}),
	))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBinder(t *testing.T) {
	b := NewBinder()
	cs := newCubeSphere(t, 3, 0)

	c, err := b.Register(7, cs.Mesh())
	require.NoError(t, err)
	assert.Same(t, c, b.Collider(7))
	assert.Equal(t, 1, b.Count())
	assert.Equal(t, cs.Mesh(), c.Mesh())

	_, err = b.Register(7, cs.Mesh())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	_, err = b.Register(8, nil)
	assert.ErrorIs(t, err, ErrNilMesh)
	assert.Nil(t, b.Collider(8))

	assert.True(t, b.Unregister(7))
	assert.False(t, b.Unregister(7))
	assert.Zero(t, b.Count())
}
