package cubesphere

import (
	"runtime"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func morphFixture(n int) (cube, sphere []mgl32.Vec3) {
	cube = CubeVertices(n, 1.5)
	sphere, _, _ = SphereVertices(n, 1)
	return cube, sphere
}

func TestMorphBoundaries(t *testing.T) {
	for _, n := range testSubdivisions {
		cube, sphere := morphFixture(n)
		dst := make([]mgl32.Vec3, len(cube))

		Morph(dst, cube, sphere, 0)
		assert.Equal(t, cube, dst, "n=%d ratio 0", n)

		Morph(dst, cube, sphere, 1)
		assert.Equal(t, sphere, dst, "n=%d ratio 1", n)
	}
}

func TestMorphInterpolatesAndExtrapolates(t *testing.T) {
	cube, sphere := morphFixture(4)
	dst := make([]mgl32.Vec3, len(cube))

	Morph(dst, cube, sphere, 0.5)
	for i := range dst {
		assertVecInDelta(t, cube[i].Add(sphere[i]).Mul(0.5), dst[i], 1e-5, "vertex %d", i)
	}

	// ratios outside [0, 1] are not clamped
	Morph(dst, cube, sphere, 2)
	for i := range dst {
		assertVecInDelta(t, sphere[i].Mul(2).Sub(cube[i]), dst[i], 1e-5, "vertex %d", i)
	}
}

func TestMorphUsesSharedLength(t *testing.T) {
	cube, sphere := morphFixture(2)
	dst := make([]mgl32.Vec3, 4)
	Morph(dst, cube, sphere, 1)
	assert.Equal(t, sphere[:4], dst)
}

func TestParallelMorpherMatchesSerial(t *testing.T) {
	cube, sphere := morphFixture(32)
	require.Greater(t, len(cube), 1000)

	m := NewParallelMorpher(WithMorphWorkers(4), WithParallelThreshold(1))
	t.Cleanup(func() { _ = m.Close() })
	for _, ratio := range []float32{0, 0.25, 0.5, 1, -0.5, 1.75} {
		want := make([]mgl32.Vec3, len(cube))
		got := make([]mgl32.Vec3, len(cube))
		Morph(want, cube, sphere, ratio)
		m.Morph(got, cube, sphere, ratio)
		assert.Equal(t, want, got, "ratio %v", ratio)
	}
}

func TestParallelMorpherBelowThreshold(t *testing.T) {
	cube, sphere := morphFixture(3)
	m := NewParallelMorpher(WithMorphWorkers(8), WithParallelThreshold(len(cube)+1))
	t.Cleanup(func() { _ = m.Close() })
	got := make([]mgl32.Vec3, len(cube))
	m.Morph(got, cube, sphere, 1)
	assert.Equal(t, sphere, got)
}

func TestWithMorphWorkersFloor(t *testing.T) {
	m := NewParallelMorpher(WithMorphWorkers(0)).(*parallelMorpher)
	t.Cleanup(func() { _ = m.Close() })
	assert.Equal(t, 1, m.workers)
}

func TestParallelMorpherCloseReleasesWorkers(t *testing.T) {
	cube, sphere := morphFixture(16)
	before := runtime.NumGoroutine()

	morphers := make([]ParallelMorpher, 0, 10)
	for range 10 {
		m := NewParallelMorpher(WithMorphWorkers(4), WithParallelThreshold(1))
		dst := make([]mgl32.Vec3, len(cube))
		m.Morph(dst, cube, sphere, 0.5)
		morphers = append(morphers, m)
	}
	require.GreaterOrEqual(t, runtime.NumGoroutine(), before+40)

	for _, m := range morphers {
		require.NoError(t, m.Close())
		require.NoError(t, m.Close())
	}
	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before)

	// a closed morpher still produces the serial result
	want := make([]mgl32.Vec3, len(cube))
	got := make([]mgl32.Vec3, len(cube))
	Morph(want, cube, sphere, 0.25)
	morphers[0].Morph(got, cube, sphere, 0.25)
	assert.Equal(t, want, got)
}

func assertVecInDelta(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...any) {
	t.Helper()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], got[k], delta, msgAndArgs...)
	}
}
