package game_object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/cubesphere/engine/cubesphere"
)

func newObject(t *testing.T, options ...GameObjectBuilderOption) GameObject {
	t.Helper()
	cs, err := cubesphere.NewCubeSphere(cubesphere.WithSubdivision(3))
	require.NoError(t, err)
	return NewGameObject(append([]GameObjectBuilderOption{WithCubeSphere(cs)}, options...)...)
}

func TestGameObjectDefaults(t *testing.T) {
	obj := NewGameObject(WithID(4), WithName("sphere"))
	assert.Equal(t, uint64(4), obj.ID())
	assert.Equal(t, "sphere", obj.Name())
	assert.True(t, obj.Enabled())
	assert.Nil(t, obj.CubeSphere())
	assert.Nil(t, obj.Collider())

	// no component attached, nothing to do
	obj.Update(0.016)
}

func TestGameObjectUpdateRecomputes(t *testing.T) {
	obj := newObject(t)
	cs := obj.CubeSphere()

	cs.SetMorphRatio(1)
	obj.Update(0.016)
	assert.Equal(t, cs.SphereVertices(), cs.Mesh().Positions())
}

func TestGameObjectDisabledSkipsUpdate(t *testing.T) {
	obj := newObject(t, WithEnabled(false))
	cs := obj.CubeSphere()
	rev := cs.Mesh().Revision()

	cs.SetMorphRatio(1)
	obj.Update(0.016)
	assert.Equal(t, rev, cs.Mesh().Revision())
	assert.Equal(t, cs.CubeVertices(), cs.Mesh().Positions())

	obj.SetEnabled(true)
	obj.Update(0.016)
	assert.Equal(t, cs.SphereVertices(), cs.Mesh().Positions())
}

func TestGameObjectMorphDriver(t *testing.T) {
	obj := newObject(t, WithMorphDriver(PingPong(2)))
	cs := obj.CubeSphere()

	obj.Update(0.5)
	assert.InDelta(t, 0.5, cs.MorphRatio(), 1e-6)
	obj.Update(0.5)
	assert.InDelta(t, 1, cs.MorphRatio(), 1e-6)
	assert.Equal(t, cs.SphereVertices(), cs.Mesh().Positions())
	obj.Update(0.5)
	assert.InDelta(t, 0.5, cs.MorphRatio(), 1e-6)

	obj.SetMorphDriver(nil)
	cs.SetMorphRatio(0)
	obj.Update(0.5)
	assert.Zero(t, cs.MorphRatio())
	assert.Equal(t, cs.CubeVertices(), cs.Mesh().Positions())
}

func TestPingPong(t *testing.T) {
	d := PingPong(4)
	tests := []struct {
		elapsed float32
		want    float32
	}{
		{0, 0},
		{1, 0.5},
		{2, 1},
		{3, 0.5},
		{4, 0},
		{5, 0.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, d(tt.elapsed, 0, 0), 1e-6, "elapsed %v", tt.elapsed)
	}
	assert.Zero(t, PingPong(0)(3, 0, 0))
}

func TestToward(t *testing.T) {
	d := Toward(1, 2)
	assert.InDelta(t, 0.2, d(0, 0.1, 0), 1e-6)
	assert.Equal(t, float32(1), d(0, 0.1, 0.9))
	assert.InDelta(t, 1.8, Toward(1, 2)(0, 0.1, 2), 1e-6)
}
