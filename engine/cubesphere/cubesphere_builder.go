package cubesphere

import "github.com/Carmen-Shannon/cubesphere/common"

// CubeSphereBuilderOption is a functional option for configuring a CubeSphere via NewCubeSphere.
type CubeSphereBuilderOption func(*cubeSphere)

// WithName sets the name given to the generated mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - CubeSphereBuilderOption: option function to apply
func WithName(name string) CubeSphereBuilderOption {
	return func(c *cubeSphere) {
		c.name = name
	}
}

// WithSubdivision sets the number of grid cells along every cube edge.
// NewCubeSphere rejects values below 1.
//
// Parameters:
//   - n: the grid subdivision
//
// Returns:
//   - CubeSphereBuilderOption: option function to apply
func WithSubdivision(n int) CubeSphereBuilderOption {
	return func(c *cubeSphere) {
		c.subdivision = n
	}
}

// WithCubeSize sets half the edge length of the cube shape (default 1.5).
//
// Parameters:
//   - size: the cube size
//
// Returns:
//   - CubeSphereBuilderOption: option function to apply
func WithCubeSize(size float32) CubeSphereBuilderOption {
	return func(c *cubeSphere) {
		c.cubeSize = size
	}
}

// WithSphereRadius sets the radius of the sphere shape (default 1.0).
//
// Parameters:
//   - radius: the sphere radius
//
// Returns:
//   - CubeSphereBuilderOption: option function to apply
func WithSphereRadius(radius float32) CubeSphereBuilderOption {
	return func(c *cubeSphere) {
		c.sphereRadius = radius
	}
}

// WithMorphRatio sets the initial blend factor (default 0, the cube).
//
// Parameters:
//   - ratio: the blend factor
//
// Returns:
//   - CubeSphereBuilderOption: option function to apply
func WithMorphRatio(ratio float32) CubeSphereBuilderOption {
	return func(c *cubeSphere) {
		c.ratio = ratio
	}
}

// WithMorpher replaces the serial per-vertex blend, e.g. with NewParallelMorpher.
//
// Parameters:
//   - m: the morpher to use
//
// Returns:
//   - CubeSphereBuilderOption: option function to apply
func WithMorpher(m Morpher) CubeSphereBuilderOption {
	return func(c *cubeSphere) {
		c.morpher = m
	}
}

// WithAlwaysRecompute makes RecomputeVertices blend on every call, even when the ratio is unchanged.
//
// Parameters:
//   - always: true to disable the unchanged-ratio shortcut
//
// Returns:
//   - CubeSphereBuilderOption: option function to apply
func WithAlwaysRecompute(always bool) CubeSphereBuilderOption {
	return func(c *cubeSphere) {
		c.alwaysRecompute = always
	}
}

// WithConfig applies every setting of cfg. Zero-valued fields, and a nil MorphRatio, leave the
// current value in place, so a partially filled Config only overrides what it sets.
//
// Parameters:
//   - cfg: the configuration to apply
//
// Returns:
//   - CubeSphereBuilderOption: option function to apply
func WithConfig(cfg Config) CubeSphereBuilderOption {
	return func(c *cubeSphere) {
		c.name = common.Coalesce(cfg.Name, c.name)
		c.subdivision = common.Coalesce(cfg.Subdivision, c.subdivision)
		c.cubeSize = common.Coalesce(cfg.CubeSize, c.cubeSize)
		c.sphereRadius = common.Coalesce(cfg.SphereRadius, c.sphereRadius)
		if cfg.MorphRatio != nil {
			c.ratio = *cfg.MorphRatio
		}
		c.alwaysRecompute = cfg.AlwaysRecompute || c.alwaysRecompute
		if cfg.Workers > 1 {
			c.morpher = cfg.Morpher()
		}
	}
}
