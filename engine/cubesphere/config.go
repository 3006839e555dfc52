package cubesphere

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultName is the mesh name used when none is configured.
	DefaultName = "Procedural Cube Sphere"

	// DefaultSubdivision is the grid subdivision used when none is configured.
	DefaultSubdivision = 8

	// DefaultCubeSize is half the cube edge length used when none is configured.
	DefaultCubeSize float32 = 1.5

	// DefaultSphereRadius is the sphere radius used when none is configured.
	DefaultSphereRadius float32 = 1.0
)

// Config holds the generation and morph settings of a CubeSphere in a form that can be loaded from YAML.
type Config struct {
	// Name is the mesh identifier.
	Name string `yaml:"name"`

	// Subdivision is the number of grid cells along every cube edge.
	Subdivision int `yaml:"subdivision"`

	// CubeSize is half the edge length of the cube shape.
	CubeSize float32 `yaml:"cube_size"`

	// SphereRadius is the radius of the sphere shape.
	SphereRadius float32 `yaml:"sphere_radius"`

	// MorphRatio is the initial blend, 0 for the cube and 1 for the sphere. Nil leaves the ratio
	// unchanged, so an explicit 0 still selects the cube.
	MorphRatio *float32 `yaml:"morph_ratio"`

	// Workers enables the parallel morpher when greater than 1.
	Workers int `yaml:"workers"`

	// ParallelThreshold is the vertex count below which the parallel morpher runs serially.
	ParallelThreshold int `yaml:"parallel_threshold"`

	// AlwaysRecompute disables skipping the morph when the ratio is unchanged.
	AlwaysRecompute bool `yaml:"always_recompute"`
}

// DefaultConfig returns the settings a CubeSphere uses when no options are given.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Name:              DefaultName,
		Subdivision:       DefaultSubdivision,
		CubeSize:          DefaultCubeSize,
		SphereRadius:      DefaultSphereRadius,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// Validate reports whether the configuration can be used to generate a mesh.
//
// Returns:
//   - error: a wrapped ErrInvalidSubdivision if the subdivision is below 1, nil otherwise
func (c Config) Validate() error {
	if c.Subdivision < 1 {
		return fmt.Errorf("subdivision %d: %w", c.Subdivision, ErrInvalidSubdivision)
	}
	return nil
}

// Morpher builds the Morpher described by the configuration: parallel when more than one worker
// is configured, serial otherwise.
//
// Returns:
//   - Morpher: the configured morpher
func (c Config) Morpher() Morpher {
	if c.Workers > 1 {
		return NewParallelMorpher(
			WithMorphWorkers(c.Workers),
			WithParallelThreshold(c.ParallelThreshold),
		)
	}
	return MorphFunc(Morph)
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep their DefaultConfig values.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the loaded configuration
//   - error: error if the file cannot be read, parsed or validated
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
