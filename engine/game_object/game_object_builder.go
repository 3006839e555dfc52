package game_object

import (
	"github.com/Carmen-Shannon/cubesphere/engine/cubesphere"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the display name of the GameObject.
//
// Parameters:
//   - name: the name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject is updated each tick.
//
// Parameters:
//   - enabled: true to update the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithCubeSphere attaches the morphing mesh component.
//
// Parameters:
//   - cs: the component to attach
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the CubeSphere
func WithCubeSphere(cs cubesphere.CubeSphere) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.cubeSphere = cs
	}
}

// WithMorphDriver sets the function that picks the morph ratio every tick.
//
// Parameters:
//   - driver: the driver
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the MorphDriver
func WithMorphDriver(driver MorphDriver) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.driver = driver
	}
}
