package game_object

import "github.com/chewxy/math32"

// PingPong returns a MorphDriver that sweeps the ratio from 0 to 1 and back once per period.
// A non-positive period holds the ratio at 0.
//
// Parameters:
//   - period: seconds for a full cube -> sphere -> cube cycle
//
// Returns:
//   - MorphDriver: the driver
func PingPong(period float32) MorphDriver {
	return func(elapsed, _, _ float32) float32 {
		if period <= 0 {
			return 0
		}
		phase := math32.Mod(elapsed, period) / period
		return 1 - math32.Abs(1-2*phase)
	}
}

// Toward returns a MorphDriver that moves the ratio toward target at a fixed speed and stops there.
//
// Parameters:
//   - target: the ratio to reach
//   - speed: ratio units per second
//
// Returns:
//   - MorphDriver: the driver
func Toward(target, speed float32) MorphDriver {
	return func(_, deltaTime, current float32) float32 {
		step := speed * deltaTime
		if math32.Abs(target-current) <= step {
			return target
		}
		if target > current {
			return current + step
		}
		return current - step
	}
}
