package common

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lerp linearly interpolates between a and b by t.
// t is not clamped, values outside [0, 1] extrapolate along the line through a and b.
// The weighted form a*(1-t) + b*t is used so that t == 0 yields a and t == 1 yields b exactly.
//
// Parameters:
//   - a: the value at t == 0
//   - b: the value at t == 1
//   - t: the blend factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Lerp3 linearly interpolates each component of two vectors by t.
// Like Lerp, t is not clamped and the endpoints are reproduced exactly.
//
// Parameters:
//   - a: the vector at t == 0
//   - b: the vector at t == 1
//   - t: the blend factor
//
// Returns:
//   - mgl32.Vec3: the interpolated vector
func Lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// MaxLength returns the largest vector length in the slice, measured from the origin.
// An empty slice yields 0.
//
// Parameters:
//   - points: the vectors to measure
//
// Returns:
//   - float32: the maximum distance from the origin
func MaxLength(points []mgl32.Vec3) float32 {
	var maxSq float32
	for _, p := range points {
		if d := p.Dot(p); d > maxSq {
			maxSq = d
		}
	}
	return math32.Sqrt(maxSq)
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}
