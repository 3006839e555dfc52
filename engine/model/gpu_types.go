package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexSize is the byte size of one packed GPUVertex.
const GPUVertexSize = 64

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Size: 64 bytes (std430 aligned, no padding required).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Normal   [3]float32 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
	Color    [4]float32 // offset 32: per-vertex RGBA color (16 bytes)
	Tangent  [4]float32 // offset 48: tangent vector (xyz) + handedness (w) for normal mapping (16 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// MarshalTo serializes the GPUVertex into buf, which must hold at least GPUVertexSize bytes.
//
// Parameters:
//   - buf: destination buffer
func (g *GPUVertex) MarshalTo(buf []byte) {
	_ = buf[GPUVertexSize-1]
	putFloats(buf[0:12], g.Position[:])
	putFloats(buf[12:24], g.Normal[:])
	putFloats(buf[24:32], g.TexCoord[:])
	putFloats(buf[32:48], g.Color[:])
	putFloats(buf[48:64], g.Tangent[:])
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexSize)
	g.MarshalTo(buf)
	return buf
}

func putFloats(buf []byte, values []float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(v))
	}
}

// ColorToFloat converts an 8-bit color into normalized [0, 1] float channels.
//
// Parameters:
//   - c: the color to convert
//
// Returns:
//   - [4]float32: the normalized RGBA channels
func ColorToFloat(c Color32) [4]float32 {
	return [4]float32{
		float32(c[0]) / 255,
		float32(c[1]) / 255,
		float32(c[2]) / 255,
		float32(c[3]) / 255,
	}
}
