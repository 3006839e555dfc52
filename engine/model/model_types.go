package model

// SubmeshID identifies one of the independently drawable triangle lists of a Mesh.
type SubmeshID int

const (
	// SubmeshZ holds the quads of the two faces whose normals point along ±Z.
	SubmeshZ SubmeshID = iota

	// SubmeshX holds the quads of the two faces whose normals point along ±X.
	SubmeshX

	// SubmeshY holds the top and bottom cap quads (normals along ±Y).
	SubmeshY

	// SubmeshCount is the number of submeshes every Mesh carries.
	SubmeshCount
)

// String returns a short label for the submesh, used in the generation log line.
func (s SubmeshID) String() string {
	switch s {
	case SubmeshZ:
		return "z"
	case SubmeshX:
		return "x"
	case SubmeshY:
		return "y"
	default:
		return "unknown"
	}
}

// Color32 is a per-vertex RGBA color with 8 bits per channel.
type Color32 [4]uint8
