package scene

// Face identifies one side of the skybox.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
)

// FacePlacement positions one inward-facing square of a skybox centred on
// the origin.
type FacePlacement struct {
	Face    Face
	X, Y, Z float32
	RX, RY  float32
}

// SkyboxLayout returns the six face placements for a skybox whose squares
// are size units across.
func SkyboxLayout(size float32) []FacePlacement {
	h := size / 2
	return []FacePlacement{
		{Face: FaceFront, Z: -h},
		{Face: FaceBack, Z: h, RY: 180},
		{Face: FaceLeft, X: -h, RY: 270},
		{Face: FaceRight, X: h, RY: 90},
		{Face: FaceTop, Y: h, RX: -90, RY: 90},
		{Face: FaceBottom, Y: -h, RX: 90, RY: 90},
	}
}
