package swipemenu

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Mapper converts an item's signed distance from the scroll centre into its
// pose. All methods are pure and total: any finite offset maps to a finite
// pose.
//
// The horizontal curve is linear inside (-1, 1) and follows
// sign(o)*sqrt(2|o|-1) outside it, so near-centre motion tracks the pointer
// while distant items bunch up towards the edges. Depth is a tent that pulls
// only the centred item towards the viewer, and rotation ramps between
// -MaxAngle and +MaxAngle across the centre band.
type Mapper struct {
	CentreHalfWidth float64 // half width of the rotation and depth band
	MaxAngle        float64 // degrees
	CentreZOffset   float64 // how far the centred item comes forward
}

// Pose is an item's placement in menu space. Rotation is a yaw in degrees.
type Pose struct {
	X, Y, Z  float64
	Rotation float64
}

// Position returns the translational part of the pose.
func (p Pose) Position() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// Orientation returns the unit quaternion for the pose's yaw about +Y.
func (p Pose) Orientation() quat.Number {
	half := p.Rotation * math.Pi / 360
	sin, cos := math.Sincos(half)
	return quat.Number{Real: cos, Jmag: sin}
}

// X returns the horizontal position for offset.
func (m Mapper) X(offset float64) float64 {
	switch {
	case offset >= 1:
		return math.Sqrt(2*offset - 1)
	case offset <= -1:
		return -math.Sqrt(-2*offset - 1)
	default:
		return offset
	}
}

// InverseX maps a horizontal position back to the offset that produces it.
func (m Mapper) InverseX(x float64) float64 {
	switch {
	case x >= 1:
		return (x*x + 1) / 2
	case x <= -1:
		return -(x*x + 1) / 2
	default:
		return x
	}
}

// Z returns the depth for offset: zero outside the centre band, ramping
// linearly to -CentreZOffset at offset 0.
func (m Mapper) Z(offset float64) float64 {
	w := m.CentreHalfWidth
	switch {
	case offset <= -w, offset >= w:
		return 0
	case offset < 0:
		return -m.CentreZOffset/w*offset - m.CentreZOffset
	default:
		return m.CentreZOffset/w*offset - m.CentreZOffset
	}
}

// Rotation returns the yaw in degrees for offset.
func (m Mapper) Rotation(offset float64) float64 {
	w := m.CentreHalfWidth
	switch {
	case offset < -w:
		return -m.MaxAngle
	case offset > w:
		return m.MaxAngle
	default:
		return offset * (m.MaxAngle / w)
	}
}

// Pose returns the full pose for offset.
func (m Mapper) Pose(offset float64) Pose {
	return Pose{
		X:        m.X(offset),
		Z:        m.Z(offset),
		Rotation: m.Rotation(offset),
	}
}
