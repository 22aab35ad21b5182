package swipemenu

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

const (
	defaultCameraScale    = 100.0 // pixels per menu unit at depth zero
	defaultCameraDistance = 5.0   // menu units from the camera to the z = 0 plane
)

// HitPolygon is a convex polygon hit area in screen coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Camera is a simple perspective camera looking down +Z at the menu. It
// projects menu-space points to the screen and implements RayCaster by
// testing registered nodes' rotated quads.
type Camera struct {
	// Viewport is the screen-space rectangle the menu is drawn into. The
	// menu origin projects to its centre.
	Viewport Rect
	// Scale is the number of pixels per menu unit at depth zero.
	Scale float64
	// Distance is how far the camera sits in front of the z = 0 plane.
	Distance float64

	targets []*Node
	quadBuf [4]Vec2
}

// NewCamera creates a camera with default scale and distance for viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Viewport: viewport,
		Scale:    defaultCameraScale,
		Distance: defaultCameraDistance,
	}
}

// AddTarget registers n for ray casts. Registration order breaks depth ties.
func (c *Camera) AddTarget(n *Node) {
	if n == nil {
		return
	}
	for _, t := range c.targets {
		if t == n {
			return
		}
	}
	c.targets = append(c.targets, n)
}

// RemoveTarget unregisters n.
func (c *Camera) RemoveTarget(n *Node) {
	for i, t := range c.targets {
		if t == n {
			c.targets = append(c.targets[:i], c.targets[i+1:]...)
			return
		}
	}
}

// Targets returns the registered nodes. The returned slice MUST NOT be mutated.
func (c *Camera) Targets() []*Node {
	return c.targets
}

// perspective returns the screen scale factor for depth z, or 0 when the
// point is at or behind the camera.
func (c *Camera) perspective(z float64) float64 {
	depth := c.Distance + z
	if c.Distance <= 0 {
		return c.Scale
	}
	if depth <= 0 {
		return 0
	}
	return c.Scale * c.Distance / depth
}

// WorldToScreen projects a menu-space point to screen coordinates. ok is
// false for points at or behind the camera.
func (c *Camera) WorldToScreen(p Vec3) (s Vec2, ok bool) {
	f := c.perspective(p.Z)
	if f == 0 {
		return Vec2{}, false
	}
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return Vec2{cx + p.X*f, cy - p.Y*f}, true
}

// ScreenToWorld unprojects a screen point onto the plane at depth z.
func (c *Camera) ScreenToWorld(s Vec2, z float64) (Vec3, bool) {
	f := c.perspective(z)
	if f == 0 {
		return Vec3{}, false
	}
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return Vec3{(s.X - cx) / f, -(s.Y - cy) / f, z}, true
}

// ScreenQuad returns n's quad projected to the screen: the node's
// Width x Height rectangle, rotated by its world yaw and placed at its world
// position. ok is false if any corner is behind the camera.
func (c *Camera) ScreenQuad(n *Node) (HitPolygon, bool) {
	pts, ok := c.projectQuad(n, make([]Vec2, 0, 4))
	return HitPolygon{Points: pts}, ok
}

func (c *Camera) projectQuad(n *Node, dst []Vec2) ([]Vec2, bool) {
	hw, hh := n.Width/2, n.Height/2
	q := Pose{Rotation: n.WorldRotation()}.Orientation()
	origin := n.WorldPosition()
	corners := [4]Vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}
	for _, corner := range corners {
		r := rotate(corner, q)
		s, ok := c.WorldToScreen(Vec3{origin.X + r.X, origin.Y + r.Y, origin.Z + r.Z})
		if !ok {
			return dst, false
		}
		dst = append(dst, s)
	}
	return dst, true
}

// CastRay returns the nearest active registered node whose projected quad
// contains the screen point. Nodes with more negative depth are nearer.
func (c *Camera) CastRay(screen Vec2) (SceneNode, bool) {
	var best *Node
	bestDepth := math.Inf(1)
	for _, n := range c.targets {
		if n.IsDisposed() || !n.IsActive() || n.Width <= 0 || n.Height <= 0 {
			continue
		}
		pts, ok := c.projectQuad(n, c.quadBuf[:0])
		if !ok || !(HitPolygon{Points: pts}).Contains(screen.X, screen.Y) {
			continue
		}
		if d := n.WorldPosition().Z; d < bestDepth {
			best = n
			bestDepth = d
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// rotate applies the unit quaternion q to p.
func rotate(p Vec3, q quat.Number) Vec3 {
	r := quat.Mul(quat.Mul(q, quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}), quat.Conj(q))
	return Vec3{r.Imag, r.Jmag, r.Kmag}
}
