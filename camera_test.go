package swipemenu

import (
	"testing"
)

func TestHitPolygonContains(t *testing.T) {
	square := HitPolygon{Points: []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	reversed := HitPolygon{Points: []Vec2{{0, 10}, {10, 10}, {10, 0}, {0, 0}}}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 5, 5, true},
		{"edge", 10, 5, true},
		{"corner", 0, 0, true},
		{"left", -1, 5, false},
		{"below", 5, 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := square.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if got := reversed.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("reversed Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if (HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}).Contains(0, 0) {
		t.Error("degenerate polygon reported a hit")
	}
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	if cam.Scale != 100 || cam.Distance != 5 {
		t.Errorf("defaults = (%v, %v), want (100, 5)", cam.Scale, cam.Distance)
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	tests := []struct {
		name string
		p    Vec3
		want Vec2
	}{
		{"origin", Vec3{}, Vec2{400, 300}},
		{"right", Vec3{1, 0, 0}, Vec2{500, 300}},
		{"up", Vec3{0, 1, 0}, Vec2{400, 200}},
		{"far", Vec3{1, 0, 5}, Vec2{450, 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cam.WorldToScreen(tt.p)
			if !ok {
				t.Fatal("point not projectable")
			}
			if !approxEqual(got.X, tt.want.X, epsilon) || !approxEqual(got.Y, tt.want.Y, epsilon) {
				t.Errorf("WorldToScreen(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if _, ok := cam.WorldToScreen(Vec3{0, 0, -5}); ok {
		t.Error("point at the camera was projected")
	}
}

func TestCameraViewportOffset(t *testing.T) {
	cam := NewCamera(Rect{X: 100, Y: 50, Width: 200, Height: 100})
	got, _ := cam.WorldToScreen(Vec3{})
	if got != (Vec2{200, 100}) {
		t.Errorf("origin projects to %v, want viewport centre (200, 100)", got)
	}
}

func TestCameraOrthographic(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Distance = 0
	near, _ := cam.WorldToScreen(Vec3{1, 0, -3})
	far, _ := cam.WorldToScreen(Vec3{1, 0, 3})
	if near != far {
		t.Errorf("orthographic projection depends on depth: %v vs %v", near, far)
	}
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{Width: 640, Height: 480})
	for _, p := range []Vec3{{0.5, -0.25, 0}, {-2, 1, -0.5}, {3, 0, 1.5}} {
		s, ok := cam.WorldToScreen(p)
		if !ok {
			t.Fatalf("WorldToScreen(%v) failed", p)
		}
		back, ok := cam.ScreenToWorld(s, p.Z)
		if !ok {
			t.Fatalf("ScreenToWorld(%v) failed", s)
		}
		if !approxEqual(back.X, p.X, epsilon) || !approxEqual(back.Y, p.Y, epsilon) {
			t.Errorf("round trip %v -> %v -> %v", p, s, back)
		}
	}
}

func TestRotateByOrientation(t *testing.T) {
	q := Pose{Rotation: 90}.Orientation()
	got := rotate(Vec3{1, 0, 0}, q)
	if !approxEqual(got.X, 0, epsilon) || !approxEqual(got.Y, 0, epsilon) || !approxEqual(got.Z, -1, epsilon) {
		t.Errorf("rotate((1,0,0), 90°) = %v, want (0, 0, -1)", got)
	}
	got = rotate(Vec3{0, 1, 0}, q)
	if !approxEqual(got.Y, 1, epsilon) {
		t.Errorf("yaw changed the Y axis: %v", got)
	}
}

func TestCameraScreenQuad(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	n := NewNode("card", 2, 1)
	quad, ok := cam.ScreenQuad(n)
	if !ok || len(quad.Points) != 4 {
		t.Fatalf("ScreenQuad = %v, %v", quad, ok)
	}
	// Unrotated at the origin: 200 x 100 pixels around the centre.
	if !approxEqual(quad.Points[0].X, 300, epsilon) || !approxEqual(quad.Points[2].X, 500, epsilon) {
		t.Errorf("quad x extent = %v..%v, want 300..500", quad.Points[0].X, quad.Points[2].X)
	}
	if !approxEqual(quad.Points[0].Y, 350, epsilon) || !approxEqual(quad.Points[2].Y, 250, epsilon) {
		t.Errorf("quad y extent = %v..%v, want 350..250", quad.Points[0].Y, quad.Points[2].Y)
	}
}

func TestCameraCastRay(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	back := NewNode("back", 1, 1)
	front := NewNode("front", 1, 1)
	front.Z = -0.5
	side := NewNode("side", 1, 1)
	side.X = 3
	cam.AddTarget(back)
	cam.AddTarget(front)
	cam.AddTarget(side)
	cam.AddTarget(front) // duplicate ignored

	if len(cam.Targets()) != 3 {
		t.Fatalf("Targets = %d, want 3", len(cam.Targets()))
	}

	centre := Vec2{400, 300}
	if got, ok := cam.CastRay(centre); !ok || got != SceneNode(front) {
		t.Errorf("CastRay(centre) = %v, want front", got)
	}

	front.Active = false
	if got, ok := cam.CastRay(centre); !ok || got != SceneNode(back) {
		t.Errorf("CastRay with front hidden = %v, want back", got)
	}

	if got, ok := cam.CastRay(Vec2{700, 300}); !ok || got != SceneNode(side) {
		t.Errorf("CastRay(side) = %v, want side", got)
	}

	if _, ok := cam.CastRay(Vec2{10, 10}); ok {
		t.Error("CastRay hit empty space")
	}

	cam.RemoveTarget(back)
	if _, ok := cam.CastRay(centre); ok {
		t.Error("CastRay hit a removed or inactive node")
	}
}

func TestCameraCastRaySkipsDisposedAndHiddenParents(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	parent := NewNode("parent", 0, 0)
	child := NewNode("child", 1, 1)
	parent.AddChild(child)
	cam.AddTarget(child)

	if _, ok := cam.CastRay(Vec2{400, 300}); !ok {
		t.Fatal("child not hit")
	}
	parent.SetActive(false)
	if _, ok := cam.CastRay(Vec2{400, 300}); ok {
		t.Error("child of hidden parent was hit")
	}
	parent.SetActive(true)
	child.Dispose()
	if _, ok := cam.CastRay(Vec2{400, 300}); ok {
		t.Error("disposed node was hit")
	}
}

func TestCastRayAllocs(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	for i := 0; i < 5; i++ {
		n := NewNode("card", 0.8, 1.2)
		n.X = float64(i) - 2
		n.Rotation = 30
		cam.AddTarget(n)
	}
	allocs := testing.AllocsPerRun(100, func() {
		cam.CastRay(Vec2{400, 300})
	})
	if allocs != 0 {
		t.Errorf("CastRay allocates %v times per run, want 0", allocs)
	}
}

func TestCameraScreenQuadFollowsParentYaw(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	card := NewNode("card", 2, 1)
	card.Rotation = 50
	tab := NewNode("tab", 0.4, 0.2)
	tab.Y = -0.8
	card.AddChild(tab)

	// The same quad placed and turned directly.
	alone := NewNode("alone", 0.4, 0.2)
	alone.Y = -0.8
	alone.Rotation = 50

	got, ok := cam.ScreenQuad(tab)
	want, wantOK := cam.ScreenQuad(alone)
	if !ok || !wantOK {
		t.Fatalf("ScreenQuad ok = %v, %v", ok, wantOK)
	}
	for i := range want.Points {
		if !approxEqual(got.Points[i].X, want.Points[i].X, 1e-6) || !approxEqual(got.Points[i].Y, want.Points[i].Y, 1e-6) {
			t.Errorf("corner %d = %v, want %v", i, got.Points[i], want.Points[i])
		}
	}
}
