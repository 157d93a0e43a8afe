package camera

import (
	"testing"

	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func approxVec(t *testing.T, got, want mgl32.Vec3, tol float32, field string) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, tol) {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
}

func TestSyncPosition(t *testing.T) {
	cfg := config.CameraConfig{HeightOffset: -0.5}
	body := Transform{Position: mgl32.Vec3{1, 2, 3}, Rotation: mgl32.QuatIdent()}

	tests := []struct {
		name       string
		halfHeight float32
		want       mgl32.Vec3
	}{
		{"standing", 1.5, mgl32.Vec3{1, 3, 3}},
		{"crouched", 0.75, mgl32.Vec3{1, 2.25, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sync(body, tt.halfHeight, 0, &cfg)
			approxVec(t, got.Position, tt.want, 1e-6, "position")
		})
	}
}

func TestSyncAddsPitchAfterYaw(t *testing.T) {
	cfg := config.CameraConfig{}
	yaw := math32.Pi / 2
	body := Transform{Rotation: mathutil.YawRotation(yaw)}

	eye := Sync(body, 1, math32.Pi/4, &cfg)
	f := eye.Forward()
	// Yaw a quarter turn left looks down -X; pitching up lifts it toward +Y.
	approxVec(t, f, mgl32.Vec3{-math32.Sqrt2 / 2, math32.Sqrt2 / 2, 0}, 1e-5, "forward")

	if got := eye.Rotation.Len(); math32.Abs(got-1) > 1e-5 {
		t.Errorf("rotation not unit: %v", got)
	}
}

func TestSyncIsPure(t *testing.T) {
	cfg := config.Camera
	body := Transform{Position: mgl32.Vec3{4, 5, 6}, Rotation: mathutil.YawRotation(0.3)}
	a := Sync(body, 1.2, -0.4, &cfg)
	b := Sync(body, 1.2, -0.4, &cfg)
	if a != b {
		t.Errorf("Sync not deterministic: %v vs %v", a, b)
	}
	if body.Position != (mgl32.Vec3{4, 5, 6}) {
		t.Errorf("input transform mutated: %v", body.Position)
	}
}

func TestBasisAtIdentity(t *testing.T) {
	approxVec(t, Identity.Forward(), mgl32.Vec3{0, 0, -1}, 1e-6, "forward")
	approxVec(t, Identity.Right(), mgl32.Vec3{1, 0, 0}, 1e-6, "right")
	approxVec(t, Identity.Up(), mgl32.Vec3{0, 1, 0}, 1e-6, "up")

	v := Identity.View()
	p := v.Mul4x1(mgl32.Vec4{0, 0, -2, 1})
	approxVec(t, p.Vec3(), mgl32.Vec3{0, 0, -2}, 1e-5, "view of point ahead")
}

func TestWireframe(t *testing.T) {
	eye := Identity
	ahead := cube.Box(-1, -1, -6, 1, 1, -4)

	segs := eye.Wireframe([]cube.BBox{ahead}, math32.Pi/2, 200, 100)
	if len(segs) != 12 {
		t.Fatalf("segments = %d, want 12", len(segs))
	}
	for _, s := range segs {
		for _, p := range []mgl32.Vec2{s.A, s.B} {
			if p.X() < 0 || p.X() > 200 || p.Y() < 0 || p.Y() > 100 {
				t.Errorf("point %v off screen for a box straight ahead", p)
			}
		}
	}

	// The near face of a box centred on the view axis is symmetric about the
	// screen centre.
	var minX, maxX float32 = 200, 0
	for _, s := range segs {
		minX = math32.Min(minX, math32.Min(s.A.X(), s.B.X()))
		maxX = math32.Max(maxX, math32.Max(s.A.X(), s.B.X()))
	}
	if math32.Abs((minX+maxX)/2-100) > 1e-3 {
		t.Errorf("horizontal centre = %v, want 100", (minX+maxX)/2)
	}

	behind := cube.Box(-1, -1, 4, 1, 1, 6)
	if segs := eye.Wireframe([]cube.BBox{behind}, math32.Pi/2, 200, 100); len(segs) != 0 {
		t.Errorf("box behind the eye gave %d segments", len(segs))
	}

	if segs := eye.Wireframe([]cube.BBox{ahead}, math32.Pi/2, 0, 100); segs != nil {
		t.Error("zero-width screen should give no segments")
	}
}

func TestClipNear(t *testing.T) {
	a, b, ok := clipNear(mgl32.Vec3{0, 0, -2}, mgl32.Vec3{0, 0, 2})
	if !ok {
		t.Fatal("crossing segment dropped")
	}
	approxVec(t, a, mgl32.Vec3{0, 0, -2}, 1e-6, "kept end")
	approxVec(t, b, mgl32.Vec3{0, 0, -nearPlane}, 1e-6, "clipped end")
}
