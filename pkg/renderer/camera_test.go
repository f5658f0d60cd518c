package renderer

import (
	"math"
	"testing"

	"github.com/raytracing-go/skytracer/pkg/core"
)

func testCamera() *Camera {
	return NewCamera(CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		VFov:     90,
		Aspect:   1,
	})
}

func TestCamera_GenerateRay_Center(t *testing.T) {
	camera := testCamera()
	ray := camera.GenerateRay(core.NewVec2(0, 0))

	if ray.Origin.Length() > 1e-12 {
		t.Errorf("Expected origin at camera position, got %v", ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected center ray along view axis, got %v", ray.Direction)
	}
	if ray.Energy != core.One() {
		t.Errorf("Expected full energy, got %v", ray.Energy)
	}
}

func TestCamera_GenerateRay_Corners(t *testing.T) {
	camera := testCamera()

	tests := []struct {
		name  string
		uv    core.Vec2
		wantX float64 // Expected sign of direction components
		wantY float64
	}{
		{"right", core.NewVec2(1, 0), 1, 0},
		{"left", core.NewVec2(-1, 0), -1, 0},
		{"top", core.NewVec2(0, 1), 0, 1},
		{"bottom", core.NewVec2(0, -1), 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := camera.GenerateRay(tt.uv).Direction
			if math.Abs(dir.Length()-1.0) > 1e-9 {
				t.Fatalf("Expected unit direction, got length %v", dir.Length())
			}
			if tt.wantX != 0 && dir.X*tt.wantX <= 0 {
				t.Errorf("Expected direction x sign %v, got %v", tt.wantX, dir)
			}
			if tt.wantY != 0 && dir.Y*tt.wantY <= 0 {
				t.Errorf("Expected direction y sign %v, got %v", tt.wantY, dir)
			}
			if dir.Z >= 0 {
				t.Errorf("Expected direction into the scene (-z), got %v", dir)
			}
		})
	}
}

func TestCamera_GenerateRay_TranslatedOrigin(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Position: core.NewVec3(1, 2, 3),
		LookAt:   core.NewVec3(1, 2, 0),
		VFov:     60,
		Aspect:   16.0 / 9.0,
	})

	ray := camera.GenerateRay(core.NewVec2(0.3, -0.4))
	if ray.Origin.Subtract(core.NewVec3(1, 2, 3)).Length() > 1e-9 {
		t.Errorf("Expected ray origin at camera position, got %v", ray.Origin)
	}
}

func TestCamera_GenerateRay_FovWidensDirections(t *testing.T) {
	narrow := NewCamera(CameraConfig{
		Position: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1), VFov: 30, Aspect: 1,
	})
	wide := NewCamera(CameraConfig{
		Position: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1), VFov: 120, Aspect: 1,
	})

	edge := core.NewVec2(0, 1)
	cosNarrow := narrow.GenerateRay(edge).Direction.Dot(core.NewVec3(0, 0, -1))
	cosWide := wide.GenerateRay(edge).Direction.Dot(core.NewVec3(0, 0, -1))

	if cosWide >= cosNarrow {
		t.Errorf("Expected wider fov to spread edge rays further from the axis (cos %v vs %v)",
			cosWide, cosNarrow)
	}
}
