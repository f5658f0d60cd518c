package renderer

import (
	"image"
	"testing"

	"github.com/rs/zerolog"

	"github.com/raytracing-go/skytracer/pkg/core"
	"github.com/raytracing-go/skytracer/pkg/geometry"
	"github.com/raytracing-go/skytracer/pkg/scene"
)

// skyCamera looks straight up so no ray can reach the ground plane
func skyCamera() *Camera {
	return NewCamera(CameraConfig{
		Position: core.NewVec3(0, 1, 0),
		LookAt:   core.NewVec3(0, 2, 0),
		Up:       core.NewVec3(0, 0, 1),
		VFov:     40,
		Aspect:   1,
	})
}

func TestRenderer_EmptySceneIsEnvironmentOnly(t *testing.T) {
	envColor := core.NewVec3(0.25, 0.5, 0.75)
	sc := scene.NewScene(&scene.SolidEnvironment{Color: envColor})
	config := Config{Width: 4, Height: 4, TileSize: 2}

	r := NewRenderer(sc, skyCamera(), config, zerolog.Nop())
	fb := r.RenderFrame(0, core.NewVec2(0.5, 0.5))

	want := envColor.Multiply(1.2)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); got.Subtract(want).Length() > 1e-12 {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestRenderer_DeterministicAcrossRunsAndTileSizes(t *testing.T) {
	sc := scene.NewScene(&scene.GradientEnvironment{
		Zenith:  core.NewVec3(0.2, 0.4, 0.8),
		Horizon: core.NewVec3(1, 1, 1),
		Ground:  core.NewVec3(0.1, 0.1, 0.1),
	})
	sc.AddSphere(geometry.NewSphere(core.NewVec3(0, 1, -3), 1.0, core.Material{
		Albedo:     core.NewVec3(0.7, 0.7, 0.7),
		Specular:   core.NewVec3(0.1, 0.1, 0.1),
		Smoothness: 0.5,
	}))
	camera := NewCamera(CameraConfig{
		Position: core.NewVec3(0, 1, 2),
		LookAt:   core.NewVec3(0, 1, -3),
		VFov:     60,
		Aspect:   1,
	})

	render := func(tileSize, workers int) *Framebuffer {
		config := Config{Width: 8, Height: 8, TileSize: tileSize, Workers: workers}
		return NewRenderer(sc, camera, config, zerolog.Nop()).RenderFrame(7, core.NewVec2(0.5, 0.5))
	}

	a := render(2, 1)
	b := render(2, 4)
	c := render(64, 4)

	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("Pixel %d differs across worker counts: %v vs %v", i, a.Pixels[i], b.Pixels[i])
		}
		if a.Pixels[i] != c.Pixels[i] {
			t.Fatalf("Pixel %d differs across tile sizes: %v vs %v", i, a.Pixels[i], c.Pixels[i])
		}
	}
}

func TestRenderer_RenderAccumulatesFrames(t *testing.T) {
	sc := scene.NewScene(&scene.SolidEnvironment{Color: core.NewVec3(0.5, 0.5, 0.5)})
	config := Config{Width: 2, Height: 2, Frames: 3, TileSize: 2, Workers: 1}

	fb := NewRenderer(sc, skyCamera(), config, zerolog.Nop()).Render()

	// Every frame sees only the environment, so the mean equals one frame
	want := core.NewVec3(0.5, 0.5, 0.5).Multiply(1.2)
	for i, p := range fb.Pixels {
		if p.Subtract(want).Length() > 1e-12 {
			t.Errorf("Pixel %d: expected %v, got %v", i, want, p)
		}
	}
}

func TestNewTileGrid(t *testing.T) {
	tiles := NewTileGrid(100, 50, 64)
	if len(tiles) != 2 {
		t.Fatalf("Expected 2 tiles, got %d", len(tiles))
	}
	if tiles[0] != image.Rect(0, 0, 64, 50) || tiles[1] != image.Rect(64, 0, 100, 50) {
		t.Errorf("Unexpected tile bounds: %v", tiles)
	}

	// Tiles cover every pixel exactly once
	covered := make(map[image.Point]bool)
	for _, tile := range NewTileGrid(10, 7, 3) {
		for y := tile.Min.Y; y < tile.Max.Y; y++ {
			for x := tile.Min.X; x < tile.Max.X; x++ {
				p := image.Pt(x, y)
				if covered[p] {
					t.Fatalf("Pixel %v covered twice", p)
				}
				covered[p] = true
			}
		}
	}
	if len(covered) != 70 {
		t.Errorf("Expected 70 covered pixels, got %d", len(covered))
	}
}

func TestFramebuffer_ToRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(1, 1, core.NewVec3(0, 4, 0)) // Above 1, must clamp

	img := fb.ToRGBA(1.0)

	// Row 0 is the bottom of the image, so (0,0) lands at image row 1
	if got := img.RGBAAt(0, 1); got.R != 255 || got.G != 0 || got.A != 255 {
		t.Errorf("Expected red pixel with alpha 255 at bottom-left, got %v", got)
	}
	if got := img.RGBAAt(1, 0); got.G != 255 {
		t.Errorf("Expected clamped green pixel at top-right, got %v", got)
	}
}

func TestAccumulator_Mean(t *testing.T) {
	acc := NewAccumulator(1, 1)

	frame := NewFramebuffer(1, 1)
	frame.Set(0, 0, core.NewVec3(1, 1, 1))
	acc.AddFrame(frame)

	frame2 := NewFramebuffer(1, 1)
	frame2.Set(0, 0, core.NewVec3(0, 0, 0))
	acc.AddFrame(frame2)

	if acc.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", acc.Frames())
	}
	got := acc.Result().At(0, 0)
	if got.Subtract(core.NewVec3(0.5, 0.5, 0.5)).Length() > 1e-12 {
		t.Errorf("Expected mean (0.5,0.5,0.5), got %v", got)
	}
}
