package renderer

import (
	"image"
	"time"

	"github.com/rs/zerolog"

	"github.com/raytracing-go/skytracer/pkg/core"
	"github.com/raytracing-go/skytracer/pkg/integrator"
	"github.com/raytracing-go/skytracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Width    int     // Image width in pixels
	Height   int     // Image height in pixels
	Frames   int     // Frames to accumulate
	TileSize int     // Tile edge length for the worker pool
	Workers  int     // Parallel workers (0 = CPU count)
	Seed     float64 // Base seed for the per-pixel samplers
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:    640,
		Height:   360,
		Frames:   32,
		TileSize: 64,
		Workers:  0,
		Seed:     0,
	}
}

// Renderer drives the per-pixel path tracing kernel over the image, one
// independent evaluation per pixel per frame.
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator *integrator.PathTracer
	config     Config
	logger     zerolog.Logger
}

// NewRenderer creates a renderer for a scene and camera
func NewRenderer(sc *scene.Scene, camera *Camera, config Config, logger zerolog.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	return &Renderer{
		scene:      sc,
		camera:     camera,
		integrator: integrator.NewPathTracer(),
		config:     config,
		logger:     logger,
	}
}

// RenderBounds evaluates every pixel inside bounds and writes the results to
// the framebuffer. Each pixel gets its own sampler seeded from (pixel, seed)
// so the result is independent of how bounds are scheduled across workers.
func (r *Renderer) RenderBounds(fb *Framebuffer, bounds image.Rectangle, seed float64, jitter core.Vec2) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := core.NewVec2(float64(x), float64(y))
			sampler := core.NewPixelSampler(pixel, seed)

			uv := core.NewVec2(
				(pixel.X+jitter.X)/float64(r.config.Width)*2.0-1.0,
				(pixel.Y+jitter.Y)/float64(r.config.Height)*2.0-1.0,
			)
			ray := r.camera.GenerateRay(uv)

			fb.Set(x, y, r.integrator.RayColor(ray, r.scene, sampler))
		}
	}
}

// RenderFrame renders one full frame in parallel tiles
func (r *Renderer) RenderFrame(seed float64, jitter core.Vec2) *Framebuffer {
	fb := NewFramebuffer(r.config.Width, r.config.Height)
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize)

	pool := NewWorkerPool(r, r.config.Workers, len(tiles))
	pool.Start()
	for i, bounds := range tiles {
		pool.SubmitTask(TileTask{
			TaskID: i,
			Bounds: bounds,
			Frame:  fb,
			Seed:   seed,
			Jitter: jitter,
		})
	}
	go pool.Stop()

	for range tiles {
		if _, ok := pool.GetResult(); !ok {
			break
		}
	}
	return fb
}

// Render accumulates the configured number of frames, each with a fresh seed
// and sub-pixel jitter, and returns the running mean.
func (r *Renderer) Render() *Framebuffer {
	acc := NewAccumulator(r.config.Width, r.config.Height)

	// Frame seeds and jitters come from the same deterministic hash the
	// pixels use, keyed off an off-grid coordinate
	frameSampler := core.NewPixelSampler(core.NewVec2(0.5, 0.5), r.config.Seed)

	for frame := 0; frame < r.config.Frames; frame++ {
		start := time.Now()
		seed := r.config.Seed + frameSampler.Get1D()
		jitter := frameSampler.Get2D()

		acc.AddFrame(r.RenderFrame(seed, jitter))

		r.logger.Debug().
			Int("frame", frame+1).
			Int("frames", r.config.Frames).
			Dur("elapsed", time.Since(start)).
			Msg("frame rendered")
	}
	return acc.Result()
}
