package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raytracing-go/skytracer/pkg/config"
	"github.com/raytracing-go/skytracer/pkg/core"
	"github.com/raytracing-go/skytracer/pkg/geometry"
	"github.com/raytracing-go/skytracer/pkg/loaders"
	"github.com/raytracing-go/skytracer/pkg/renderer"
	"github.com/raytracing-go/skytracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "YAML scene file (empty = built-in default scene)")
	output := flag.String("out", "", "Output PNG path (overrides the scene file setting)")
	verbose := flag.Bool("v", false, "Enable per-frame debug logging")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Skytracer")
		fmt.Println("Usage: skytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *scenePath != "" {
		loaded, err := config.Load(*scenePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *scenePath).Msg("failed to load scene")
		}
		cfg = loaded
	}
	if *output != "" {
		cfg.Render.Output = *output
	}

	var sc *scene.Scene
	if *scenePath != "" {
		built, err := buildScene(cfg, filepath.Dir(*scenePath))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build scene")
		}
		sc = built
	} else {
		log.Info().Msg("no scene file given, using built-in default scene")
		sc = scene.NewDefaultScene()
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		Position: vec3(cfg.Camera.Position),
		LookAt:   vec3(cfg.Camera.LookAt),
		Up:       vec3(cfg.Camera.Up),
		VFov:     cfg.Camera.Fov,
		Aspect:   float64(cfg.Render.Width) / float64(cfg.Render.Height),
	})

	r := renderer.NewRenderer(sc, camera, renderer.Config{
		Width:    cfg.Render.Width,
		Height:   cfg.Render.Height,
		Frames:   cfg.Render.Frames,
		TileSize: cfg.Render.TileSize,
		Workers:  cfg.Render.Workers,
		Seed:     cfg.Render.Seed,
	}, log.Logger)

	log.Info().
		Int("width", cfg.Render.Width).
		Int("height", cfg.Render.Height).
		Int("frames", cfg.Render.Frames).
		Msg("rendering")

	start := time.Now()
	fb := r.Render()
	log.Info().Dur("elapsed", time.Since(start)).Msg("render complete")

	if err := writePNG(cfg.Render.Output, fb); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Render.Output).Msg("failed to write image")
	}
	log.Info().Str("path", cfg.Render.Output).Msg("image saved")
}

// buildScene assembles a scene from its configuration. Relative asset paths
// resolve against the scene file's directory.
func buildScene(cfg *config.Config, baseDir string) (*scene.Scene, error) {
	env, err := buildEnvironment(cfg.Environment, baseDir)
	if err != nil {
		return nil, err
	}
	sc := scene.NewScene(env)

	sc.Light = scene.DirectionalLight{
		Direction: vec3(cfg.Light.Direction),
		Intensity: cfg.Light.Intensity,
	}

	for _, s := range cfg.Spheres {
		sc.AddSphere(geometry.NewSphere(vec3(s.Position), s.Radius, core.Material{
			Albedo:     vec3(s.Albedo),
			Specular:   vec3(s.Specular),
			Smoothness: s.Smoothness,
			Emission:   vec3(s.Emission),
		}))
	}

	for i, m := range cfg.Meshes {
		mesh, err := loaders.LoadOBJ(resolvePath(baseDir, m.OBJ))
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		if err := sc.AddMesh(meshTransform(m), mesh.Vertices, mesh.Indices); err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
	}
	return sc, nil
}

func buildEnvironment(cfg config.EnvironmentConfig, baseDir string) (scene.Environment, error) {
	if cfg.Image != "" {
		return loaders.LoadEnvironment(resolvePath(baseDir, cfg.Image))
	}
	return &scene.GradientEnvironment{
		Zenith:  vec3(cfg.Zenith),
		Horizon: vec3(cfg.Horizon),
		Ground:  vec3(cfg.Ground),
	}, nil
}

// meshTransform composes translate * rotateY * scale, applied scale-first
func meshTransform(m config.MeshConfig) mgl64.Mat4 {
	scale := m.Scale
	if scale == 0 {
		scale = 1
	}
	return mgl64.Translate3D(m.Translate[0], m.Translate[1], m.Translate[2]).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(m.RotateY))).
		Mul4(mgl64.Scale3D(scale, scale, scale))
}

func writePNG(path string, fb *renderer.Framebuffer) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, fb.ToRGBA(2.0))
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

func vec3(v config.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
