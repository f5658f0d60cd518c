package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vec3 is an RGB color or 3D point in a scene file
type Vec3 [3]float64

// Config describes a full render: output settings, camera, environment
// light and scene content.
type Config struct {
	Render      RenderConfig      `yaml:"render"`
	Camera      CameraConfig      `yaml:"camera"`
	Environment EnvironmentConfig `yaml:"environment"`
	Light       LightConfig       `yaml:"light,omitempty"`
	Spheres     []SphereConfig    `yaml:"spheres,omitempty"`
	Meshes      []MeshConfig      `yaml:"meshes,omitempty"`
}

type RenderConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Frames   int     `yaml:"frames"`    // Frames to accumulate
	TileSize int     `yaml:"tile_size"` // Worker tile edge length
	Workers  int     `yaml:"workers"`   // 0 = CPU count
	Seed     float64 `yaml:"seed"`
	Output   string  `yaml:"output"`
}

type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	LookAt   Vec3    `yaml:"look_at"`
	Up       Vec3    `yaml:"up,omitempty"`
	Fov      float64 `yaml:"fov"` // Vertical field of view in degrees
}

// EnvironmentConfig selects either a lat-long image or a vertical gradient
type EnvironmentConfig struct {
	Image   string `yaml:"image,omitempty"`
	Zenith  Vec3   `yaml:"zenith,omitempty"`
	Horizon Vec3   `yaml:"horizon,omitempty"`
	Ground  Vec3   `yaml:"ground,omitempty"`
}

// LightConfig is the directional light descriptor. It is carried through to
// the scene for interface compatibility but does not influence shading.
type LightConfig struct {
	Direction Vec3       `yaml:"direction"`
	Intensity [4]float64 `yaml:"intensity"`
}

type SphereConfig struct {
	Position   Vec3    `yaml:"position"`
	Radius     float64 `yaml:"radius"`
	Albedo     Vec3    `yaml:"albedo"`
	Specular   Vec3    `yaml:"specular"`
	Smoothness float64 `yaml:"smoothness"`
	Emission   Vec3    `yaml:"emission,omitempty"`
}

type MeshConfig struct {
	OBJ       string  `yaml:"obj"`
	Translate Vec3    `yaml:"translate,omitempty"`
	RotateY   float64 `yaml:"rotate_y,omitempty"` // Degrees
	Scale     float64 `yaml:"scale,omitempty"`    // 0 means 1
}

// Default returns the configuration used when no scene file is given
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:    640,
			Height:   360,
			Frames:   32,
			TileSize: 64,
			Output:   "render.png",
		},
		Camera: CameraConfig{
			Position: Vec3{0, 2, 8},
			LookAt:   Vec3{0, 1, 0},
			Fov:      45,
		},
		Environment: EnvironmentConfig{
			Zenith:  Vec3{0.35, 0.55, 0.95},
			Horizon: Vec3{0.95, 0.95, 1.0},
			Ground:  Vec3{0.4, 0.35, 0.3},
		},
	}
}

// Load reads and validates a YAML scene file
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene file %s: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration as YAML
func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate checks the configuration for values the renderer cannot work with
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Render.Frames)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("fov must be in (0, 180), got %v", c.Camera.Fov)
	}
	for i, s := range c.Spheres {
		if s.Radius < 0 {
			return fmt.Errorf("sphere %d: radius must not be negative, got %v", i, s.Radius)
		}
		if s.Smoothness < 0 || s.Smoothness > 1 {
			return fmt.Errorf("sphere %d: smoothness must be in [0,1], got %v", i, s.Smoothness)
		}
	}
	for i, m := range c.Meshes {
		if m.OBJ == "" {
			return fmt.Errorf("mesh %d: obj path is required", i)
		}
	}
	return nil
}
