package scene

import (
	"github.com/raytracing-go/skytracer/pkg/core"
	"github.com/raytracing-go/skytracer/pkg/geometry"
)

// NewDefaultScene builds the demo scene: a ring of spheres with mixed
// materials on the ground plane under a daylight gradient, plus one emissive
// sphere so there is a light source besides the sky.
func NewDefaultScene() *Scene {
	sc := NewScene(&GradientEnvironment{
		Zenith:  core.NewVec3(0.35, 0.55, 0.95),
		Horizon: core.NewVec3(0.95, 0.95, 1.0),
		Ground:  core.NewVec3(0.4, 0.35, 0.3),
	})

	sc.AddSphere(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, core.Material{
		Specular:   core.NewVec3(0.9, 0.9, 0.9),
		Smoothness: 0.95,
	}))
	sc.AddSphere(geometry.NewSphere(core.NewVec3(-2.2, 0.7, 0.5), 0.7, core.Material{
		Albedo:     core.NewVec3(0.8, 0.2, 0.2),
		Specular:   core.NewVec3(0.04, 0.04, 0.04),
		Smoothness: 0.3,
	}))
	sc.AddSphere(geometry.NewSphere(core.NewVec3(2.2, 0.7, 0.5), 0.7, core.Material{
		Albedo:     core.NewVec3(0.2, 0.3, 0.8),
		Specular:   core.NewVec3(0.2, 0.2, 0.2),
		Smoothness: 0.7,
	}))
	sc.AddSphere(geometry.NewSphere(core.NewVec3(0.8, 0.4, 2.0), 0.4, core.Material{
		Albedo:     core.NewVec3(0.1, 0.7, 0.3),
		Specular:   core.NewVec3(0.05, 0.05, 0.05),
		Smoothness: 0.1,
	}))
	sc.AddSphere(geometry.NewSphere(core.NewVec3(-1.0, 0.3, 2.2), 0.3, core.Material{
		Emission: core.NewVec3(3.0, 2.6, 2.0),
	}))

	sc.Light = DirectionalLight{
		Direction: core.NewVec3(-0.3, -1, -0.2).Normalize(),
		Intensity: [4]float64{1, 0.95, 0.9, 1},
	}
	return sc
}
