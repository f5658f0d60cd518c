package integrator

import (
	"math"

	"github.com/raytracing-go/skytracer/pkg/core"
	"github.com/raytracing-go/skytracer/pkg/scene"
)

const (
	// MaxBounces is the hard cap on path length. This bounds worst-case work
	// per pixel; it is a bias/variance trade-off, not a convergence check.
	MaxBounces = 8

	// surfaceBias offsets bounce origins along the normal to avoid
	// self-intersection
	surfaceBias = 1e-3

	// environmentScale boosts escaped-ray radiance
	environmentScale = 1.2
)

// PathTracer accumulates radiance along a fixed-length bounce loop.
type PathTracer struct {
	maxBounces int
}

// NewPathTracer creates a path tracer with the default bounce cap
func NewPathTracer() *PathTracer {
	return &PathTracer{maxBounces: MaxBounces}
}

// RayColor estimates the radiance arriving along a camera ray. Each bounce
// traces the ray, weighs the radiance emitted at the hit by the energy the
// path carried into it, and continues with the ray Shade produced for the
// next bounce. Paths whose energy reaches zero stop early.
func (pt *PathTracer) RayColor(ray core.Ray, sc *scene.Scene, sampler core.Sampler) core.Vec3 {
	color := core.Vec3{}
	for bounce := 0; bounce < pt.maxBounces; bounce++ {
		hit := sc.Trace(ray)
		next, emitted := Shade(ray, hit, sc.Environment, sampler)
		color = color.Add(ray.Energy.MultiplyVec(emitted))
		ray = next
		if ray.Energy.IsZero() {
			break
		}
	}
	return color
}

// Shade consumes one bounce. It returns the ray for the next bounce, with
// origin, direction and energy updated, together with the radiance emitted
// at this hit. Escaped rays return the environment sample and a dead ray;
// surface hits pick the specular or diffuse lobe by Russian roulette, or
// terminate the path when the roulette draw exceeds both reflectances.
func Shade(ray core.Ray, hit core.RayHit, env scene.Environment, sampler core.Sampler) (core.Ray, core.Vec3) {
	if hit.Escaped() {
		ray.Energy = core.Vec3{}
		return ray, env.Sample(ray.Direction).Multiply(environmentScale)
	}

	// Diffuse and specular reflectance may not sum above 1 in any channel
	albedo := core.One().Subtract(hit.Specular).Min(hit.Albedo)
	specChance := hit.Specular.Average()
	diffChance := albedo.Average()

	roulette := sampler.Get1D()
	switch {
	case roulette < specChance:
		// Phong-lobe importance sampling around the mirror direction. The
		// (alpha+2)/(alpha+1) factor keeps the estimator unbiased.
		alpha := smoothnessToPhongAlpha(hit.Smoothness)
		ray.Origin = hit.Position.Add(hit.Normal.Multiply(surfaceBias))
		ray.Direction = core.SampleHemisphere(ray.Direction.Reflect(hit.Normal), alpha, sampler.Get2D())
		f := (alpha + 2) / (alpha + 1)
		weight := core.Saturate(hit.Normal.Dot(ray.Direction) * f)
		ray.Energy = ray.Energy.MultiplyVec(hit.Specular.Multiply(weight / specChance))
	case diffChance > 0 && roulette < specChance+diffChance:
		ray.Origin = hit.Position.Add(hit.Normal.Multiply(surfaceBias))
		ray.Direction = core.SampleHemisphere(hit.Normal, 1.0, sampler.Get2D())
		ray.Energy = ray.Energy.MultiplyVec(albedo.Multiply(1.0 / diffChance))
	default:
		ray.Energy = core.Vec3{}
	}

	// The surface's own emission counts regardless of which branch was taken
	return ray, hit.Emission
}

// smoothnessToPhongAlpha maps smoothness in [0,1] to a Phong exponent in
// [1, 1000]
func smoothnessToPhongAlpha(smoothness float64) float64 {
	return math.Pow(1000.0, smoothness*smoothness)
}
