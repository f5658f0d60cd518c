package geometry

import (
	"math"

	"github.com/raytracing-go/skytracer/pkg/core"
)

// Sphere is a scene sphere with its own material. Immutable for the duration
// of a frame.
type Sphere struct {
	Center core.Vec3
	Radius float64
	core.Material
}

// NewSphere creates a sphere at the given center
func NewSphere(center core.Vec3, radius float64, material core.Material) Sphere {
	return Sphere{Center: center, Radius: radius, Material: material}
}

// Intersect tests the ray against the sphere and updates best if the sphere
// is the closest hit so far. Uses the projected-midpoint form of the
// quadratic: p1 is the distance along the ray to the closest approach, p2sqr
// the squared half-chord. Negative p2sqr means the ray misses entirely.
func (s *Sphere) Intersect(ray core.Ray, best *core.RayHit) {
	d := ray.Origin.Subtract(s.Center)
	p1 := -ray.Direction.Dot(d)
	p2sqr := p1*p1 - d.Dot(d) + s.Radius*s.Radius
	if p2sqr < 0 {
		return
	}

	// Smaller positive root if the origin is outside, larger root otherwise
	p2 := math.Sqrt(p2sqr)
	t := p1 - p2
	if t <= 0 {
		t = p1 + p2
	}

	if t > 0 && t < best.Distance {
		best.Distance = t
		best.Position = ray.At(t)
		best.Normal = best.Position.Subtract(s.Center).Normalize()
		best.Material = s.Material
	}
}
