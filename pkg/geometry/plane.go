package geometry

import "github.com/raytracing-go/skytracer/pkg/core"

// GroundPlane is the infinite plane y=0 with a fixed matte gray material.
type GroundPlane struct{}

// groundMaterial is shared by every point of the plane
var groundMaterial = core.Material{
	Albedo:     core.NewVec3(0.5, 0.5, 0.5),
	Specular:   core.NewVec3(0.03, 0.03, 0.03),
	Smoothness: 0.2,
}

// Intersect tests the ray against the plane and updates best if the plane is
// the closest hit so far. A ray parallel to the plane yields a non-finite t
// that fails the t > 0 comparison, so no explicit miss branch is needed.
func (GroundPlane) Intersect(ray core.Ray, best *core.RayHit) {
	t := -ray.Origin.Y / ray.Direction.Y
	if t > 0 && t < best.Distance {
		best.Distance = t
		best.Position = ray.At(t)
		best.Normal = core.NewVec3(0, 1, 0)
		best.Material = groundMaterial
	}
}
