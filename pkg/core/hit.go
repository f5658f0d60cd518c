package core

import "math"

// Material describes the surface response at a hit point.
// Albedo and Specular are reflectances in [0,1] per channel, Smoothness in
// [0,1] controls the sharpness of the specular lobe, Emission is radiance
// emitted by the surface itself.
type Material struct {
	Albedo     Vec3
	Specular   Vec3
	Smoothness float64
	Emission   Vec3
}

// RayHit records the closest intersection found for a ray.
// Distance is +Inf until an intersection is recorded; a RayHit that still
// has infinite distance after tracing means the ray escaped to the
// environment.
type RayHit struct {
	Distance float64
	Position Vec3
	Normal   Vec3
	Material
}

// NewRayHit returns a hit record with no intersection yet
func NewRayHit() RayHit {
	return RayHit{Distance: math.Inf(1)}
}

// Escaped reports whether the ray missed all geometry
func (h RayHit) Escaped() bool {
	return math.IsInf(h.Distance, 1)
}
