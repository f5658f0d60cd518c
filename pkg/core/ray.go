package core

// Ray represents a ray with an origin, a direction, and the RGB throughput
// ("energy") the path still carries. Energy starts at (1,1,1) and only ever
// shrinks; a ray with zero energy contributes nothing and can be dropped.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Energy    Vec3
}

// NewRay creates a new ray with full energy
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Energy: One()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
