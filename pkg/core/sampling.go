package core

import "math"

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// Hash constants of the classic sin-fract pixel hash. The divisor scales the
// per-call counter before it multiplies the pixel hash.
const (
	hashScale   = 43758.5453
	seedDivisor = 100.0
)

var hashVector = Vec2{X: 12.9898, Y: 78.233}

// PixelSampler produces a reproducible pseudo-random stream for one pixel.
// The sequence is a pure function of (pixel coordinate, initial seed, call
// order): each call hashes the current seed counter against the pixel
// coordinate and advances the counter by exactly one. Per-pixel value state,
// never shared between pixels, so concurrent pixel evaluations cannot race.
type PixelSampler struct {
	pixel Vec2
	seed  float64
}

// NewPixelSampler creates a sampler for the given pixel coordinate and
// caller-supplied seed (typically a frame counter)
func NewPixelSampler(pixel Vec2, seed float64) *PixelSampler {
	return &PixelSampler{pixel: pixel, seed: seed}
}

// Get1D returns the next pseudo-random float64 in [0, 1)
func (s *PixelSampler) Get1D() float64 {
	result := Fract(math.Sin(s.seed/seedDivisor*s.pixel.Dot(hashVector)) * hashScale)
	s.seed++
	return result
}

// Get2D returns the next two pseudo-random values in [0, 1)
func (s *PixelSampler) Get2D() Vec2 {
	return Vec2{X: s.Get1D(), Y: s.Get1D()}
}

// Seed returns the current value of the seed counter
func (s *PixelSampler) Seed() float64 {
	return s.seed
}

// SampleHemisphere generates a direction in the hemisphere around the given
// axis, distributed proportionally to cos(θ)^alpha. Alpha 1 gives a
// cosine-weighted hemisphere; large alpha concentrates samples around the
// axis for sharp specular lobes.
func SampleHemisphere(axis Vec3, alpha float64, sample Vec2) Vec3 {
	cosTheta := math.Pow(sample.X, 1.0/(alpha+1.0))
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	phi := 2.0 * math.Pi * sample.Y

	tangent, binormal := tangentSpace(axis)

	// Local direction with the axis as Z, transformed to world space
	return tangent.Multiply(math.Cos(phi) * sinTheta).
		Add(binormal.Multiply(math.Sin(phi) * sinTheta)).
		Add(axis.Multiply(cosTheta))
}

// tangentSpace builds an orthonormal basis around a unit vector. The helper
// vector is world X unless the normal is nearly parallel to it.
func tangentSpace(normal Vec3) (tangent, binormal Vec3) {
	helper := NewVec3(1, 0, 0)
	if math.Abs(normal.X) > 0.99 {
		helper = NewVec3(0, 0, 1)
	}
	tangent = normal.Cross(helper).Normalize()
	binormal = normal.Cross(tangent).Normalize()
	return tangent, binormal
}
