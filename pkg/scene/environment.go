package scene

import (
	"math"

	"github.com/raytracing-go/skytracer/pkg/core"
)

// Environment supplies incoming radiance for rays that escape the scene
// without hitting geometry.
type Environment interface {
	Sample(direction core.Vec3) core.Vec3
}

// SphericalUV maps a direction to latitude-longitude texture coordinates.
// Theta ends up in [-1, 0] and phi in [-0.5, 0.5]; wraparound addressing in
// the texture lookup brings both into range. At the poles -direction.Z is
// negative zero and Atan2(+0, -0) is +Pi, so pole rays sample phi 0.5.
func SphericalUV(direction core.Vec3) (phi, theta float64) {
	theta = math.Acos(direction.Y) / -math.Pi
	phi = 0.5 * math.Atan2(direction.X, -direction.Z) / math.Pi
	return phi, theta
}

// TextureEnvironment samples a lat-long environment image bilinearly with
// wraparound addressing on both axes.
type TextureEnvironment struct {
	Width  int
	Height int
	Pixels []core.Vec3 // row-major, Width*Height
}

// NewTextureEnvironment wraps a decoded image as an environment map
func NewTextureEnvironment(width, height int, pixels []core.Vec3) *TextureEnvironment {
	return &TextureEnvironment{Width: width, Height: height, Pixels: pixels}
}

// Sample returns the bilinearly filtered radiance for a direction
func (e *TextureEnvironment) Sample(direction core.Vec3) core.Vec3 {
	u, v := SphericalUV(direction)

	// Texel-space coordinates with the half-texel offset of hardware samplers
	x := u*float64(e.Width) - 0.5
	y := v*float64(e.Height) - 0.5
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-float64(x0), y-float64(y0)

	c00 := e.texel(x0, y0)
	c10 := e.texel(x0+1, y0)
	c01 := e.texel(x0, y0+1)
	c11 := e.texel(x0+1, y0+1)

	top := c00.Multiply(1 - fx).Add(c10.Multiply(fx))
	bottom := c01.Multiply(1 - fx).Add(c11.Multiply(fx))
	return top.Multiply(1 - fy).Add(bottom.Multiply(fy))
}

// texel fetches a pixel with repeat addressing on both axes
func (e *TextureEnvironment) texel(x, y int) core.Vec3 {
	x = wrap(x, e.Width)
	y = wrap(y, e.Height)
	return e.Pixels[y*e.Width+x]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// GradientEnvironment blends between a zenith and a horizon color by
// elevation, with a separate color below the horizon.
type GradientEnvironment struct {
	Zenith  core.Vec3
	Horizon core.Vec3
	Ground  core.Vec3
}

// Sample returns the gradient radiance for a direction
func (e *GradientEnvironment) Sample(direction core.Vec3) core.Vec3 {
	elevation := direction.Y
	if elevation < 0 {
		return e.Ground
	}
	return e.Horizon.Multiply(1 - elevation).Add(e.Zenith.Multiply(elevation))
}

// SolidEnvironment returns the same radiance for every direction
type SolidEnvironment struct {
	Color core.Vec3
}

// Sample returns the constant radiance
func (e *SolidEnvironment) Sample(core.Vec3) core.Vec3 {
	return e.Color
}
