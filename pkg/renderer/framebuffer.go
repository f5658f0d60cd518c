package renderer

import (
	"image"
	"image/color"

	"github.com/raytracing-go/skytracer/pkg/core"
)

// Framebuffer is a grid of linear RGB radiance values, one per pixel. RGB is
// unclamped and may exceed 1; alpha is always 1. Row 0 is the bottom of the
// image.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set writes the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// ToRGBA converts the framebuffer to an 8-bit image with gamma correction.
// Tone mapping beyond clamp-and-gamma is an external concern. The vertical
// axis is flipped so row 0 ends up at the bottom of the PNG.
func (fb *Framebuffer) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y).Clamp(0, 1).GammaCorrect(gamma)
			img.SetRGBA(x, fb.Height-1-y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}

// Accumulator keeps a running mean of successive frames for progressive
// refinement. Each AddFrame call folds one frame into the average.
type Accumulator struct {
	mean   *Framebuffer
	frames int
}

// NewAccumulator creates an accumulator for frames of the given size
func NewAccumulator(width, height int) *Accumulator {
	return &Accumulator{mean: NewFramebuffer(width, height)}
}

// AddFrame folds a frame into the running mean
func (a *Accumulator) AddFrame(frame *Framebuffer) {
	a.frames++
	blend := 1.0 / float64(a.frames)
	for i, p := range frame.Pixels {
		a.mean.Pixels[i] = a.mean.Pixels[i].Multiply(1 - blend).Add(p.Multiply(blend))
	}
}

// Frames returns how many frames have been accumulated
func (a *Accumulator) Frames() int {
	return a.frames
}

// Result returns the current mean image
func (a *Accumulator) Result() *Framebuffer {
	return a.mean
}
