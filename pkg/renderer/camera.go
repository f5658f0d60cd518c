package renderer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/raytracing-go/skytracer/pkg/core"
	"github.com/raytracing-go/skytracer/pkg/geometry"
)

// Near and far planes only shape the inverse projection; ray distances are
// unbounded.
const (
	cameraNear = 0.1
	cameraFar  = 100.0
)

// CameraConfig describes a camera by position and orientation
type CameraConfig struct {
	Position core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3
	VFov     float64 // Vertical field of view in degrees
	Aspect   float64 // Width / height
}

// Camera maps normalized device coordinates to world-space rays using a
// camera-to-world matrix and an inverse projection matrix.
type Camera struct {
	CameraToWorld     mgl64.Mat4
	InverseProjection mgl64.Mat4
}

// NewCamera builds the camera matrices from a position/look-at description
func NewCamera(config CameraConfig) *Camera {
	up := config.Up
	if up.IsZero() {
		up = core.NewVec3(0, 1, 0)
	}

	view := mgl64.LookAtV(
		mgl64.Vec3{config.Position.X, config.Position.Y, config.Position.Z},
		mgl64.Vec3{config.LookAt.X, config.LookAt.Y, config.LookAt.Z},
		mgl64.Vec3{up.X, up.Y, up.Z},
	)
	proj := mgl64.Perspective(mgl64.DegToRad(config.VFov), config.Aspect, cameraNear, cameraFar)

	return &Camera{
		CameraToWorld:     view.Inv(),
		InverseProjection: proj.Inv(),
	}
}

// NewCameraFromMatrices wraps externally supplied camera matrices
func NewCameraFromMatrices(cameraToWorld, inverseProjection mgl64.Mat4) *Camera {
	return &Camera{CameraToWorld: cameraToWorld, InverseProjection: inverseProjection}
}

// GenerateRay maps a normalized device coordinate in [-1,1]^2 to a
// world-space ray with full energy. The origin is the camera position; the
// direction runs through the uv point on the image plane.
func (c *Camera) GenerateRay(uv core.Vec2) core.Ray {
	origin := geometry.TransformPoint(c.CameraToWorld, core.Vec3{})

	direction := geometry.TransformPoint(c.InverseProjection, core.NewVec3(uv.X, uv.Y, 0))
	direction = geometry.TransformDirection(c.CameraToWorld, direction).Normalize()

	return core.NewRay(origin, direction)
}
