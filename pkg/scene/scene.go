package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/raytracing-go/skytracer/pkg/core"
	"github.com/raytracing-go/skytracer/pkg/geometry"
)

// DirectionalLight is accepted as a scene input for compatibility with the
// upload format but is not consumed by the shading model. Intensity is RGBA.
type DirectionalLight struct {
	Direction core.Vec3
	Intensity [4]float64
}

// Scene holds everything a frame needs: the ground plane, spheres, mesh
// objects with their shared vertex/index buffers, the environment light and
// the (unused) directional light. All of it is read-only for the duration of
// a frame and may be shared freely across concurrent pixel evaluations.
type Scene struct {
	Spheres  []geometry.Sphere
	Meshes   []geometry.MeshObject
	Vertices []core.Vec3
	Indices  []uint32

	Environment Environment
	Light       DirectionalLight

	plane geometry.GroundPlane
}

// NewScene creates an empty scene lit by the given environment
func NewScene(env Environment) *Scene {
	return &Scene{Environment: env}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(sphere geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// AddMesh appends mesh geometry to the shared buffers and registers a mesh
// object covering it. Vertex indices are rebased onto the shared vertex
// array.
func (s *Scene) AddMesh(transform mgl64.Mat4, vertices []core.Vec3, indices []uint32) error {
	base := uint32(len(s.Vertices))
	mesh := geometry.MeshObject{
		LocalToWorld: transform,
		IndexOffset:  len(s.Indices),
		IndexCount:   len(indices),
	}
	if err := mesh.Validate(len(s.Indices) + len(indices)); err != nil {
		return err
	}

	s.Vertices = append(s.Vertices, vertices...)
	for _, idx := range indices {
		s.Indices = append(s.Indices, base+idx)
	}
	s.Meshes = append(s.Meshes, mesh)
	return nil
}

// Trace tests the ray against the ground plane, every sphere and every mesh
// triangle and returns the closest positive-distance hit. If nothing is hit
// the returned record keeps its +Inf distance, meaning the ray escaped to
// the environment. Candidates must beat the current best strictly, so the
// first hit found at equal distance persists.
func (s *Scene) Trace(ray core.Ray) core.RayHit {
	best := core.NewRayHit()
	s.plane.Intersect(ray, &best)
	for i := range s.Spheres {
		s.Spheres[i].Intersect(ray, &best)
	}
	for i := range s.Meshes {
		s.Meshes[i].Intersect(ray, s.Vertices, s.Indices, &best)
	}
	return best
}
