package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raytracing-go/skytracer/pkg/core"
)

// Determinants below this threshold reject the triangle, which also culls
// triangles facing away from the ray.
const triangleEpsilon = 1e-8

// mirrorMaterial is shared by every mesh surface: flat-shaded, non-emissive,
// purely specular. Meshes deliberately carry no per-vertex normals or UVs.
var mirrorMaterial = core.Material{
	Specular:   core.NewVec3(0.65, 0.65, 0.65),
	Smoothness: 0.99,
}

// MeshObject references a window of the shared triangle index array and
// carries the transform that places its vertices in the world. Each
// consecutive index triple in [IndexOffset, IndexOffset+IndexCount) names
// one triangle.
type MeshObject struct {
	LocalToWorld mgl64.Mat4
	IndexOffset  int
	IndexCount   int
}

// Validate checks the index window against the shared index array
func (m *MeshObject) Validate(indexLen int) error {
	if m.IndexOffset < 0 || m.IndexCount < 0 || m.IndexOffset+m.IndexCount > indexLen {
		return fmt.Errorf("mesh index window [%d, %d) exceeds index array length %d",
			m.IndexOffset, m.IndexOffset+m.IndexCount, indexLen)
	}
	if m.IndexCount%3 != 0 {
		return fmt.Errorf("mesh index count %d is not a multiple of 3", m.IndexCount)
	}
	return nil
}

// Intersect tests the ray against every triangle of the object and updates
// best with the closest one found. Normals are flat per-triangle normals and
// are not guaranteed to face the viewer.
func (m *MeshObject) Intersect(ray core.Ray, vertices []core.Vec3, indices []uint32, best *core.RayHit) {
	for i := m.IndexOffset; i < m.IndexOffset+m.IndexCount; i += 3 {
		v0 := TransformPoint(m.LocalToWorld, vertices[indices[i]])
		v1 := TransformPoint(m.LocalToWorld, vertices[indices[i+1]])
		v2 := TransformPoint(m.LocalToWorld, vertices[indices[i+2]])

		t, ok := intersectTriangle(ray, v0, v1, v2)
		if ok && t > 0 && t < best.Distance {
			best.Distance = t
			best.Position = ray.At(t)
			best.Normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
			best.Material = mirrorMaterial
		}
	}
}

// intersectTriangle runs the Möller–Trumbore test with backface culling.
// Returns the hit distance along the ray.
func intersectTriangle(ray core.Ray, v0, v1, v2 core.Vec3) (float64, bool) {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det < triangleEpsilon {
		return 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(v0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	return edge2.Dot(qvec) * invDet, true
}

// TransformPoint applies an affine 4x4 matrix to a position
func TransformPoint(m mgl64.Mat4, p core.Vec3) core.Vec3 {
	out := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.NewVec3(out.X(), out.Y(), out.Z())
}

// TransformDirection applies an affine 4x4 matrix to a direction (w = 0)
func TransformDirection(m mgl64.Mat4, d core.Vec3) core.Vec3 {
	out := m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return core.NewVec3(out.X(), out.Y(), out.Z())
}
