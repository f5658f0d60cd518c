package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/raytracing-go/skytracer/pkg/core"
)

// MeshData contains triangle geometry loaded from an OBJ file, ready to be
// appended to a scene's shared vertex/index buffers.
type MeshData struct {
	Vertices []core.Vec3
	Indices  []uint32
}

// LoadOBJ loads a Wavefront OBJ file. Only vertex positions and faces are
// read; normals, texture coordinates and materials are ignored because mesh
// surfaces use a fixed material with flat per-triangle normals. Faces with
// more than three vertices are triangulated as a fan.
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	mesh, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return mesh, nil
}

// ParseOBJ reads OBJ geometry from a stream
func ParseOBJ(r io.Reader) (*MeshData, error) {
	mesh := &MeshData{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNum)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad vertex coordinate %q", lineNum, fields[i+1])
				}
				coords[i] = v
			}
			mesh.Vertices = append(mesh.Vertices, core.NewVec3(coords[0], coords[1], coords[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			indices := make([]uint32, 0, len(fields)-1)
			for _, field := range fields[1:] {
				idx, err := parseFaceIndex(field, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				indices = append(indices, idx)
			}
			// Fan triangulation for quads and larger polygons
			for i := 1; i+1 < len(indices); i++ {
				mesh.Indices = append(mesh.Indices, indices[0], indices[i], indices[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	return mesh, nil
}

// parseFaceIndex converts one face vertex reference ("7", "7/1", "7//3",
// "-1") to a zero-based vertex index
func parseFaceIndex(field string, vertexCount int) (uint32, error) {
	// Texture and normal references after the first slash are ignored
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		field = field[:slash]
	}
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", field)
	}
	if idx < 0 {
		// Negative indices are relative to the end of the vertex list
		idx = vertexCount + idx + 1
	}
	if idx < 1 || idx > vertexCount {
		return 0, fmt.Errorf("face index %d out of range (have %d vertices)", idx, vertexCount)
	}
	return uint32(idx - 1), nil
}
