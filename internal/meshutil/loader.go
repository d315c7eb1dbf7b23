// Package meshutil loads mesh assets and prepares them for rendering:
// merging sub-geometries, normalizing scale and position, and optionally
// decimating oversized meshes.
package meshutil

import (
	"errors"
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var (
	// ErrUnsupportedAsset is returned when the asset container holds no
	// renderable triangle geometry.
	ErrUnsupportedAsset = errors.New("unsupported asset: no triangle geometry")

	// ErrDegenerateMesh is returned when a mesh has zero extent on every
	// axis and cannot be normalized.
	ErrDegenerateMesh = errors.New("degenerate mesh: zero extent on all axes")
)

// smoothThresholdDeg merges normals across edges flatter than this angle when
// the asset ships without normals of its own.
const smoothThresholdDeg = 30

// Load reads a glTF or GLB container and merges every triangle primitive of
// every sub-mesh into a single mesh. Each primitive carries its own vertex
// index space, so faces are re-based as they are appended; documents with
// many named sub-geometries concatenate cleanly.
func Load(path string) (*fauxgl.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return Merge(doc)
}

// Merge flattens all triangle primitives of a glTF document into one mesh.
func Merge(doc *gltf.Document) (*fauxgl.Mesh, error) {
	var triangles []*fauxgl.Triangle
	hadNormals := true

	for _, m := range doc.Meshes {
		for _, p := range m.Primitives {
			if p.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := p.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("reading positions: %w", err)
			}

			var normals [][3]float32
			if ni, ok := p.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[ni], nil)
			}
			if len(normals) == 0 {
				hadNormals = false
			}

			var colors [][4]uint8
			if ci, ok := p.Attributes[gltf.COLOR_0]; ok {
				colors, _ = modeler.ReadColor(doc, doc.Accessors[ci], nil)
			}

			var indices []uint32
			if p.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("reading indices: %w", err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				t := &fauxgl.Triangle{
					V1: vertexAt(positions, normals, colors, indices[i]),
					V2: vertexAt(positions, normals, colors, indices[i+1]),
					V3: vertexAt(positions, normals, colors, indices[i+2]),
				}
				t.FixNormals()
				triangles = append(triangles, t)
			}
		}
	}

	if len(triangles) == 0 {
		return nil, ErrUnsupportedAsset
	}

	mesh := fauxgl.NewTriangleMesh(triangles)
	if !hadNormals {
		mesh.SmoothNormalsThreshold(fauxgl.Radians(smoothThresholdDeg))
	}
	return mesh, nil
}

func vertexAt(positions, normals [][3]float32, colors [][4]uint8, i uint32) fauxgl.Vertex {
	p := positions[i]
	v := fauxgl.Vertex{
		Position: fauxgl.V(float64(p[0]), float64(p[1]), float64(p[2])),
	}
	if int(i) < len(normals) {
		n := normals[i]
		v.Normal = fauxgl.V(float64(n[0]), float64(n[1]), float64(n[2]))
	}
	if int(i) < len(colors) {
		c := colors[i]
		v.Color = fauxgl.Color{
			R: float64(c[0]) / 255,
			G: float64(c[1]) / 255,
			B: float64(c[2]) / 255,
			A: float64(c[3]) / 255,
		}
	}
	return v
}
