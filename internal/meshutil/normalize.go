package meshutil

import (
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/fogleman/simplify"
)

// zeroExtent is the largest bounding-box extent still treated as degenerate.
const zeroExtent = 1e-12

// Centroid returns the mean position over every triangle vertex.
func Centroid(mesh *fauxgl.Mesh) fauxgl.Vector {
	var sum fauxgl.Vector
	n := 0
	for _, t := range mesh.Triangles {
		sum = sum.Add(t.V1.Position).Add(t.V2.Position).Add(t.V3.Position)
		n += 3
	}
	if n == 0 {
		return fauxgl.Vector{}
	}
	return sum.DivScalar(float64(n))
}

// Normalize translates the mesh so its centroid sits at the origin and scales
// it uniformly so the largest axis-aligned extent is exactly 1. The mesh is
// modified in place. A mesh with zero extent on every axis fails with
// ErrDegenerateMesh before any division happens.
func Normalize(mesh *fauxgl.Mesh) error {
	size := mesh.BoundingBox().Size()
	maxExtent := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxExtent < zeroExtent {
		return ErrDegenerateMesh
	}

	scale := 1 / maxExtent
	m := fauxgl.Scale(fauxgl.V(scale, scale, scale)).
		Mul(fauxgl.Translate(Centroid(mesh).Negate()))
	mesh.Transform(m)
	return nil
}

// Decimate reduces the mesh below maxTriangles with quadric edge collapse.
// Meshes already under budget (or a non-positive budget) come back untouched.
// Normals are recomputed from the collapsed faces.
func Decimate(mesh *fauxgl.Mesh, maxTriangles int) *fauxgl.Mesh {
	if maxTriangles <= 0 || len(mesh.Triangles) <= maxTriangles {
		return mesh
	}

	src := make([]*simplify.Triangle, len(mesh.Triangles))
	for i, t := range mesh.Triangles {
		src[i] = simplify.NewTriangle(
			simplifyVector(t.V1.Position),
			simplifyVector(t.V2.Position),
			simplifyVector(t.V3.Position),
		)
	}

	factor := float64(maxTriangles) / float64(len(mesh.Triangles))
	reduced := simplify.NewMesh(src).Simplify(factor)

	out := make([]*fauxgl.Triangle, len(reduced.Triangles))
	for i, t := range reduced.Triangles {
		out[i] = fauxgl.NewTriangleForPoints(
			fauxgl.V(t.V1.X, t.V1.Y, t.V1.Z),
			fauxgl.V(t.V2.X, t.V2.Y, t.V2.Z),
			fauxgl.V(t.V3.X, t.V3.Y, t.V3.Z),
		)
	}
	result := fauxgl.NewTriangleMesh(out)
	result.SmoothNormalsThreshold(fauxgl.Radians(smoothThresholdDeg))
	return result
}

func simplifyVector(v fauxgl.Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
