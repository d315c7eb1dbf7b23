package render

import (
	"github.com/fogleman/fauxgl"

	"github.com/fogwise/turntable/internal/lighting"
)

// rigShader shades fragments with every directional light in the rig. It has
// the shape of a single-light phong shader but accumulates one lambertian
// term per light, weighted so the total stays displayable; that keeps shading
// style identical across all views of a session.
type rigShader struct {
	Matrix      fauxgl.Matrix // view-projection * model, per view
	Model       fauxgl.Matrix // object rotation only, for normals
	Rig         lighting.Rig
	ObjectColor fauxgl.Color
}

func newRigShader(camera, model fauxgl.Matrix, rig lighting.Rig, objectColor fauxgl.Color) *rigShader {
	return &rigShader{
		Matrix:      camera.Mul(model),
		Model:       model,
		Rig:         rig,
		ObjectColor: objectColor,
	}
}

// Vertex implements fauxgl.Shader.
func (s *rigShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	v.Output = s.Matrix.MulPositionW(v.Position)
	// The model matrix is a pure rotation, so normals transform directly.
	v.Normal = s.Model.MulDirection(v.Normal).Normalize()
	return v
}

// Fragment implements fauxgl.Shader.
func (s *rigShader) Fragment(v fauxgl.Vertex) fauxgl.Color {
	color := s.ObjectColor
	if v.Color.A > 0 {
		color = v.Color
	}

	total := s.Rig.TotalIntensity()
	light := fauxgl.Gray(s.Rig.Ambient)
	for _, l := range s.Rig.Lights {
		diffuse := v.Normal.Dot(l.Direction)
		if diffuse <= 0 {
			continue
		}
		light = light.Add(fauxgl.Gray(diffuse * l.Intensity / total))
	}

	return color.Mul(light).Min(fauxgl.White).Alpha(color.A)
}
