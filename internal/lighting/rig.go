// Package lighting builds the fixed directional rig shared by every view in
// a render session, so shading stays comparable across the output set.
package lighting

import (
	"github.com/fogleman/fauxgl"

	"github.com/fogwise/turntable/internal/geom"
)

// Light is a single directional light. Direction points from the origin
// toward the light, which is the convention lambertian shading wants.
type Light struct {
	Name      string
	Direction fauxgl.Vector
	Intensity float64
}

// Rig is the full light set plus a flat ambient term. It is built once per
// invocation and never varies per view.
type Rig struct {
	Lights  []Light
	Ambient float64
}

// ambientLevel keeps unlit faces legible without washing out shading.
const ambientLevel = 0.35

// placements holds the hand-tuned positions and relative strengths:
// key strongest, fill and back-rim softer, side lights weakest.
var placements = []struct {
	name      string
	position  fauxgl.Vector
	intensity float64
}{
	{"key", fauxgl.V(2, 3, 2), 3.0},
	{"fill", fauxgl.V(-2, 2, -1), 1.5},
	{"back", fauxgl.V(0, 1, -3), 1.0},
	{"side-right", fauxgl.V(3, 0, 0), 0.8},
	{"side-left", fauxgl.V(-3, 0, 0), 0.8},
}

// NewRig builds the standard five-light rig. Each light is aimed at the
// origin through a look-at pose; its direction falls out of the pose rows.
func NewRig() Rig {
	origin := fauxgl.Vector{}
	up := fauxgl.Vector{Y: 1}

	lights := make([]Light, 0, len(placements))
	for _, p := range placements {
		pose := geom.LookAt(p.position, origin, up)
		lights = append(lights, Light{
			Name:      p.name,
			Direction: geom.Forward(pose).Negate(),
			Intensity: p.intensity,
		})
	}
	return Rig{Lights: lights, Ambient: ambientLevel}
}

// TotalIntensity sums the intensity of every light in the rig. Shaders use
// it to keep the accumulated diffuse term inside the displayable range.
func (r Rig) TotalIntensity() float64 {
	var total float64
	for _, l := range r.Lights {
		total += l.Intensity
	}
	return total
}
