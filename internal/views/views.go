// Package views generates the ordered table of canonical viewpoints rendered
// for each asset. The table order is the filename order downstream consumers
// rely on.
package views

import (
	"fmt"
	"math"

	"github.com/fogleman/fauxgl"

	"github.com/fogwise/turntable/internal/geom"
)

// CameraForward is the fixed direction the camera looks along. The camera
// never moves; every view is produced by rotating the object instead.
var CameraForward = fauxgl.Vector{Z: -1}

// ViewSpec describes one canonical view: the rigid rotation applied to the
// object before rasterizing, and the human-readable label for the result.
type ViewSpec struct {
	Index    int
	Label    string
	Rotation fauxgl.Matrix
}

// Strategy produces an ordered view table.
type Strategy interface {
	Name() string
	Views() []ViewSpec
}

// ForCount selects the strategy for a requested view count: 8 maps to cube
// corners, 12 to the strategic table, anything else to a uniform fan.
func ForCount(n int) Strategy {
	switch n {
	case 8:
		return CubeCorners{}
	case 12:
		return Strategic12{}
	default:
		return UniformFan{Count: n}
	}
}

// CubeCorners rotates each corner of the unit cube onto the camera axis,
// giving eight maximally distinct three-quarter angles.
type CubeCorners struct{}

var corners = [8][3]float64{
	{-1, -1, -1},
	{-1, -1, 1},
	{-1, 1, -1},
	{-1, 1, 1},
	{1, -1, -1},
	{1, -1, 1},
	{1, 1, -1},
	{1, 1, 1},
}

// Name implements Strategy.
func (CubeCorners) Name() string { return "cube-corners" }

// Views implements Strategy.
func (CubeCorners) Views() []ViewSpec {
	specs := make([]ViewSpec, 0, len(corners))
	for i, c := range corners {
		dir := fauxgl.V(c[0], c[1], c[2])
		specs = append(specs, ViewSpec{
			Index:    i,
			Label:    cornerLabel(c),
			Rotation: geom.RotationFromVectors(dir, CameraForward),
		})
	}
	return specs
}

func cornerLabel(c [3]float64) string {
	sign := func(v float64, axis string) string {
		if v < 0 {
			return "-" + axis
		}
		return "+" + axis
	}
	return "Corner " + sign(c[0], "X") + sign(c[1], "Y") + sign(c[2], "Z")
}

// Strategic12 is the published twelve-view table: four cardinal rotations
// about the vertical axis, top and bottom, and six oblique corner views.
type Strategic12 struct{}

// Name implements Strategy.
func (Strategic12) Name() string { return "strategic-12" }

// Views implements Strategy.
func (Strategic12) Views() []ViewSpec {
	yaw := fauxgl.Vector{Y: 1}
	pitch := fauxgl.Vector{X: 1}

	specs := make([]ViewSpec, 0, 12)
	for i, label := range [...]string{"Front", "Right", "Back", "Left"} {
		specs = append(specs, ViewSpec{
			Index:    i,
			Label:    label,
			Rotation: fauxgl.Rotate(yaw, float64(i)*math.Pi/2),
		})
	}

	specs = append(specs,
		ViewSpec{Index: 4, Label: "Top", Rotation: fauxgl.Rotate(pitch, -math.Pi/2)},
		ViewSpec{Index: 5, Label: "Bottom", Rotation: fauxgl.Rotate(pitch, math.Pi/2)},
	)

	obliques := []struct {
		h, v  float64
		label string
	}{
		{1 * math.Pi / 4, math.Pi / 6, "Front-Top-Right"},
		{3 * math.Pi / 4, math.Pi / 6, "Back-Top-Right"},
		{5 * math.Pi / 4, math.Pi / 6, "Back-Top-Left"},
		{7 * math.Pi / 4, math.Pi / 6, "Front-Top-Left"},
		{1 * math.Pi / 4, -math.Pi / 6, "Front-Bottom-Right"},
		{5 * math.Pi / 4, -math.Pi / 6, "Back-Bottom-Left"},
	}
	for i, o := range obliques {
		specs = append(specs, ViewSpec{
			Index: 6 + i,
			Label: o.label,
			// Tilt about the horizontal axis first, then swing around the
			// vertical axis.
			Rotation: fauxgl.Rotate(yaw, o.h).Mul(fauxgl.Rotate(pitch, o.v)),
		})
	}
	return specs
}

// UniformFan spreads Count equally spaced rotations about the vertical axis.
type UniformFan struct {
	Count int
}

// Name implements Strategy.
func (UniformFan) Name() string { return "uniform-fan" }

// Views implements Strategy.
func (f UniformFan) Views() []ViewSpec {
	if f.Count <= 0 {
		return nil
	}
	yaw := fauxgl.Vector{Y: 1}
	specs := make([]ViewSpec, 0, f.Count)
	for i := 0; i < f.Count; i++ {
		theta := 2 * math.Pi * float64(i) / float64(f.Count)
		specs = append(specs, ViewSpec{
			Index:    i,
			Label:    fmt.Sprintf("View %d", i+1),
			Rotation: fauxgl.Rotate(yaw, theta),
		})
	}
	return specs
}
