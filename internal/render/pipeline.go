// Package render drives the offscreen rasterization pipeline: it assembles a
// scene from a normalized mesh, the lighting rig, and a fixed camera, then
// walks the view table writing one PNG per view.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"go.uber.org/zap"

	"github.com/fogwise/turntable/internal/annotate"
	"github.com/fogwise/turntable/internal/config"
	"github.com/fogwise/turntable/internal/lighting"
	"github.com/fogwise/turntable/internal/logger"
	"github.com/fogwise/turntable/internal/meshutil"
	"github.com/fogwise/turntable/internal/views"
)

// The camera is fixed for every view: it sits on the +Z axis looking at the
// origin and the object rotates instead. That is equivalent to orbiting the
// camera but never needs a per-view look-at.
const (
	cameraDistance = 1.8
	cameraFOV      = 60 // vertical, degrees
	cameraNear     = 0.05
	cameraFar      = 100
)

// Options control a single render invocation. Every parameter is passed per
// call; nothing is retained between invocations.
type Options struct {
	OutDir       string
	Views        int
	Size         int
	Supersample  int
	Background   fauxgl.Color
	ObjectColor  fauxgl.Color
	Annotate     bool
	MaxTriangles int
}

// DefaultOptions mirrors the config defaults for library callers.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig translates the loaded configuration into render options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		OutDir:       cfg.Render.OutDir,
		Views:        cfg.Render.Views,
		Size:         cfg.Render.Size,
		Supersample:  cfg.Render.Supersample,
		Background:   fauxgl.HexColor(cfg.Render.Background),
		ObjectColor:  fauxgl.HexColor(cfg.Render.ObjectColor),
		Annotate:     cfg.Render.Annotate,
		MaxTriangles: cfg.Render.MaxTriangles,
	}
}

func (o Options) withDefaults() Options {
	if o.Views <= 0 {
		o.Views = 12
	}
	if o.Size <= 0 {
		o.Size = 768
	}
	if o.Supersample <= 0 {
		o.Supersample = 1
	}
	if o.OutDir == "" {
		o.OutDir = "renders"
	}
	if o.Background == (fauxgl.Color{}) {
		o.Background = fauxgl.White
	}
	if o.ObjectColor == (fauxgl.Color{}) {
		o.ObjectColor = fauxgl.HexColor("777777")
	}
	return o
}

// RenderError reports a failure while rasterizing or persisting one view.
// Views written before the failing index remain on disk, but the output
// directory must not be treated as complete.
type RenderError struct {
	ViewIndex int
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering view %d: %v", e.ViewIndex, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Result describes one written view.
type Result struct {
	Index         int
	Label         string
	Path          string
	AnnotatedPath string // empty when annotation is disabled or failed
}

// RenderAsset loads, normalizes, and renders the mesh at path.
func RenderAsset(path string, opts Options) ([]Result, error) {
	opts = opts.withDefaults()

	mesh, err := meshutil.Load(path)
	if err != nil {
		return nil, err
	}
	if decimated := meshutil.Decimate(mesh, opts.MaxTriangles); decimated != mesh {
		logger.Info("decimated mesh",
			zap.Int("from", len(mesh.Triangles)),
			zap.Int("to", len(decimated.Triangles)))
		mesh = decimated
	}
	if err := meshutil.Normalize(mesh); err != nil {
		return nil, err
	}
	return RenderMesh(mesh, opts)
}

// RenderMesh renders an already-normalized mesh. It is strictly sequential:
// one rasterization context is acquired for the whole invocation and released
// on every exit path, including a mid-loop failure.
func RenderMesh(mesh *fauxgl.Mesh, opts Options) ([]Result, error) {
	opts = opts.withDefaults()

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	strategy := views.ForCount(opts.Views)
	table := strategy.Views()
	if len(table) > opts.Views {
		table = table[:opts.Views]
	}

	sc := newScene(mesh, opts)
	defer sc.release()

	logger.Info("rendering views",
		zap.String("strategy", strategy.Name()),
		zap.Int("count", len(table)),
		zap.Int("size", opts.Size),
		zap.String("out", opts.OutDir))

	results := make([]Result, 0, len(table))
	for _, view := range table {
		img := sc.rasterize(view.Rotation)

		path := filepath.Join(opts.OutDir, fmt.Sprintf("view_%03d.png", view.Index))
		if err := writePNG(path, img); err != nil {
			return results, &RenderError{ViewIndex: view.Index, Err: err}
		}
		logger.Debug("wrote view", zap.String("path", path), zap.String("label", view.Label))

		res := Result{Index: view.Index, Label: view.Label, Path: path}
		if opts.Annotate {
			dst := annotate.OutputPath(path)
			if err := annotate.Annotate(path, view.Label, dst); err != nil {
				logger.Warn("annotation failed", zap.Int("view", view.Index), zap.Error(err))
			} else {
				res.AnnotatedPath = dst
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// scene bundles everything one invocation needs. Nothing in it outlives the
// call, so repeated invocations cannot interfere with each other.
type scene struct {
	mesh    *fauxgl.Mesh
	rig     lighting.Rig
	camera  fauxgl.Matrix
	context *fauxgl.Context
	opts    Options
}

func newScene(mesh *fauxgl.Mesh, opts Options) *scene {
	eye := fauxgl.V(0, 0, cameraDistance)
	center := fauxgl.Vector{}
	up := fauxgl.Vector{Y: 1}
	camera := fauxgl.LookAt(eye, center, up).
		Perspective(cameraFOV, 1, cameraNear, cameraFar)

	side := opts.Size * opts.Supersample
	return &scene{
		mesh:    mesh,
		rig:     lighting.NewRig(),
		camera:  camera,
		context: fauxgl.NewContext(side, side),
		opts:    opts,
	}
}

// rasterize draws the mesh under one view rotation and returns the finished
// frame, downsampled to the requested size when supersampling is on.
func (sc *scene) rasterize(rotation fauxgl.Matrix) image.Image {
	sc.context.ClearDepthBuffer()
	sc.context.ClearColorBufferWith(sc.opts.Background)
	sc.context.Shader = newRigShader(sc.camera, rotation, sc.rig, sc.opts.ObjectColor)
	sc.context.DrawMesh(sc.mesh)

	img := sc.context.Image()
	if sc.opts.Supersample > 1 {
		img = resize.Resize(uint(sc.opts.Size), uint(sc.opts.Size), img, resize.Lanczos3)
	}
	return img
}

// release drops the scene's references to the context and mesh. The context
// is plain memory; there is no handle to close.
func (sc *scene) release() {
	sc.context = nil
	sc.mesh = nil
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
