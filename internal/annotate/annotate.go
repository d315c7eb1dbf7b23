// Package annotate composites view labels onto rendered images so a consumer
// looking at many views at once can tell them apart. Originals are never
// overwritten; labeled copies go to an annotated/ subdirectory.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	fontSize  = 36
	topMargin = 10
	padding   = 10
)

// systemFonts are tried in order before falling back to the embedded face.
var systemFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
}

var labelBackground = color.NRGBA{A: 180}
var labelColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// OutputPath returns the annotated twin of a rendered view path: the same
// basename with an _annotated suffix, inside an annotated/ subdirectory.
func OutputPath(viewPath string) string {
	dir := filepath.Dir(viewPath)
	base := strings.TrimSuffix(filepath.Base(viewPath), filepath.Ext(viewPath))
	return filepath.Join(dir, "annotated", base+"_annotated.png")
}

// Annotate loads the image at srcPath, draws label top-center over a padded
// dark rectangle, and writes the result to dstPath. The source file is left
// untouched. Font resolution cannot fail; at worst the embedded face is used.
func Annotate(srcPath, label, dstPath string) error {
	src, err := loadPNG(srcPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", srcPath, err)
	}

	img := image.NewNRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)

	face := loadFace(fontSize)
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
	}

	width := drawer.MeasureString(label).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := metrics.Height.Ceil()

	x := (img.Bounds().Dx() - width) / 2
	y := topMargin

	bg := image.Rect(x-padding, y-padding, x+width+padding, y+height+padding)
	draw.Draw(img, bg.Intersect(img.Bounds()), image.NewUniform(labelBackground),
		image.Point{}, draw.Over)

	drawer.Dot = fixed.P(x, y+ascent)
	drawer.DrawString(label)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("creating annotated dir: %w", err)
	}
	return writePNG(dstPath, img)
}

// loadFace resolves a font face of the given size. It never fails: when no
// system font parses, the embedded Go Regular face is used.
func loadFace(size float64) font.Face {
	opts := &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull}

	for _, path := range systemFonts {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(parsed, opts)
		if err != nil {
			continue
		}
		return face
	}

	parsed, _ := opentype.Parse(goregular.TTF)
	face, _ := opentype.NewFace(parsed, opts)
	return face
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return png.Decode(file)
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
