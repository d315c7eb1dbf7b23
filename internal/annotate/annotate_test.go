package annotate

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeGrayPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	gray := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, gray)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath(filepath.Join("renders", "view_007.png"))
	want := filepath.Join("renders", "annotated", "view_007_annotated.png")
	if got != want {
		t.Errorf("OutputPath = %s, want %s", got, want)
	}
}

func TestAnnotate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "view_000.png")
	writeGrayPNG(t, src, 256, 256)

	dst := OutputPath(src)
	if err := Annotate(src, "Top", dst); err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	out, err := os.Open(dst)
	if err != nil {
		t.Fatalf("annotated file missing: %v", err)
	}
	defer out.Close()
	img, err := png.Decode(out)
	if err != nil {
		t.Fatalf("decoding annotated file: %v", err)
	}

	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Fatalf("annotated image is %v, want 256x256", img.Bounds())
	}

	// The label band at the top must differ from the uniform source; the
	// bottom half must not.
	changed := false
	for x := 0; x < 256 && !changed; x++ {
		for y := 0; y < 64; y++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 200<<8|200 || g != 200<<8|200 || b != 200<<8|200 {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("top band is untouched; no label was drawn")
	}
	for x := 0; x < 256; x++ {
		for y := 128; y < 256; y++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R != 200 || c.G != 200 || c.B != 200 {
				t.Fatalf("pixel (%d,%d) below the label changed: %+v", x, y, c)
			}
		}
	}
}

func TestAnnotateKeepsSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "view_001.png")
	writeGrayPNG(t, src, 64, 64)

	before, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := Annotate(src, "Front", OutputPath(src)); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	after, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("annotation modified the source image")
	}
}

func TestAnnotateMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Annotate(filepath.Join(dir, "absent.png"), "Front", filepath.Join(dir, "out.png"))
	if err == nil {
		t.Fatal("expected an error for a missing source")
	}
}

func TestAnnotateLongLabel(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "view_002.png")
	writeGrayPNG(t, src, 128, 128)

	// Wider than the image: the background rect must clip, not panic.
	dst := OutputPath(src)
	if err := Annotate(src, "Front-Top-Right Oblique Extended", dst); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("annotated file missing: %v", err)
	}
}
