package glyphpng

import "os"
import "image"
import "image/png"
import "image/color"
import "testing"
import "path/filepath"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/glyphpng/font"
import "github.com/tinne26/glyphpng/mask"

func rasterizeFor(t *testing.T, face font.Face, codePoint rune, size int) *mask.Coverage {
	t.Helper()
	glyph, err := font.GlyphFor(face, codePoint)
	if err != nil { t.Fatal(err) }
	scale, err := ComputeScale(glyph, size)
	if err != nil { t.Fatal(err) }
	outline, err := glyph.Outline(scale)
	if err != nil { t.Fatal(err) }
	coverage, err := mask.Rasterize(outline, &mask.DefaultRasterizer{})
	if err != nil { t.Fatal(err) }
	return coverage
}

func TestComposeScenario(t *testing.T) {
	face := newRectFace(1).add('A', rectGlyph{ width: 500, height: 700 })
	coverage := rasterizeFor(t, face, 'A', 1024)
	if coverage.Width() != 500 || coverage.Height() != 700 {
		t.Fatalf("expected 500x700 pixel bbox, got %dx%d", coverage.Width(), coverage.Height())
	}

	fg := color.RGBA{ 10, 20, 30, 0 } // alpha must be ignored
	canvas := Compose(coverage, fg)
	if canvas.Rect != image.Rect(0, 0, 700, 700) {
		t.Fatalf("expected 700x700 canvas, got %v", canvas.Rect)
	}

	// glyph centered horizontally: columns [100, 600)
	for _, x := range []int{ 0, 99, 600, 699 } {
		if canvas.NRGBAAt(x, 350) != (color.NRGBA{}) {
			t.Fatalf("expected transparent pixel at (%d, 350), got %v", x, canvas.NRGBAAt(x, 350))
		}
	}
	for _, x := range []int{ 100, 350, 599 } {
		for _, y := range []int{ 0, 699 } {
			if canvas.NRGBAAt(x, y) != (color.NRGBA{ 10, 20, 30, 255 }) {
				t.Fatalf("expected foreground at (%d, %d), got %v", x, y, canvas.NRGBAAt(x, y))
			}
		}
	}
}

func TestComposeAlwaysSquare(t *testing.T) {
	face, err := font.ParseFromBytes(goregular.TTF, font.BackendSfnt)
	if err != nil { t.Fatal(err) }

	white := color.RGBA{ 255, 255, 255, 255 }
	for _, codePoint := range []rune{ 'A', 'i', 'm', '_', '-', '.', 'Q', 'ψ' } {
		coverage := rasterizeFor(t, face, codePoint, 64)
		canvas := Compose(coverage, white)
		side := max(coverage.Width(), coverage.Height())
		if canvas.Rect.Dx() != side || canvas.Rect.Dy() != side {
			t.Fatalf("%q: expected %dx%d canvas, got %v", codePoint, side, side, canvas.Rect)
		}
		if side > 64 + 2 {
			t.Fatalf("%q: canvas side %d way over the budget", codePoint, side)
		}

		// every painted pixel keeps the exact foreground rgb
		painted := 0
		for i := 0; i < len(canvas.Pix); i += 4 {
			if canvas.Pix[i + 3] == 0 { continue }
			painted += 1
			if canvas.Pix[i] != 255 || canvas.Pix[i + 1] != 255 || canvas.Pix[i + 2] != 255 {
				t.Fatalf("%q: unexpected rgb %v", codePoint, canvas.Pix[i : i + 3])
			}
		}
		if painted == 0 { t.Fatalf("%q: nothing painted", codePoint) }
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.SetNRGBA(1, 1, color.NRGBA{ 1, 2, 3, 128 })

	path := filepath.Join(t.TempDir(), "test.png")
	err := SavePNG(img, path)
	if err != nil { t.Fatal(err) }

	file, err := os.Open(path)
	if err != nil { t.Fatal(err) }
	defer file.Close()
	decoded, err := png.Decode(file)
	if err != nil { t.Fatal(err) }
	nrgba, isNRGBA := decoded.(*image.NRGBA)
	if !isNRGBA { t.Fatalf("expected *image.NRGBA, got %T", decoded) }
	if nrgba.NRGBAAt(1, 1) != (color.NRGBA{ 1, 2, 3, 128 }) {
		t.Fatalf("unexpected pixel %v", nrgba.NRGBAAt(1, 1))
	}

	err = SavePNG(img, filepath.Join(t.TempDir(), "missing", "dir", "test.png"))
	if err == nil { t.Fatal("expected error writing into a missing directory") }
}
