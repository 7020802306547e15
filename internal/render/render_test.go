package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/playperu/trailmap/internal/trailmap"
)

var gray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

func grayBase(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = gray.R, gray.G, gray.B, gray.A
	}
	return img
}

func testRegions() []trailmap.Region {
	return []trailmap.Region{
		{Name: "a", Center: trailmap.Point{X: 50, Y: 50}},
		{Name: "b", Center: trailmap.Point{X: 120, Y: 60}},
		{Name: "edge", Center: trailmap.Point{X: 0, Y: 99}},
	}
}

func mustRender(t *testing.T, base image.Image, regions []trailmap.Region, style Style) *image.RGBA {
	t.Helper()
	out, err := Render(base, regions, style)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return out
}

func TestRenderKeepsDimensions(t *testing.T) {
	base := grayBase(200, 100)
	out := mustRender(t, base, testRegions(), DefaultStyle(15))

	if got, want := out.Bounds(), base.Bounds(); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}

func TestRenderOffsetBounds(t *testing.T) {
	base := grayBase(200, 100).SubImage(image.Rect(10, 10, 60, 40))
	out := mustRender(t, base, nil, DefaultStyle(15))

	if got := out.Bounds(); got != image.Rect(0, 0, 50, 30) {
		t.Errorf("bounds = %v, want 50x30 at origin", got)
	}
	if got := out.RGBAAt(0, 0); got != gray {
		t.Errorf("pixel = %v, want %v", got, gray)
	}
}

func TestRenderDoesNotMutateBase(t *testing.T) {
	base := grayBase(200, 100)
	before := bytes.Clone(base.Pix)

	mustRender(t, base, testRegions(), DefaultStyle(15))

	if !bytes.Equal(before, base.Pix) {
		t.Error("base image was modified")
	}
}

func TestRenderDeterministic(t *testing.T) {
	base := grayBase(200, 100)
	a := mustRender(t, base, testRegions(), DefaultStyle(15))
	b := mustRender(t, base, testRegions(), DefaultStyle(15))

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same input differ")
	}
}

func TestRenderHighlightPixels(t *testing.T) {
	base := grayBase(200, 100)
	out := mustRender(t, base, testRegions(), DefaultStyle(15))

	// Disc interior: translucent yellow over gray.
	c := out.RGBAAt(50, 50)
	if c.A != 255 || c.R <= gray.R || c.G <= gray.G || c.B >= gray.B {
		t.Errorf("centre = %v, want yellow-tinted gray", c)
	}

	// Ring: 13px from the centre lies fully inside the 3px outline.
	ring := out.RGBAAt(63, 50)
	if ring.R < 250 || ring.G < 250 || ring.B > 5 {
		t.Errorf("ring = %v, want opaque yellow", ring)
	}

	// Outside every circle.
	for _, p := range []image.Point{{0, 0}, {90, 10}, {199, 0}, {50, 70}} {
		if got := out.RGBAAt(p.X, p.Y); got != gray {
			t.Errorf("pixel %v = %v, want untouched %v", p, got, gray)
		}
	}
}

func TestHighlightTile(t *testing.T) {
	tile, err := highlight(DefaultStyle(15))
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if got := tile.Bounds(); got != image.Rect(0, 0, 32, 32) {
		t.Fatalf("tile bounds = %v, want 32x32", got)
	}

	if _, _, _, a := tile.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want transparent", a)
	}
	_, _, b, a := tile.At(16, 16).RGBA()
	if a == 0 || a >= 0xffff || b != 0 {
		t.Errorf("centre = %v, want translucent yellow", tile.At(16, 16))
	}
	if _, _, _, a := tile.At(29, 16).RGBA(); a < 0xf000 {
		t.Errorf("ring alpha = %d, want opaque", a)
	}
}

func TestHighlightOutlineWiderThanRadius(t *testing.T) {
	style := DefaultStyle(2)
	style.OutlineWidth = 6

	tile, err := highlight(style)
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}
	if _, _, _, a := tile.At(3, 3).RGBA(); a < 0xf000 {
		t.Errorf("centre alpha = %d, want solid outline colour", a)
	}
}

func TestRenderNoRegions(t *testing.T) {
	base := grayBase(20, 20)
	out := mustRender(t, base, nil, DefaultStyle(15))

	if !bytes.Equal(out.Pix, base.Pix) {
		t.Error("render without regions should equal base")
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := EncodePNG(f, grayBase(30, 20)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(30, 20) {
		t.Errorf("size = %v, want 30x20", got)
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.png"), garbage} {
		_, err := LoadImage(path)
		if !errors.Is(err, ErrImageLoad) {
			t.Errorf("LoadImage(%s) err = %v, want ErrImageLoad", filepath.Base(path), err)
		}
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	out := mustRender(t, grayBase(40, 40), []trailmap.Region{{Name: "x", Center: trailmap.Point{X: 20, Y: 20}}}, DefaultStyle(10))

	var buf bytes.Buffer
	if err := EncodePNG(&buf, out); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := color.RGBAModel.Convert(decoded.At(20, 20)).(color.RGBA); got != out.RGBAAt(20, 20) {
		t.Errorf("decoded centre = %v, want %v", got, out.RGBAAt(20, 20))
	}
}
