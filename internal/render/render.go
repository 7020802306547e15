// Package render composites hotspot highlights onto the base map image.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/playperu/trailmap/internal/trailmap"
)

// ErrImageLoad marks a base image that could not be opened or decoded.
var ErrImageLoad = errors.New("loading base image")

// Style configures how highlights are drawn.
type Style struct {
	Radius       int
	Fill         color.NRGBA
	Outline      color.NRGBA
	OutlineWidth float32
}

// DefaultStyle is a translucent yellow disc with a solid yellow ring drawn
// inward from the circle edge.
func DefaultStyle(radius int) Style {
	return Style{
		Radius:       radius,
		Fill:         color.NRGBA{R: 255, G: 255, A: 60},
		Outline:      color.NRGBA{R: 255, G: 255, A: 255},
		OutlineWidth: 3,
	}
}

// LoadImage decodes the image at path. Any failure wraps ErrImageLoad.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageLoad, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrImageLoad, path, err)
	}
	return img, nil
}

// Render returns a new image the size of base with a highlight drawn at
// every region centre. base is left untouched.
func Render(base image.Image, regions []trailmap.Region, style Style) (*image.RGBA, error) {
	b := base.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(out, image.Point{}, base, b, draw.Src, nil)

	if style.Radius <= 0 || len(regions) == 0 {
		return out, nil
	}
	tile, err := highlight(style)
	if err != nil {
		return nil, err
	}

	overlay := image.NewRGBA(out.Bounds())
	off := tile.Bounds().Dx() / 2
	for _, r := range regions {
		at := image.Pt(r.Center.X-off, r.Center.Y-off)
		draw.Draw(overlay, tile.Bounds().Add(at), tile, image.Point{}, draw.Over)
	}

	draw.Draw(out, out.Bounds(), overlay, image.Point{}, draw.Over)
	return out, nil
}

// highlight paints one disc and its ring into a square tile of side
// 2*Radius+2. The circle is centred on the middle of pixel (Radius+1,
// Radius+1), so stamping the tile at centre-(Radius+1) lines it up.
func highlight(style Style) (image.Image, error) {
	size := 2*style.Radius + 2
	dc := gg.NewContext(size, size)
	defer dc.Close()

	r := float64(style.Radius)
	c := r + 1.5

	dc.DrawCircle(c, c, r)
	dc.SetColor(style.Fill)
	if err := dc.Fill(); err != nil {
		return nil, fmt.Errorf("filling highlight: %w", err)
	}

	w := float64(style.OutlineWidth)
	if w > 0 && style.Outline.A > 0 {
		// The ring sits inside the edge: stroke a circle inset by half its width.
		dc.SetColor(style.Outline)
		if inner := r - w/2; inner > 0 {
			dc.DrawCircle(c, c, inner)
			dc.SetLineWidth(w)
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("stroking highlight: %w", err)
			}
		} else {
			dc.DrawCircle(c, c, r)
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("filling highlight: %w", err)
			}
		}
	}
	return dc.Image(), nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
