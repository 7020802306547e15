package server

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image"
	"io/fs"

	"golang.org/x/crypto/blake2b"

	"github.com/playperu/trailmap/internal/render"
	"github.com/playperu/trailmap/internal/trailmap"
)

// Site is everything the handlers serve. It is built once at startup and
// never modified, so handlers share it without locking.
type Site struct {
	Title  string
	Map    *trailmap.Map
	Width  int
	Height int
	PNG    []byte
	ETag   string
	Static fs.FS
}

// NewSite encodes the rendered map image and fingerprints it for caching.
func NewSite(title string, m *trailmap.Map, img image.Image, static fs.FS) (*Site, error) {
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding map image: %w", err)
	}

	sum := blake2b.Sum256(buf.Bytes())
	b := img.Bounds()

	return &Site{
		Title:  title,
		Map:    m,
		Width:  b.Dx(),
		Height: b.Dy(),
		PNG:    buf.Bytes(),
		ETag:   `"` + hex.EncodeToString(sum[:]) + `"`,
		Static: static,
	}, nil
}
