package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/playperu/trailmap/internal/trailmap"
)

// File is the on-disk form of a hotspot list. Radius 0 means "use the
// configured default".
type File struct {
	Radius   int          `json:"radius,omitempty"`
	Hotspots []FileRecord `json:"hotspots"`
}

// FileRecord is one hotspot in a File. Records keep their array order.
type FileRecord struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Text string `json:"text"`
}

// LoadFile reads a File from path. Unknown fields are rejected so typos in
// hand-edited files fail at startup.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening hotspots file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var out File
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding hotspots file %s: %w", path, err)
	}
	return &out, nil
}

// Records converts the file contents to domain hotspots.
func (f *File) Records() []trailmap.Hotspot {
	out := make([]trailmap.Hotspot, len(f.Hotspots))
	for i, r := range f.Hotspots {
		out[i] = trailmap.Hotspot{
			Region: trailmap.Region{Name: r.Name, Center: trailmap.Point{X: r.X, Y: r.Y}},
			Text:   r.Text,
		}
	}
	return out
}

// Map builds the trailmap.Map, using fallbackRadius when the file sets none.
func (f *File) Map(fallbackRadius int) (*trailmap.Map, error) {
	radius := f.Radius
	if radius == 0 {
		radius = fallbackRadius
	}
	return trailmap.FromHotspots(f.Records(), radius)
}
