// Package trailmap defines the hotspot domain: regions on a map image,
// their descriptions and the hit-test that resolves a click to a region.
// It has no external dependencies.
package trailmap

import (
	"errors"
	"fmt"
	"sort"
)

// None is the selection name reported when a click hits no region.
const None = "none"

var (
	ErrMissingDescription = errors.New("region has no description")
	ErrDuplicateRegion    = errors.New("duplicate region name")
	ErrInvalidRadius      = errors.New("radius must be positive")
	ErrEmptyName          = errors.New("region name is empty")
	ErrReservedName       = errors.New("region name is reserved")
)

// Point is a pixel coordinate on the map image.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region is a named circular hotspot. The radius is shared by every region
// of a Map and lives there.
type Region struct {
	Name   string
	Center Point
}

// Hotspot is a region together with its description text.
type Hotspot struct {
	Region
	Text string
}

// Map is the immutable set of regions and descriptions built once at
// startup. Region order is significant: it decides which region wins when
// circles overlap.
type Map struct {
	regions      []Region
	descriptions map[string]string
	index        map[string]int
	radius       int
}

// New validates regions against descriptions and returns the Map. Every
// region must have a description; extra descriptions are kept but unused.
func New(regions []Region, descriptions map[string]string, radius int) (*Map, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}

	m := &Map{
		regions:      make([]Region, 0, len(regions)),
		descriptions: make(map[string]string, len(descriptions)),
		index:        make(map[string]int, len(regions)),
		radius:       radius,
	}

	for i, r := range regions {
		if r.Name == "" {
			return nil, fmt.Errorf("region %d: %w", i, ErrEmptyName)
		}
		if r.Name == None {
			return nil, fmt.Errorf("%w: %q", ErrReservedName, r.Name)
		}
		if _, ok := m.index[r.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRegion, r.Name)
		}
		if _, ok := descriptions[r.Name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingDescription, r.Name)
		}
		m.index[r.Name] = len(m.regions)
		m.regions = append(m.regions, r)
	}
	for name, text := range descriptions {
		m.descriptions[name] = text
	}

	return m, nil
}

// FromHotspots builds a Map from name/position/text records, keeping their order.
func FromHotspots(hotspots []Hotspot, radius int) (*Map, error) {
	regions := make([]Region, 0, len(hotspots))
	descriptions := make(map[string]string, len(hotspots))
	for _, h := range hotspots {
		regions = append(regions, h.Region)
		descriptions[h.Name] = h.Text
	}
	return New(regions, descriptions, radius)
}

func (m *Map) Radius() int { return m.radius }

func (m *Map) Len() int { return len(m.regions) }

// Regions returns a copy of the regions in configured order.
func (m *Map) Regions() []Region {
	out := make([]Region, len(m.regions))
	copy(out, m.regions)
	return out
}

// Hotspots returns every region with its description, in configured order.
func (m *Map) Hotspots() []Hotspot {
	out := make([]Hotspot, len(m.regions))
	for i, r := range m.regions {
		out[i] = Hotspot{Region: r, Text: m.descriptions[r.Name]}
	}
	return out
}

// Lookup returns the hotspot with the given name.
func (m *Map) Lookup(name string) (Hotspot, bool) {
	i, ok := m.index[name]
	if !ok {
		return Hotspot{}, false
	}
	r := m.regions[i]
	return Hotspot{Region: r, Text: m.descriptions[r.Name]}, true
}

// Describe returns the description text for a region name.
func (m *Map) Describe(name string) (string, bool) {
	if _, ok := m.index[name]; !ok {
		return "", false
	}
	return m.descriptions[name], true
}

// Orphans lists description names that match no region, sorted.
func (m *Map) Orphans() []string {
	var out []string
	for name := range m.descriptions {
		if _, ok := m.index[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
