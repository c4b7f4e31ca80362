package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Map is a Tiled JSON export. Only orthogonal, finite maps are supported.
type Map struct {
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	TileWidth   int       `json:"tilewidth"`
	TileHeight  int       `json:"tileheight"`
	Layers      []Layer   `json:"layers"`
	Tilesets    []Tileset `json:"tilesets"`
	Infinite    bool      `json:"infinite"`
	Orientation string    `json:"orientation"`
	RenderOrder string    `json:"renderorder"`
	Version     string    `json:"version"`
}

type Layer struct {
	Data       []uint32   `json:"data"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Opacity    float64    `json:"opacity"`
	Visible    bool       `json:"visible"`
	X          int        `json:"x"`
	Y          int        `json:"y"`
	OffsetX    float64    `json:"offsetx"`
	OffsetY    float64    `json:"offsety"`
	Properties []Property `json:"properties"`
}

type Tileset struct {
	Columns     int    `json:"columns"`
	FirstGID    uint32 `json:"firstgid"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"imagewidth"`
	ImageHeight int    `json:"imageheight"`
	Margin      int    `json:"margin"`
	Name        string `json:"name"`
	Spacing     int    `json:"spacing"`
	TileCount   int    `json:"tilecount"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
}

// Property is a Tiled custom property.
type Property struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

var ErrInvalidMap = errors.New("invalid map")

// IsTileLayer reports whether l carries tile data. Object groups and image
// layers in a JSON export have no data array.
func (l Layer) IsTileLayer() bool {
	return l.Type == "" || l.Type == "tilelayer"
}

// BoolProperty returns the named bool property, or false when absent.
func (l Layer) BoolProperty(name string) bool {
	for _, p := range l.Properties {
		if p.Name != name {
			continue
		}
		switch v := p.Value.(type) {
		case bool:
			return v
		case string:
			return strings.EqualFold(v, "true")
		}
	}
	return false
}

// IsCollision reports whether the layer is marked with collision=true.
func (l Layer) IsCollision() bool {
	return l.BoolProperty("collision")
}

// LoadMap reads a JSON map from disk, falling back to the embedded levels.
func LoadMap(name string) (*Map, error) {
	data, err := readLevelFile(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return m, nil
}

// ParseMap decodes and validates a JSON map.
func ParseMap(data []byte) (*Map, error) {
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal map: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the fields the spawner relies on.
func (m *Map) Validate() error {
	if m.Infinite {
		return fmt.Errorf("%w: infinite maps are not supported", ErrInvalidMap)
	}
	if m.Orientation != "" && m.Orientation != "orthogonal" {
		return fmt.Errorf("%w: unsupported orientation %q", ErrInvalidMap, m.Orientation)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidMap, m.Width, m.Height)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return fmt.Errorf("%w: tile size %dx%d", ErrInvalidMap, m.TileWidth, m.TileHeight)
	}
	if len(m.Tilesets) == 0 {
		return fmt.Errorf("%w: no tilesets", ErrInvalidMap)
	}
	for i, ts := range m.Tilesets {
		if ts.TileWidth <= 0 || ts.TileHeight <= 0 {
			return fmt.Errorf("%w: tileset %d (%s): tile size %dx%d", ErrInvalidMap, i, ts.Name, ts.TileWidth, ts.TileHeight)
		}
		if ts.Columns <= 0 && ts.ImageWidth <= 0 {
			return fmt.Errorf("%w: tileset %d (%s): no columns or image width", ErrInvalidMap, i, ts.Name)
		}
		if ts.TileCount <= 0 && ts.ImageHeight <= 0 {
			return fmt.Errorf("%w: tileset %d (%s): no tile count or image height", ErrInvalidMap, i, ts.Name)
		}
	}
	want := m.Width * m.Height
	for i, l := range m.Layers {
		if !l.IsTileLayer() {
			continue
		}
		if len(l.Data) != want {
			return fmt.Errorf("%w: layer %d (%s): %d tiles, want %d", ErrInvalidMap, i, l.Name, len(l.Data), want)
		}
	}
	return nil
}

// PixelSize is the map's extent in pixels.
func (m *Map) PixelSize() (float64, float64) {
	return float64(m.Width * m.TileWidth), float64(m.Height * m.TileHeight)
}

// TileCount counts the nonzero tiles of every tile layer.
func (m *Map) TileCount() int {
	n := 0
	for _, l := range m.Layers {
		if !l.IsTileLayer() {
			continue
		}
		for _, gid := range l.Data {
			if id, _ := DecodeGID(gid); id != 0 {
				n++
			}
		}
	}
	return n
}

func readLevelFile(name string) ([]byte, error) {
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

func cleanLevelPath(name string) string {
	s := path.Clean(filepath.ToSlash(name))
	if idx := strings.LastIndex(s, "levels/"); idx >= 0 {
		return s[idx+len("levels/"):]
	}
	return strings.TrimPrefix(s, "./")
}
