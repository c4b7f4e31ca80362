package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/lafriks/go-tiled"
)

// TMX is a parsed Tiled XML map together with the atlases of its tilesets.
type TMX struct {
	Path     string
	Map      *tiled.Map
	Tilesets []*TMXTileset

	byTileset map[*tiled.Tileset]*TMXTileset
}

// TMXTileset is either a single sheet cut into an atlas, or an image
// collection where every tile has its own image.
type TMXTileset struct {
	Tileset    *tiled.Tileset
	Image      string
	Atlas      *Atlas
	TileImages map[uint32]string
}

// IsCollection reports whether tiles carry their own images.
func (ts *TMXTileset) IsCollection() bool {
	return ts.Image == ""
}

// TMXCell is one non-empty tile of a layer, already placed in world space.
type TMXCell struct {
	Layer   int
	Col     int
	Row     int
	X       float64
	Y       float64
	LocalID uint32
	Tileset *TMXTileset
	Flips   Flips
}

// LoadTMX parses a TMX file from disk, falling back to the embedded levels.
func LoadTMX(name string) (*TMX, error) {
	if _, err := os.Stat(name); err == nil {
		return loadTMX(name, nil)
	}
	return LoadTMXFS(LevelsFS, cleanLevelPath(name))
}

// LoadTMXFS parses a TMX file (and any external TSX tilesets) from fsys.
func LoadTMXFS(fsys fs.FS, name string) (*TMX, error) {
	return loadTMX(name, fsys)
}

func loadTMX(name string, fsys fs.FS) (*TMX, error) {
	var opts []tiled.LoaderOption
	if fsys != nil {
		opts = append(opts, tiled.WithFileSystem(fsys))
	}
	m, err := tiled.LoadFile(name, opts...)
	if err != nil {
		return nil, fmt.Errorf("levels: load tmx %s: %w", name, err)
	}
	return newTMX(filepath.ToSlash(name), m)
}

func newTMX(name string, m *tiled.Map) (*TMX, error) {
	if m.Orientation != "" && m.Orientation != "orthogonal" {
		return nil, fmt.Errorf("levels: tmx %s: %w: unsupported orientation %q", name, ErrInvalidMap, m.Orientation)
	}
	if m.Width <= 0 || m.Height <= 0 || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("levels: tmx %s: %w: size %dx%d tiles of %dx%d", name, ErrInvalidMap, m.Width, m.Height, m.TileWidth, m.TileHeight)
	}

	t := &TMX{Path: name, Map: m, byTileset: make(map[*tiled.Tileset]*TMXTileset)}
	dir := path.Dir(name)
	for _, src := range m.Tilesets {
		ts, err := newTMXTileset(dir, src)
		if err != nil {
			return nil, fmt.Errorf("levels: tmx %s: %w", name, err)
		}
		t.Tilesets = append(t.Tilesets, ts)
		t.byTileset[src] = ts
	}
	return t, nil
}

func newTMXTileset(mapDir string, src *tiled.Tileset) (*TMXTileset, error) {
	dir := mapDir
	if src.Source != "" {
		dir = path.Join(mapDir, path.Dir(filepath.ToSlash(src.Source)))
	}

	ts := &TMXTileset{Tileset: src}
	if src.Image != nil && src.Image.Source != "" {
		atlas, err := NewAtlas(Tileset{
			Name:        src.Name,
			Columns:     src.Columns,
			TileCount:   src.TileCount,
			TileWidth:   src.TileWidth,
			TileHeight:  src.TileHeight,
			Margin:      src.Margin,
			Spacing:     src.Spacing,
			ImageWidth:  src.Image.Width,
			ImageHeight: src.Image.Height,
		})
		if err != nil {
			return nil, err
		}
		ts.Image = path.Join(dir, filepath.ToSlash(src.Image.Source))
		ts.Atlas = atlas
		return ts, nil
	}

	ts.TileImages = make(map[uint32]string, len(src.Tiles))
	for _, tile := range src.Tiles {
		if tile == nil || tile.Image == nil || tile.Image.Source == "" {
			continue
		}
		ts.TileImages[tile.ID] = path.Join(dir, filepath.ToSlash(tile.Image.Source))
	}
	if len(ts.TileImages) == 0 {
		return nil, fmt.Errorf("tileset %s: %w: no image", src.Name, ErrInvalidMap)
	}
	return ts, nil
}

// Origin is the world position of tile (0, 0) that centres the map on the
// world origin.
func (t *TMX) Origin() (float64, float64) {
	m := t.Map
	return -float64(m.Width*m.TileWidth)/2 + float64(m.TileWidth)/2,
		-float64(m.Height*m.TileHeight)/2 + float64(m.TileHeight)/2
}

// IsCollisionLayer reports whether layer i has the bool property collision.
func (t *TMX) IsCollisionLayer(i int) bool {
	if i < 0 || i >= len(t.Map.Layers) {
		return false
	}
	for _, p := range t.Map.Layers[i].Properties {
		if p != nil && p.Name == "collision" && p.Value == "true" {
			return true
		}
	}
	return false
}

// Cells returns the non-empty tiles of layer i with world positions.
func (t *TMX) Cells(i int) []TMXCell {
	if i < 0 || i >= len(t.Map.Layers) {
		return nil
	}
	m := t.Map
	layer := m.Layers[i]
	ox, oy := t.Origin()
	ox += float64(layer.OffsetX)
	oy -= float64(layer.OffsetY)

	var cells []TMXCell
	for idx, tile := range layer.Tiles {
		if tile == nil || tile.IsNil() || tile.Tileset == nil {
			continue
		}
		ts, ok := t.byTileset[tile.Tileset]
		if !ok {
			continue
		}
		col, row := TileGridPosition(idx, m.Width, m.Height)
		x, y := TileWorldPosition(col, row, m.TileWidth, m.TileHeight, ox, -oy)
		cells = append(cells, TMXCell{
			Layer:   i,
			Col:     col,
			Row:     row,
			X:       x,
			Y:       y,
			LocalID: tile.ID,
			Tileset: ts,
			Flips:   Flips{H: tile.HorizontalFlip, V: tile.VerticalFlip, D: tile.DiagonalFlip},
		})
	}
	return cells
}

// Bounds is the world rectangle the map covers.
func (t *TMX) Bounds() (minX, minY, maxX, maxY float64) {
	m := t.Map
	w, h := float64(m.Width*m.TileWidth), float64(m.Height*m.TileHeight)
	return -w / 2, -h / 2, w / 2, h / 2
}
