package levels

import (
	"fmt"
	"image"
)

// Atlas is a uniform grid of frames cut from one image, row-major.
type Atlas struct {
	TileWidth  int
	TileHeight int
	Columns    int
	Rows       int
	Frames     []image.Rectangle
}

// NewAtlas partitions a tileset image into tile-sized frames.
func NewAtlas(ts Tileset) (*Atlas, error) {
	if ts.TileWidth <= 0 || ts.TileHeight <= 0 {
		return nil, fmt.Errorf("levels: atlas %s: tile size %dx%d", ts.Name, ts.TileWidth, ts.TileHeight)
	}
	cols := ts.Columns
	if cols <= 0 {
		cols = gridCount(ts.ImageWidth, ts.TileWidth, ts.Margin, ts.Spacing)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("levels: atlas %s: no columns", ts.Name)
	}
	rows := 0
	if ts.TileCount > 0 {
		rows = ts.TileCount / cols
		if ts.TileCount%cols != 0 {
			rows++
		}
	} else {
		rows = gridCount(ts.ImageHeight, ts.TileHeight, ts.Margin, ts.Spacing)
	}
	if rows <= 0 {
		return nil, fmt.Errorf("levels: atlas %s: no rows", ts.Name)
	}

	a := AtlasFromGrid(ts.TileWidth, ts.TileHeight, cols, rows, ts.Margin, ts.Spacing)
	if ts.TileCount > 0 && ts.TileCount < len(a.Frames) {
		a.Frames = a.Frames[:ts.TileCount]
	}
	return a, nil
}

// AtlasFromGrid builds an atlas of cols*rows frames.
func AtlasFromGrid(tileW, tileH, cols, rows, margin, spacing int) *Atlas {
	a := &Atlas{TileWidth: tileW, TileHeight: tileH, Columns: cols, Rows: rows}
	if cols <= 0 || rows <= 0 {
		return a
	}
	a.Frames = make([]image.Rectangle, 0, cols*rows)
	for i := 0; i < cols*rows; i++ {
		x := margin + (i%cols)*(tileW+spacing)
		y := margin + (i/cols)*(tileH+spacing)
		a.Frames = append(a.Frames, image.Rect(x, y, x+tileW, y+tileH))
	}
	return a
}

func (a *Atlas) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Frames)
}

// Index returns frame i.
func (a *Atlas) Index(i int) (image.Rectangle, bool) {
	if a == nil || i < 0 || i >= len(a.Frames) {
		return image.Rectangle{}, false
	}
	return a.Frames[i], true
}

// Frame resolves a tile id: 0 is empty, otherwise frame (id-1) wrapped to the
// atlas size.
func (a *Atlas) Frame(id uint32) (image.Rectangle, bool) {
	if id == 0 || a.Len() == 0 {
		return image.Rectangle{}, false
	}
	return a.Frames[int((id-1)%uint32(len(a.Frames)))], true
}

func gridCount(size, tile, margin, spacing int) int {
	if size <= 0 || tile <= 0 {
		return 0
	}
	avail := size - 2*margin + spacing
	if avail <= 0 {
		return 0
	}
	return avail / (tile + spacing)
}
