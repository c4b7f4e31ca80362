package levels

// CellRect is a block of grid cells in data order: Col/Row is the top-left
// cell counted from the top of the layer.
type CellRect struct {
	Col  int
	Row  int
	Cols int
	Rows int
}

// MergeSolidCells covers every solid cell with as few rectangles as a greedy
// scan finds: grow right as far as possible, then grow down while the whole
// row span stays solid.
func MergeSolidCells(solid []bool, width, height int) []CellRect {
	if width <= 0 || height <= 0 {
		return nil
	}
	visited := make([]bool, width*height)
	index := func(x, y int) int { return y*width + x }
	open := func(x, y int) bool {
		i := index(x, y)
		return i < len(solid) && solid[i] && !visited[i]
	}

	var rects []CellRect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !open(x, y) {
				continue
			}

			w := 0
			for x2 := x; x2 < width && open(x2, y); x2++ {
				w++
			}

			h := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+w; x2++ {
					if !open(x2, y2) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					visited[index(xx, yy)] = true
				}
			}
			rects = append(rects, CellRect{Col: x, Row: y, Cols: w, Rows: h})
		}
	}
	return rects
}

// WorldBox converts a merged rectangle into a centre and half extents, using
// the same bottom-up row convention as TileGridPosition. originX/originY is
// the world position of the centre of grid cell (0, 0).
func (r CellRect) WorldBox(mapHeight, tileW, tileH int, originX, originY float64) (cx, cy, halfW, halfH float64) {
	rowLo := mapHeight - (r.Row + r.Rows)
	rowHi := mapHeight - 1 - r.Row
	cx = originX + (float64(r.Col)+float64(r.Cols-1)/2)*float64(tileW)
	cy = originY + (float64(rowLo)+float64(rowHi))/2*float64(tileH)
	return cx, cy, float64(r.Cols*tileW) / 2, float64(r.Rows*tileH) / 2
}
