package levels

// Tiled stores flip flags in the high bits of a global tile id.
const (
	flipHorizontalFlag = 0x80000000
	flipVerticalFlag   = 0x40000000
	flipDiagonalFlag   = 0x20000000
	gidMask            = ^uint32(flipHorizontalFlag | flipVerticalFlag | flipDiagonalFlag | 0x10000000)
)

type Flips struct {
	H bool
	V bool
	D bool
}

// DecodeGID splits a raw layer value into the tile id and its flip flags.
func DecodeGID(raw uint32) (uint32, Flips) {
	return raw & gidMask, Flips{
		H: raw&flipHorizontalFlag != 0,
		V: raw&flipVerticalFlag != 0,
		D: raw&flipDiagonalFlag != 0,
	}
}

// TileGridPosition converts a row-major data index into a column and a row
// counted from the bottom of the map, so rows grow along world +Y.
func TileGridPosition(i, width, height int) (col, row int) {
	return i % width, height - 1 - i/width
}

// TileWorldPosition is the world-space centre of a tile.
func TileWorldPosition(col, row, tileW, tileH int, offsetX, offsetY float64) (float64, float64) {
	return float64(col*tileW) + offsetX, float64(row*tileH) - offsetY
}
