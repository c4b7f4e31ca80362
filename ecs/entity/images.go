package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/assets"
)

// LoadImage resolves sprite images for every builder in this package. Tests
// swap it for a loader that returns nil so no GPU images are created.
var LoadImage = assets.LoadImage

func imageSize(img *ebiten.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
