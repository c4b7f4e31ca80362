package component

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws Image (or its Source sub-rectangle) centred on the transform,
// shifted by OriginX/OriginY. Alpha multiplies the final colour.
type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	Alpha     float64
	Tint      color.Color
	FlipH     bool
	FlipV     bool
	FlipD     bool
}

var SpriteComponent = NewComponent[Sprite]()
