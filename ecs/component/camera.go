package component

import (
	"image/color"

	"github.com/tanema/gween"
)

type Camera struct {
	Zoom            float64
	PanSpeed        float64
	FollowLerp      float64
	RecenterSeconds float64
	OffsetX         float64
	OffsetY         float64
	Background      color.Color

	RecenterX *gween.Tween
	RecenterY *gween.Tween
}

var CameraComponent = NewComponent[Camera]()
