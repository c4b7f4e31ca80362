package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// CursorSystem converts the mouse position into world space.
type CursorSystem struct {
	position func() (int, int)
}

func NewCursorSystem() *CursorSystem {
	return &CursorSystem{position: ebiten.CursorPosition}
}

// NewCursorSystemFrom reads screen positions from position instead of the
// mouse.
func NewCursorSystemFrom(position func() (int, int)) *CursorSystem {
	return &CursorSystem{position: position}
}

func (c *CursorSystem) Update(w *ecs.World) {
	if w == nil || c.position == nil {
		return
	}

	view := cameraView(w)
	sx, sy := c.position()
	x, y := view.ScreenToWorld(float64(sx), float64(sy))
	inside := sx >= 0 && sy >= 0 && float64(sx) < view.Width && float64(sy) < view.Height

	ecs.ForEach(w, component.CursorComponent.Kind(), func(e ecs.Entity, cursor *component.Cursor) {
		// Keep the last in-window position once the mouse leaves.
		if !inside {
			return
		}
		cursor.X, cursor.Y = x, y
		cursor.Valid = true
	})
}
