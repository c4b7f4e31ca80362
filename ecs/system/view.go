package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// View maps between the Y-up world and the Y-down screen. The camera
// position sits at the centre of the screen.
type View struct {
	CamX   float64
	CamY   float64
	Zoom   float64
	Width  float64
	Height float64
}

func (v View) WorldToScreen(x, y float64) (float64, float64) {
	return (x-v.CamX)*v.zoom() + v.Width/2, -(y-v.CamY)*v.zoom() + v.Height/2
}

func (v View) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx-v.Width/2)/v.zoom() + v.CamX, -(sy-v.Height/2)/v.zoom() + v.CamY
}

func (v View) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

// cameraView builds the view of the first camera, falling back to an
// unzoomed view of the origin.
func cameraView(w *ecs.World) View {
	view := View{Zoom: 1, Width: common.BaseWidth, Height: common.BaseHeight}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return view
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		view.CamX, view.CamY = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		view.Zoom = cam.Zoom
	}
	return view
}

// playerTransform returns the transform of the first player, if any.
func playerTransform(w *ecs.World) (*component.Transform, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, player, component.TransformComponent.Kind())
}

func cursorOf(w *ecs.World) (*component.Cursor, bool) {
	e, ok := ecs.First(w, component.CursorComponent.Kind())
	if !ok {
		return nil, false
	}
	cursor, ok := ecs.Get(w, e, component.CursorComponent.Kind())
	if !ok || !cursor.Valid {
		return nil, false
	}
	return cursor, true
}
