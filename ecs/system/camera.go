package system

import (
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CameraSystem eases the camera towards the player, applies the manual pan
// offset and keeps the view inside the map.
type CameraSystem struct {
	width  float64
	height float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{width: common.BaseWidth, height: common.BaseHeight}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if input, ok := ecs.Get(w, camEntity, component.InputComponent.Kind()); ok {
		cs.pan(cam, input)
	}
	cs.recenter(cam)

	targetX, targetY := camTransform.X-cam.OffsetX, camTransform.Y-cam.OffsetY
	if player, ok := playerTransform(w); ok {
		targetX = common.Lerp(targetX, player.X, cam.FollowLerp)
		targetY = common.Lerp(targetY, player.Y, cam.FollowLerp)
	}

	x, y := targetX+cam.OffsetX, targetY+cam.OffsetY
	if boundsEntity, ok := ecs.First(w, component.MapBoundsComponent.Kind()); ok {
		if bounds, ok := ecs.Get(w, boundsEntity, component.MapBoundsComponent.Kind()); ok {
			x, y = cs.clampToBounds(x, y, cam.Zoom, bounds)
		}
	}
	camTransform.X, camTransform.Y = x, y
}

func (cs *CameraSystem) pan(cam *component.Camera, input *component.Input) {
	if input.Recenter {
		seconds := float32(cam.RecenterSeconds)
		cam.RecenterX = gween.New(float32(cam.OffsetX), 0, seconds, ease.OutCubic)
		cam.RecenterY = gween.New(float32(cam.OffsetY), 0, seconds, ease.OutCubic)
		return
	}
	if input.PanX == 0 && input.PanY == 0 {
		return
	}

	// Manual panning cancels a running recenter.
	cam.RecenterX, cam.RecenterY = nil, nil
	cam.OffsetX += input.PanX * cam.PanSpeed * common.TickDuration
	cam.OffsetY += input.PanY * cam.PanSpeed * common.TickDuration
}

func (cs *CameraSystem) recenter(cam *component.Camera) {
	dt := float32(common.TickDuration)
	if cam.RecenterX != nil {
		v, done := cam.RecenterX.Update(dt)
		cam.OffsetX = float64(v)
		if done {
			cam.RecenterX = nil
		}
	}
	if cam.RecenterY != nil {
		v, done := cam.RecenterY.Update(dt)
		cam.OffsetY = float64(v)
		if done {
			cam.RecenterY = nil
		}
	}
}

// clampToBounds centres the camera on an axis where the map is smaller than
// the view.
func (cs *CameraSystem) clampToBounds(x, y, zoom float64, bounds *component.MapBounds) (float64, float64) {
	if zoom <= 0 {
		zoom = 1
	}
	halfW := cs.width / zoom / 2
	halfH := cs.height / zoom / 2
	x = common.Clamp(x, bounds.MinX+halfW, bounds.MaxX-halfW)
	y = common.Clamp(y, bounds.MinY+halfH, bounds.MaxY-halfH)
	return x, y
}
