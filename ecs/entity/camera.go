package entity

import (
	"fmt"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

// NewCamera creates the camera singleton. It also carries the cursor and its
// own input snapshot for panning.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, cameraSpec)
}

func NewCameraFromSpec(w *ecs.World, cameraSpec *prefabs.CameraSpec) (ecs.Entity, error) {
	zoom := cameraSpec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	lerp := cameraSpec.FollowLerp
	if lerp <= 0 || lerp > 1 {
		lerp = 1
	}
	pan := cameraSpec.PanSpeed
	if pan <= 0 {
		pan = 120
	}
	recenter := cameraSpec.RecenterSeconds
	if recenter <= 0 {
		recenter = 0.4
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), transformFromSpec(cameraSpec.Transform)); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	cam := &component.Camera{
		Zoom:            zoom,
		PanSpeed:        pan,
		FollowLerp:      lerp,
		RecenterSeconds: recenter,
	}
	if cameraSpec.Background != nil {
		cam.Background = cameraSpec.Background.Color
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("camera: add input: %w", err)
	}
	if err := ecs.Add(w, camera, component.CursorComponent.Kind(), &component.Cursor{}); err != nil {
		return 0, fmt.Errorf("camera: add cursor: %w", err)
	}

	return camera, nil
}
