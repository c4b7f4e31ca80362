package system

import (
	"testing"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

func TestViewRoundTrip(t *testing.T) {
	view := View{CamX: 100, CamY: 50, Zoom: 2, Width: 960, Height: 540}
	tests := []struct {
		name         string
		sx, sy       float64
		wantX, wantY float64
	}{
		{name: "centre", sx: 480, sy: 270, wantX: 100, wantY: 50},
		{name: "top left", sx: 0, sy: 0, wantX: -140, wantY: 185},
		{name: "bottom right", sx: 960, sy: 540, wantX: 340, wantY: -85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := view.ScreenToWorld(tt.sx, tt.sy)
			if !near(x, tt.wantX) || !near(y, tt.wantY) {
				t.Fatalf("ScreenToWorld = (%v,%v), want (%v,%v)", x, y, tt.wantX, tt.wantY)
			}
			sx, sy := view.WorldToScreen(x, y)
			if !near(sx, tt.sx) || !near(sy, tt.sy) {
				t.Fatalf("WorldToScreen = (%v,%v), want (%v,%v)", sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestCursorSystem(t *testing.T) {
	w := ecs.NewWorld()
	camera := spawnCamera(t, w, 100, 50, 2)
	pos := [2]int{0, 0}
	sys := NewCursorSystemFrom(func() (int, int) { return pos[0], pos[1] })

	sys.Update(w)
	cursor, _ := ecs.Get(w, camera, component.CursorComponent.Kind())
	if !cursor.Valid || !near(cursor.X, -140) || !near(cursor.Y, 185) {
		t.Fatalf("cursor = %+v, want (-140,185)", cursor)
	}

	pos = [2]int{-20, 40}
	sys.Update(w)
	if !near(cursor.X, -140) || !near(cursor.Y, 185) {
		t.Fatalf("cursor moved while outside the window: %+v", cursor)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	camera := spawnCamera(t, w, 0, 0, 1)
	cam, _ := ecs.Get(w, camera, component.CameraComponent.Kind())
	cam.FollowLerp = 0.5
	spawnPlayer(t, w, 100, -40)

	NewCameraSystem().Update(w)

	transform, _ := ecs.Get(w, camera, component.TransformComponent.Kind())
	if !near(transform.X, 50) || !near(transform.Y, -20) {
		t.Fatalf("camera = (%v,%v), want (50,-20)", transform.X, transform.Y)
	}
}

func TestCameraClampsToMap(t *testing.T) {
	tests := []struct {
		name         string
		bounds       component.MapBounds
		playerX      float64
		wantX, wantY float64
	}{
		{name: "large map edge", bounds: component.MapBounds{MinX: -1000, MinY: -1000, MaxX: 1000, MaxY: 1000}, playerX: 900, wantX: 520},
		{name: "large map inside", bounds: component.MapBounds{MinX: -1000, MinY: -1000, MaxX: 1000, MaxY: 1000}, playerX: 100, wantX: 100},
		{name: "small map centred", bounds: component.MapBounds{MinX: 0, MinY: 0, MaxX: 200, MaxY: 100}, playerX: 150, wantX: 100, wantY: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			camera := spawnCamera(t, w, 0, 0, 1)
			spawnPlayer(t, w, tt.playerX, 0)
			bounds := ecs.CreateEntity(w)
			b := tt.bounds
			add(t, w, bounds, component.MapBoundsComponent.Kind(), &b)

			NewCameraSystem().Update(w)

			transform, _ := ecs.Get(w, camera, component.TransformComponent.Kind())
			if !near(transform.X, tt.wantX) || !near(transform.Y, tt.wantY) {
				t.Fatalf("camera = (%v,%v), want (%v,%v)", transform.X, transform.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCameraPanAndRecenter(t *testing.T) {
	w := ecs.NewWorld()
	camera := spawnCamera(t, w, 0, 0, 1)
	spawnPlayer(t, w, 0, 0)
	input, _ := ecs.Get(w, camera, component.InputComponent.Kind())
	cam, _ := ecs.Get(w, camera, component.CameraComponent.Kind())
	transform, _ := ecs.Get(w, camera, component.TransformComponent.Kind())
	sys := NewCameraSystem()

	input.PanX = 1
	ticks(w, sys, 60)
	if !near(cam.OffsetX, 120) || !near(transform.X, 120) {
		t.Fatalf("after one second of panning offset = %v, camera x = %v", cam.OffsetX, transform.X)
	}

	input.PanX = 0
	input.Recenter = true
	sys.Update(w)
	input.Recenter = false
	ticks(w, sys, 30)

	if cam.OffsetX != 0 || cam.RecenterX != nil {
		t.Fatalf("offset after recenter = %v", cam.OffsetX)
	}
	if !near(transform.X, 0) {
		t.Fatalf("camera x after recenter = %v", transform.X)
	}
}
