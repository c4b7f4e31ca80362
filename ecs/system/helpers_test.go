package system

import (
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
)

func TestMain(m *testing.M) {
	entity.LoadImage = func(string) (*ebiten.Image, error) { return nil, nil }
	os.Exit(m.Run())
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], value *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, value); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func spawnPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	add(t, w, e, component.PlayerComponent.Kind(), &component.Player{Speed: 200, HalfSize: 32})
	add(t, w, e, component.InputComponent.Kind(), &component.Input{})
	add(t, w, e, component.ScoreComponent.Kind(), &component.Score{})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	add(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	return e
}

func spawnEnemy(t *testing.T, w *ecs.World, x, y float64, health int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.EnemyComponent.Kind(), &component.Enemy{
		Health:     component.Health{Current: health, Max: health},
		Speed:      100,
		SightRange: 250,
	})
	add(t, w, e, component.WanderTimerComponent.Kind(), &component.WanderTimer{Timer: component.NewTimer(1, component.TimerRepeating)})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	add(t, w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	return e
}

func spawnBullet(t *testing.T, w *ecs.World, damage int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.BulletComponent.Kind(), &component.Bullet{Damage: damage, Lifetime: component.NewTimer(1, component.TimerOnce)})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	return e
}

func spawnWall(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.WallTagComponent.Kind(), &component.WallTag{})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{})
	return e
}

func spawnCamera(t *testing.T, w *ecs.World, x, y, zoom float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	add(t, w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom, PanSpeed: 120, FollowLerp: 1, RecenterSeconds: 0.4})
	add(t, w, e, component.InputComponent.Kind(), &component.Input{})
	add(t, w, e, component.CursorComponent.Kind(), &component.Cursor{})
	return e
}

func setCursor(t *testing.T, w *ecs.World, x, y float64) {
	t.Helper()
	e, ok := ecs.First(w, component.CursorComponent.Kind())
	if !ok {
		e = ecs.CreateEntity(w)
		add(t, w, e, component.CursorComponent.Kind(), &component.Cursor{})
	}
	cursor, _ := ecs.Get(w, e, component.CursorComponent.Kind())
	cursor.X, cursor.Y, cursor.Valid = x, y, true
}

func ticks(w *ecs.World, s ecs.System, n int) {
	for i := 0; i < n; i++ {
		s.Update(w)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
