package entity

import (
	"fmt"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/prefabs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, playerSpec, playerSpec.Transform.X, playerSpec.Transform.Y)
}

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, playerSpec, x, y)
}

func NewPlayerFromSpec(w *ecs.World, playerSpec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	body, err := physicsBodyFromSpec(playerSpec.Collider)
	if err != nil {
		return 0, fmt.Errorf("player: collider: %w", err)
	}

	sheet, err := LoadImage(playerSpec.Animation.Sheet)
	if err != nil {
		return 0, fmt.Errorf("player: load sprite sheet: %w", err)
	}

	defs := make(map[string]component.AnimationDef, len(playerSpec.Animation.Defs))
	frameW := 0
	for name, defSpec := range playerSpec.Animation.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        defSpec.Row,
			ColStart:   defSpec.ColStart,
			FrameCount: defSpec.FrameCount,
			FrameW:     defSpec.FrameW,
			FrameH:     defSpec.FrameH,
			FPS:        defSpec.FPS,
			Loop:       defSpec.Loop,
		}
		frameW = max(frameW, defSpec.FrameW)
	}
	if _, ok := defs[playerSpec.Animation.Current]; !ok {
		return 0, fmt.Errorf("player: unknown initial animation %q", playerSpec.Animation.Current)
	}

	transform := transformFromSpec(playerSpec.Transform)
	transform.X, transform.Y = x, y
	if playerSpec.Size > 0 && frameW > 0 {
		transform.ScaleX = playerSpec.Size / float64(frameW)
		transform.ScaleY = transform.ScaleX
	}

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		Speed:    playerSpec.Speed,
		HalfSize: playerSpec.Size / 2,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}
	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, entity, component.FireControlComponent.Kind(), &component.FireControl{
		Cooldown:    component.NewTimer(playerSpec.Fire.Cooldown, component.TimerRepeating),
		BulletSpeed: playerSpec.Fire.BulletSpeed,
	}); err != nil {
		return 0, fmt.Errorf("player: add fire control: %w", err)
	}
	if err := ecs.Add(w, entity, component.ScoreComponent.Kind(), &component.Score{}); err != nil {
		return 0, fmt.Errorf("player: add score: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), transform); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Image:     sheet,
		UseSource: playerSpec.Sprite.UseSource,
		OriginX:   playerSpec.Sprite.OriginX,
		OriginY:   playerSpec.Sprite.OriginY,
		Alpha:     1,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, entity, component.AnimationComponent.Kind(), &component.Animation{
		Sheet:   sheet,
		Defs:    defs,
		Current: playerSpec.Animation.Current,
		Playing: playerSpec.Animation.Playing,
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: playerSpec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}

	return entity, nil
}
