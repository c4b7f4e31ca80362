package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/prefabs"
)

// scene is everything built from disk for one run of the sandbox.
type scene struct {
	world  *ecs.World
	player ecs.Entity
	bullet *prefabs.BulletSpec
	sight  system.SightRule
	tiles  int
}

// buildScene loads the map and every prefab and spawns the sandbox: tiles
// first so they get the lowest ids, then walls, pickups, enemies, the player
// and the camera.
func buildScene(opts Options, rng *rand.Rand) (*scene, error) {
	w := ecs.NewWorld()
	sc := &scene{world: w}

	tiles, err := spawnLevel(w, opts)
	if err != nil {
		return nil, err
	}
	sc.tiles = tiles

	if _, err := entity.NewWall(w); err != nil {
		return nil, err
	}

	pickupSpec, err := prefabs.LoadPickupSpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if _, err := entity.SpawnPickups(w, rng, pickupSpec); err != nil {
		return nil, err
	}

	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if _, err := entity.SpawnEnemies(w, rng, enemySpec); err != nil {
		return nil, err
	}
	if enemySpec.SightScript != "" {
		rule, err := prefabs.LoadSightRule(enemySpec.SightScript)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		sc.sight = rule
	}

	if sc.player, err = entity.NewPlayer(w); err != nil {
		return nil, err
	}
	if _, err := entity.NewCamera(w); err != nil {
		return nil, err
	}

	if sc.bullet, err = prefabs.LoadBulletSpec(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return sc, nil
}

func spawnLevel(w *ecs.World, opts Options) (int, error) {
	if opts.TMXName != "" {
		tmx, err := levels.LoadTMX(opts.TMXName)
		if err != nil {
			return 0, fmt.Errorf("scene: %w", err)
		}
		return entity.SpawnTMX(w, tmx, entity.SpawnOptions{})
	}

	m, err := levels.LoadMap(opts.MapName)
	if err != nil {
		return 0, fmt.Errorf("scene: %w", err)
	}
	if len(m.Tilesets) == 0 {
		return 0, fmt.Errorf("scene: map %s has no tilesets", opts.MapName)
	}
	sheet, err := entity.LoadImage(m.Tilesets[0].Image)
	if err != nil {
		return 0, fmt.Errorf("scene: load tileset image: %w", err)
	}
	return entity.SpawnMap(w, m, sheet, entity.SpawnOptions{})
}

// score reports the player's collected pickups and the enemies left.
func (sc *scene) score() (collected, enemies int) {
	if s, ok := ecs.Get(sc.world, sc.player, component.ScoreComponent.Kind()); ok {
		collected = s.Collected
	}
	return collected, len(sc.world.Query(component.EnemyComponent.Kind()))
}
