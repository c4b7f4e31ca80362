package entity

import (
	"fmt"
	"image"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/levels"
)

// SpawnOptions shifts a map in the world and controls collider generation.
type SpawnOptions struct {
	OriginX       float64
	OriginY       float64
	SkipColliders bool
}

// SpawnMap creates one sprite entity per nonzero tile of every visible layer,
// merged static colliders for collision layers, and the MapBounds singleton.
// All tiles resolve against the first tileset. sheet may be nil, in which
// case tiles carry their source rectangles but no image.
func SpawnMap(w *ecs.World, m *levels.Map, sheet *ebiten.Image, opts SpawnOptions) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("tilemap: nil map")
	}
	if len(m.Tilesets) == 0 {
		return 0, fmt.Errorf("tilemap: no tilesets")
	}
	atlas, err := levels.NewAtlas(m.Tilesets[0])
	if err != nil {
		return 0, fmt.Errorf("tilemap: %w", err)
	}

	bounds := emptyBounds()
	spawned := 0
	for layerIdx, layer := range m.Layers {
		if !layer.IsTileLayer() {
			log.Printf("tilemap: skipping %s layer %q", layer.Type, layer.Name)
			continue
		}
		offX := opts.OriginX + layer.OffsetX
		offY := opts.OriginY - layer.OffsetY
		growBounds(&bounds, m.Width, m.Height, m.TileWidth, m.TileHeight, offX, offY)

		// Hidden layers draw nothing but still collide.
		for i, raw := range layer.Data {
			if !layer.Visible {
				break
			}
			id, flips := levels.DecodeGID(raw)
			if id == 0 {
				continue
			}
			src, ok := atlas.Frame(id)
			if !ok {
				continue
			}
			col, row := levels.TileGridPosition(i, m.Width, m.Height)
			x, y := levels.TileWorldPosition(col, row, m.TileWidth, m.TileHeight, offX, -offY)

			if err := spawnTile(w, tileSpawn{
				tile:    component.Tile{Layer: layerIdx, Col: col, Row: row, ID: id},
				x:       x,
				y:       y,
				image:   sheet,
				source:  src,
				alpha:   layer.Opacity,
				flips:   flips,
				useRect: true,
			}); err != nil {
				return spawned, err
			}
			spawned++
		}

		if layer.IsCollision() && !opts.SkipColliders {
			solid := make([]bool, len(layer.Data))
			for i, raw := range layer.Data {
				id, _ := levels.DecodeGID(raw)
				solid[i] = id != 0
			}
			if err := addMergedTileColliders(w, solid, m.Width, m.Height, m.TileWidth, m.TileHeight, offX, offY); err != nil {
				return spawned, err
			}
		}
	}

	if err := addMapBounds(w, bounds); err != nil {
		return spawned, err
	}
	return spawned, nil
}

// SpawnTMX spawns a parsed TMX map centred on the world origin. Each tile uses
// its own tileset: sheets are cut by their atlas, collection tiles use their
// own image.
func SpawnTMX(w *ecs.World, tmx *levels.TMX, opts SpawnOptions) (int, error) {
	if tmx == nil || tmx.Map == nil {
		return 0, fmt.Errorf("tmx: nil map")
	}
	m := tmx.Map

	for _, og := range m.ObjectGroups {
		log.Printf("tmx: skipping object group %q", og.Name)
	}
	for _, il := range m.ImageLayers {
		log.Printf("tmx: skipping image layer %q", il.Name)
	}

	images := make(map[string]*ebiten.Image)
	load := func(path string) (*ebiten.Image, error) {
		if img, ok := images[path]; ok {
			return img, nil
		}
		img, err := LoadImage(path)
		if err != nil {
			return nil, fmt.Errorf("tmx: load image %s: %w", path, err)
		}
		images[path] = img
		return img, nil
	}

	ox, oy := tmx.Origin()
	spawned := 0
	for layerIdx, layer := range m.Layers {
		var cells []levels.TMXCell
		if layer.Visible {
			cells = tmx.Cells(layerIdx)
		}
		for _, cell := range cells {
			spawn := tileSpawn{
				tile:  component.Tile{Layer: layerIdx, Col: cell.Col, Row: cell.Row, ID: cell.LocalID},
				x:     cell.X + opts.OriginX,
				y:     cell.Y + opts.OriginY,
				alpha: float64(layer.Opacity),
				flips: cell.Flips,
			}
			if cell.Tileset.IsCollection() {
				path, ok := cell.Tileset.TileImages[cell.LocalID]
				if !ok {
					continue
				}
				img, err := load(path)
				if err != nil {
					return spawned, err
				}
				spawn.image = img
			} else {
				src, ok := cell.Tileset.Atlas.Index(int(cell.LocalID))
				if !ok {
					continue
				}
				img, err := load(cell.Tileset.Image)
				if err != nil {
					return spawned, err
				}
				spawn.image = img
				spawn.source = src
				spawn.useRect = true
			}
			if err := spawnTile(w, spawn); err != nil {
				return spawned, err
			}
			spawned++
		}

		if tmx.IsCollisionLayer(layerIdx) && !opts.SkipColliders {
			solid := make([]bool, m.Width*m.Height)
			for i, tile := range layer.Tiles {
				solid[i] = tile != nil && !tile.IsNil()
			}
			offX := ox + float64(layer.OffsetX) + opts.OriginX
			offY := oy - float64(layer.OffsetY) + opts.OriginY
			if err := addMergedTileColliders(w, solid, m.Width, m.Height, m.TileWidth, m.TileHeight, offX, offY); err != nil {
				return spawned, err
			}
		}
	}

	minX, minY, maxX, maxY := tmx.Bounds()
	if err := addMapBounds(w, component.MapBounds{
		MinX: minX + opts.OriginX,
		MinY: minY + opts.OriginY,
		MaxX: maxX + opts.OriginX,
		MaxY: maxY + opts.OriginY,
	}); err != nil {
		return spawned, err
	}
	return spawned, nil
}

type tileSpawn struct {
	tile    component.Tile
	x, y    float64
	image   *ebiten.Image
	source  image.Rectangle
	useRect bool
	alpha   float64
	flips   levels.Flips
}

func spawnTile(w *ecs.World, s tileSpawn) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TileComponent.Kind(), &s.tile); err != nil {
		return fmt.Errorf("tilemap: add tile: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: s.x, Y: s.y, ScaleX: 1, ScaleY: 1}); err != nil {
		return fmt.Errorf("tilemap: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:     s.image,
		Source:    s.source,
		UseSource: s.useRect,
		Alpha:     s.alpha,
		FlipH:     s.flips.H,
		FlipV:     s.flips.V,
		FlipD:     s.flips.D,
	}); err != nil {
		return fmt.Errorf("tilemap: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: s.tile.Layer}); err != nil {
		return fmt.Errorf("tilemap: add render layer: %w", err)
	}
	return nil
}

// addMergedTileColliders turns the solid cells of a layer into as few static
// boxes as the greedy merge finds. originX/originY is the centre of cell
// (col 0, row 0).
func addMergedTileColliders(w *ecs.World, solid []bool, width, height, tileW, tileH int, originX, originY float64) error {
	for _, r := range levels.MergeSolidCells(solid, width, height) {
		cx, cy, hw, hh := r.WorldBox(height, tileW, tileH, originX, originY)
		if _, err := newWallCollider(w, cx, cy, &component.PhysicsBody{
			Type:       component.BodyStatic,
			Collider:   component.ColliderCuboid,
			HalfWidth:  hw,
			HalfHeight: hh,
			Friction:   0.9,
		}); err != nil {
			return fmt.Errorf("tilemap: collider: %w", err)
		}
	}
	return nil
}

func emptyBounds() component.MapBounds {
	return component.MapBounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

func growBounds(b *component.MapBounds, width, height, tileW, tileH int, originX, originY float64) {
	minX := originX - float64(tileW)/2
	minY := originY - float64(tileH)/2
	b.MinX = math.Min(b.MinX, minX)
	b.MinY = math.Min(b.MinY, minY)
	b.MaxX = math.Max(b.MaxX, minX+float64(width*tileW))
	b.MaxY = math.Max(b.MaxY, minY+float64(height*tileH))
}

func addMapBounds(w *ecs.World, b component.MapBounds) error {
	if math.IsInf(b.MinX, 0) {
		return nil
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MapBoundsComponent.Kind(), &b); err != nil {
		return fmt.Errorf("tilemap: add map bounds: %w", err)
	}
	return nil
}
