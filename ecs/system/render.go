package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

type RenderSystem struct {
	order []ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw paints every sprite through the camera, lowest render layer first and
// by entity id within a layer.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	view := cameraView(w)
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Background != nil {
			screen.Fill(cam.Background)
		}
	}

	r.order = DrawOrder(w, r.order[:0])
	for _, e := range r.order {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM = spriteGeoM(view, t, s, img.Bounds().Dx(), img.Bounds().Dy())
		applySpriteColor(&op.ColorScale, s)
		screen.DrawImage(img, op)
	}
}

// DrawOrder lists drawable entities sorted by render layer, then id.
func DrawOrder(w *ecs.World, dst []ecs.Entity) []ecs.Entity {
	dst = append(dst, w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())...)
	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(dst, func(i, j int) bool {
		li, lj := layerOf(dst[i]), layerOf(dst[j])
		if li != lj {
			return li < lj
		}
		return dst[i].ID() < dst[j].ID()
	})
	return dst
}

// spriteGeoM centres the image on its origin, applies tile flips, scale and
// rotation in world space and then maps the result onto the screen.
func spriteGeoM(view View, t *component.Transform, s *component.Sprite, imgW, imgH int) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Translate(-float64(imgW)/2-s.OriginX, -float64(imgH)/2-s.OriginY)

	if s.FlipD {
		var transpose ebiten.GeoM
		transpose.SetElement(0, 0, 0)
		transpose.SetElement(0, 1, 1)
		transpose.SetElement(1, 0, 1)
		transpose.SetElement(1, 1, 0)
		geo.Concat(transpose)
	}
	if s.FlipH {
		geo.Scale(-1, 1)
	}
	if s.FlipV {
		geo.Scale(1, -1)
	}

	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	geo.Scale(sx, sy)
	// Screen space is Y-down, so a counter clockwise world rotation turns
	// clockwise here.
	geo.Rotate(-t.Rotation)
	geo.Scale(view.zoom(), view.zoom())

	x, y := view.WorldToScreen(t.X, t.Y)
	geo.Translate(x, y)
	return geo
}

func applySpriteColor(cs *ebiten.ColorScale, s *component.Sprite) {
	if s.Tint != nil {
		cs.ScaleWithColor(s.Tint)
	}
	alpha := s.Alpha
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	cs.ScaleAlpha(float32(alpha))
}
