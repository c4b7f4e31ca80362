package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/levels"
	"github.com/milk9111/topdown/prefabs"
)

const previewSize = 512

// previewGame cycles through the player prefab's animations. Left/Right
// switch clips, Up/Down change the preview scale.
type previewGame struct {
	sheet  *ebiten.Image
	names  []string
	clips  map[string]clip
	active int
	frame  int
	tick   int
	scale  float64
}

type clip struct {
	frames        []image.Rectangle
	ticksPerFrame int
	loop          bool
}

func (g *previewGame) current() clip {
	return g.clips[g.names[g.active]]
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.active = (g.active + 1) % len(g.names)
		g.frame, g.tick = 0, 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.active = (g.active + len(g.names) - 1) % len(g.names)
		g.frame, g.tick = 0, 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.scale++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.scale > 1 {
		g.scale--
	}

	c := g.current()
	if len(c.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= c.ticksPerFrame {
		g.tick = 0
		g.frame++
		if g.frame >= len(c.frames) {
			if c.loop {
				g.frame = 0
			} else {
				g.frame = len(c.frames) - 1
			}
		}
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})
	c := g.current()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  frame %d/%d  x%.0f", g.names[g.active], g.frame+1, len(c.frames), g.scale), 10, 10)
	if g.sheet == nil || len(c.frames) == 0 {
		return
	}

	r := c.frames[g.frame]
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((previewSize-float64(r.Dx())*g.scale)/2, (previewSize-float64(r.Dy())*g.scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.sheet.SubImage(r).(*ebiten.Image), op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

// clipFrames lays the sheet out as a grid and returns def's frames in order.
func clipFrames(def prefabs.AnimationDefSpec) []image.Rectangle {
	if def.FrameW <= 0 || def.FrameH <= 0 || def.FrameCount <= 0 {
		return nil
	}
	cols := def.ColStart + def.FrameCount
	atlas := levels.AtlasFromGrid(def.FrameW, def.FrameH, cols, def.Row+1, 0, 0)
	frames := make([]image.Rectangle, 0, def.FrameCount)
	for i := 0; i < def.FrameCount; i++ {
		r, ok := atlas.Index(def.Row*cols + def.ColStart + i)
		if !ok {
			break
		}
		frames = append(frames, r)
	}
	return frames
}

func ticksPerFrame(fps float64) int {
	if fps <= 0 {
		return 1
	}
	return max(1, int(float64(ebiten.DefaultTPS)/fps))
}

func buildClips(anim prefabs.AnimationSpec) ([]string, map[string]clip) {
	clips := make(map[string]clip, len(anim.Defs))
	names := make([]string, 0, len(anim.Defs))
	for name, def := range anim.Defs {
		clips[name] = clip{frames: clipFrames(def), ticksPerFrame: ticksPerFrame(def.FPS), loop: def.Loop}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, clips
}

func main() {
	start := flag.String("anim", "", "animation to show first (defaults to the prefab's current one)")
	scale := flag.Float64("scale", 2, "preview scale")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	names, clips := buildClips(spec.Animation)
	if len(names) == 0 {
		log.Fatalf("spsa: %s has no animations", spec.Name)
	}

	sheet, err := assets.LoadImage(spec.Animation.Sheet)
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{sheet: sheet, names: names, clips: clips, scale: max(1, *scale)}
	want := *start
	if want == "" {
		want = spec.Animation.Current
	}
	for i, name := range names {
		if name == want {
			g.active = i
		}
	}

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
