package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/system"
	"github.com/milk9111/topdown/prefabs"
	"golang.design/x/clipboard"
)

// Options are the command line settings for one session.
type Options struct {
	MapName string
	TMXName string
	Debug   bool
	Seed    uint64
	Watch   bool
}

type Game struct {
	opts Options
	rng  *rand.Rand

	scene     *scene
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	fire      *system.FireSystem
	enemies   *system.EnemySystem
	render    *system.RenderSystem

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
	debug   bool

	watcher     *prefabs.Watcher
	clipboardOK bool
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		opts:    opts,
		rng:     rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		debug:   opts.Debug,
		physics: system.NewPhysicsSystem(),
		render:  system.NewRenderSystem(),
	}

	sc, err := buildScene(opts, g.rng)
	if err != nil {
		return nil, err
	}
	g.scene = sc

	g.fire = system.NewFireSystem(sc.bullet)
	g.enemies = system.NewEnemySystem(sc.sight, g.rng)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewCursorSystem(),
		system.NewPlayerMovementSystem(),
		g.fire,
		g.enemies,
		g.physics,
		system.NewConfineSystem(),
		system.NewBulletCollisionSystem(),
		system.NewPickupSystem(),
		system.NewBulletExpirySystem(),
		system.NewAnimationSystem(),
		system.NewCameraSystem(),
		system.NewPickupHoverSystem(),
	)

	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if opts.Watch {
		g.startWatcher()
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.copyCursor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.restart("manual restart")
	}

	g.scheduler.Update(g.scene.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.scene.world
	g.render.Draw(w, screen)

	collected, enemies := g.scene.score()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d    Enemies: %d", collected, enemies), 10, 10)

	if g.debug {
		system.DrawPhysicsDebug(g.physics.Space(), w, screen)
		system.DrawDebugText(w, screen)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch: close: %v", err)
		}
	}
}

// restart rebuilds the scene from disk. A broken prefab or map keeps the
// current scene running.
func (g *Game) restart(reason string) {
	sc, err := buildScene(g.opts, g.rng)
	if err != nil {
		log.Printf("%s failed, keeping current scene: %v", reason, err)
		return
	}
	log.Printf("%s: %d tiles", reason, sc.tiles)

	g.scene = sc
	g.physics.Reset()
	g.fire.SetBulletSpec(sc.bullet)
	g.enemies.SetSightRule(sc.sight)
	g.paused = false
}

func (g *Game) copyCursor() {
	e, ok := ecs.First(g.scene.world, component.CursorComponent.Kind())
	if !ok {
		return
	}
	cursor, ok := ecs.Get(g.scene.world, e, component.CursorComponent.Kind())
	if !ok || !cursor.Valid {
		return
	}
	text := fmt.Sprintf("%.1f, %.1f", cursor.X, cursor.Y)
	if !g.clipboardOK {
		log.Printf("cursor at %s", text)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	log.Printf("copied cursor position %s", text)
}

func (g *Game) startWatcher() {
	var dirs []string
	for _, dir := range []string{"prefabs", filepath.Join("prefabs", "scripts"), "levels"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if g.opts.TMXName != "" {
		if dir := filepath.Dir(g.opts.TMXName); dir != "." {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		log.Printf("watch: no prefab or level directories on disk")
		return
	}

	watcher, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("watch: %v", err)
		return
	}
	g.watcher = watcher
	log.Printf("watch: %v", dirs)
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}

	select {
	case err := <-g.watcher.Errors:
		if !errors.Is(err, os.ErrClosed) {
			log.Printf("watch: %v", err)
		}
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	g.restart(fmt.Sprintf("reload after %s", filepath.Base(changed[len(changed)-1])))
}
