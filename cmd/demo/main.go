// Demo: a handful of falling sprites driven by the stock physics and render
// systems, hosted in an ebiten game loop.
package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gantry-engine/gantry/ebitenbackend"
	"github.com/gantry-engine/gantry/engine"
	"github.com/gantry-engine/gantry/gmath"
	"github.com/gantry-engine/gantry/resource"
)

type game struct {
	ctx      *engine.Context
	renderer *ebitenbackend.Renderer
}

func (g *game) Update() error {
	if g.ctx.Input.KeyJustPressed(engine.KeySpace) {
		g.spawnSprite()
	}
	if g.ctx.Input.KeyJustPressed(engine.KeyEscape) {
		return ebiten.Termination
	}
	dt := g.ctx.Config.FixedTimestep
	if dt <= 0 {
		dt = 1.0 / float64(ebiten.TPS())
	}
	g.ctx.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.ctx.Render()
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctx.Config.WindowWidth, g.ctx.Config.WindowHeight
}

var spriteHandle = resource.HandleFor("builtin/sprite")

func (g *game) spawnSprite() {
	c := g.ctx.Components
	e, err := g.ctx.World.CreateEntity(c.Transform, c.RigidBody, c.Renderable)
	if err != nil {
		g.ctx.Log.Error("spawn failed")
		return
	}
	tr := gmath.NewTransform()
	tr.Position = gmath.Vec3{
		X: rand.Float32() * float32(g.ctx.Config.WindowWidth),
		Y: 0,
	}
	if err := c.Transform.Set(g.ctx.World, e, engine.Transform{Local: tr}); err != nil {
		log.Print(err)
	}
	if err := c.RigidBody.Set(g.ctx.World, e, engine.RigidBody{
		Velocity: gmath.Vec3{X: rand.Float32()*40 - 20},
	}); err != nil {
		log.Print(err)
	}
	if err := c.Renderable.Set(g.ctx.World, e, engine.Renderable{
		Texture: spriteHandle,
		Visible: true,
	}); err != nil {
		log.Print(err)
	}
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = engine.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	cfg.AppName = "gantry-demo"

	renderer := ebitenbackend.NewRenderer()
	ctx, err := engine.NewContext(cfg, engine.Options{
		Renderer: renderer,
		Input:    ebitenbackend.NewInput(),
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := ctx.Initialize(); err != nil {
		log.Fatal(err)
	}
	defer ctx.Shutdown()
	ctx.InstallDefaultSystems()

	// Screen-space gravity: +Y is down.
	ctx.Physics.SetGravity(gmath.Vec3{Y: 98.1})

	sprite := ebiten.NewImage(16, 16)
	sprite.Fill(color.RGBA{R: 0xe0, G: 0x60, B: 0x40, A: 0xff})
	renderer.RegisterImage(spriteHandle, sprite)

	g := &game{ctx: ctx, renderer: renderer}
	g.spawnSprite()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.AppName)
	ebiten.SetVsyncEnabled(cfg.VSync)
	if cfg.MaxFPS > 0 {
		ebiten.SetTPS(cfg.MaxFPS)
	}
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
