package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gantry-engine/gantry"
	"github.com/gantry-engine/gantry/resource"
)

// Options selects the subsystem backends for a Context. Nil fields fall
// back to the headless implementations.
type Options struct {
	Renderer Renderer
	Audio    AudioDevice
	Physics  PhysicsWorld
	Input    InputManager
	Logger   *zap.Logger
}

// Context owns everything a running game needs: the world, the subsystems,
// the resource manager, and the logger. Build one, initialize it, drive it
// from the frame loop, shut it down.
type Context struct {
	Config     Config
	Log        *zap.Logger
	World      gantry.World
	Components Components
	Resources  *resource.Manager

	Renderer Renderer
	Audio    AudioDevice
	Physics  PhysicsWorld
	Input    InputManager

	initialized bool
	frame       uint64
}

// NewContext wires a context from config and options without touching the
// subsystems yet.
func NewContext(cfg Config, opts Options) (*Context, error) {
	log := opts.Logger
	if log == nil {
		var err error
		log, err = cfg.BuildLogger()
		if err != nil {
			return nil, err
		}
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewHeadlessRenderer()
	}
	audio := opts.Audio
	if audio == nil {
		audio = NewNullAudio()
	}
	physics := opts.Physics
	if physics == nil {
		physics = NewSimplePhysics()
	}
	input := opts.Input
	if input == nil {
		input = NewScriptedInput()
	}

	world := gantry.Factory.NewWorld(gantry.Config{
		InitialEntityCapacity: 256,
		Logger:                log.Named("world"),
	})

	return &Context{
		Config:     cfg,
		Log:        log,
		World:      world,
		Components: RegisterComponents(),
		Resources:  resource.NewManager(cfg.AssetRoot, cfg.MaxAssets, log.Named("resources")),
		Renderer:   renderer,
		Audio:      audio,
		Physics:    physics,
		Input:      input,
	}, nil
}

// Initialize brings up the subsystems in dependency order. Failures tear
// down whatever already started.
func (c *Context) Initialize() error {
	if c.initialized {
		return nil
	}
	if err := c.Renderer.Initialize(c.Config.WindowWidth, c.Config.WindowHeight); err != nil {
		return fmt.Errorf("renderer init: %w", err)
	}
	if err := c.Audio.Initialize(); err != nil {
		c.Renderer.Shutdown()
		return fmt.Errorf("audio init: %w", err)
	}
	if err := c.Physics.Initialize(); err != nil {
		c.Audio.Shutdown()
		c.Renderer.Shutdown()
		return fmt.Errorf("physics init: %w", err)
	}
	c.initialized = true
	c.Log.Info("engine initialized",
		zap.String("app", c.Config.AppName),
		zap.String("renderer", c.Renderer.Capabilities().Name),
	)
	return nil
}

// InstallDefaultSystems registers the stock physics, velocity, and render
// systems on the world, in that order.
func (c *Context) InstallDefaultSystems() {
	c.World.AddSystem(NewPhysicsSystem(c.Components, c.Physics))
	c.World.AddSystem(NewVelocitySystem(c.Components))
	c.World.AddSystem(NewRenderSystem(c.Components, c.Renderer))
}

// Update runs one simulation step: poll input, then the world's update pass.
func (c *Context) Update(dt float64) {
	c.Input.Poll()
	c.World.Update(dt)
	c.frame++
}

// Render runs the world's render pass.
func (c *Context) Render() {
	c.World.Render()
}

// Frame reports how many update steps have run.
func (c *Context) Frame() uint64 { return c.frame }

// Shutdown tears down subsystems in reverse of Initialize and flushes the
// logger.
func (c *Context) Shutdown() {
	if !c.initialized {
		return
	}
	c.Audio.StopAll()
	c.Physics.Shutdown()
	c.Audio.Shutdown()
	c.Renderer.Shutdown()
	c.Resources.UnloadAll(resource.TypeUnknown)
	c.initialized = false
	c.Log.Info("engine shut down", zap.Uint64("frames", c.frame))
	_ = c.Log.Sync()
}
