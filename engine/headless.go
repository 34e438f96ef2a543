package engine

import (
	"github.com/gantry-engine/gantry/gmath"
	"github.com/gantry-engine/gantry/resource"
)

var (
	_ Renderer     = &HeadlessRenderer{}
	_ AudioDevice  = &NullAudio{}
	_ PhysicsWorld = &SimplePhysics{}
	_ InputManager = &ScriptedInput{}
)

// HeadlessRenderer counts draw calls instead of drawing. It backs tests and
// server builds.
type HeadlessRenderer struct {
	width, height int
	frames        int
	draws         int
	lastFrame     []DrawCall
	current       []DrawCall
}

// DrawCall records one Draw invocation.
type DrawCall struct {
	Mesh    resource.Handle
	Texture resource.Handle
	World   gmath.Mat4
}

func NewHeadlessRenderer() *HeadlessRenderer {
	return &HeadlessRenderer{}
}

func (r *HeadlessRenderer) Initialize(width, height int) error {
	r.width, r.height = width, height
	return nil
}

func (r *HeadlessRenderer) BeginFrame() {
	r.current = r.current[:0]
}

func (r *HeadlessRenderer) Draw(mesh, texture resource.Handle, world gmath.Mat4) {
	r.draws++
	r.current = append(r.current, DrawCall{Mesh: mesh, Texture: texture, World: world})
}

func (r *HeadlessRenderer) EndFrame() {
	r.frames++
	r.lastFrame = append(r.lastFrame[:0], r.current...)
}

func (r *HeadlessRenderer) Capabilities() RendererCaps {
	return RendererCaps{Name: "headless", MaxTexSize: 1 << 14, Instancing: false}
}

func (r *HeadlessRenderer) Shutdown() {}

// Frames reports how many frames have been completed.
func (r *HeadlessRenderer) Frames() int { return r.frames }

// TotalDraws reports cumulative draw calls across all frames.
func (r *HeadlessRenderer) TotalDraws() int { return r.draws }

// LastFrame returns the draw calls of the most recently ended frame.
func (r *HeadlessRenderer) LastFrame() []DrawCall { return r.lastFrame }

// NullAudio drops every play request.
type NullAudio struct {
	played int
}

func NewNullAudio() *NullAudio { return &NullAudio{} }

func (a *NullAudio) Initialize() error { return nil }

func (a *NullAudio) Play(sound resource.Handle, volume float32) error {
	a.played++
	return nil
}

func (a *NullAudio) StopAll() {}

func (a *NullAudio) Shutdown() {}

// Played reports how many play requests were accepted.
func (a *NullAudio) Played() int { return a.played }

// SimplePhysics is a naive gravity integrator: no collision, no solver.
type SimplePhysics struct {
	gravity gmath.Vec3
}

func NewSimplePhysics() *SimplePhysics {
	return &SimplePhysics{gravity: gmath.Vec3{Y: -9.81}}
}

func (p *SimplePhysics) Initialize() error { return nil }

func (p *SimplePhysics) SetGravity(g gmath.Vec3) { p.gravity = g }

func (p *SimplePhysics) Gravity() gmath.Vec3 { return p.gravity }

// Integrate applies semi-implicit Euler. Kinematic bodies ignore gravity
// but still move by their velocity.
func (p *SimplePhysics) Integrate(t *gmath.Transform, rb *RigidBody, dt float32) {
	if !rb.Kinematic {
		rb.Velocity = rb.Velocity.Add(p.gravity.Scale(dt))
	}
	t.Position = t.Position.Add(rb.Velocity.Scale(dt))
}

func (p *SimplePhysics) Shutdown() {}

// ScriptedInput replays pre-set key and mouse state, for tests.
type ScriptedInput struct {
	down      map[Key]bool
	prev      map[Key]bool
	mouse     map[MouseButton]bool
	mx, my    int
	polls     int
	nextFrame map[Key]bool
}

func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{
		down:      make(map[Key]bool),
		prev:      make(map[Key]bool),
		mouse:     make(map[MouseButton]bool),
		nextFrame: make(map[Key]bool),
	}
}

// Press marks a key as held starting at the next Poll.
func (in *ScriptedInput) Press(k Key) { in.nextFrame[k] = true }

// ReleaseKey clears a key starting at the next Poll.
func (in *ScriptedInput) ReleaseKey(k Key) { in.nextFrame[k] = false }

// SetMouse sets button and cursor state directly.
func (in *ScriptedInput) SetMouse(b MouseButton, down bool, x, y int) {
	in.mouse[b] = down
	in.mx, in.my = x, y
}

func (in *ScriptedInput) Poll() {
	in.polls++
	in.prev = in.down
	next := make(map[Key]bool, len(in.down))
	for k, v := range in.down {
		next[k] = v
	}
	for k, v := range in.nextFrame {
		next[k] = v
	}
	in.down = next
	in.nextFrame = make(map[Key]bool)
}

func (in *ScriptedInput) KeyDown(k Key) bool { return in.down[k] }

func (in *ScriptedInput) KeyJustPressed(k Key) bool {
	return in.down[k] && !in.prev[k]
}

func (in *ScriptedInput) MouseDown(b MouseButton) bool { return in.mouse[b] }

func (in *ScriptedInput) MousePosition() (int, int) { return in.mx, in.my }
