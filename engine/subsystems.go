package engine

import (
	"github.com/gantry-engine/gantry/gmath"
	"github.com/gantry-engine/gantry/resource"
)

// RendererCaps advertises what a renderer backend can do.
type RendererCaps struct {
	Name       string
	MaxTexSize int
	Instancing bool
}

// Renderer is the drawing surface behind the stock render system. One frame
// is BeginFrame, any number of draws, EndFrame.
type Renderer interface {
	Initialize(width, height int) error
	BeginFrame()
	Draw(mesh, texture resource.Handle, world gmath.Mat4)
	EndFrame()
	Capabilities() RendererCaps
	Shutdown()
}

// AudioDevice plays loaded sound assets. Mixing and DSP are the backend's
// business.
type AudioDevice interface {
	Initialize() error
	Play(sound resource.Handle, volume float32) error
	StopAll()
	Shutdown()
}

// PhysicsWorld advances rigid bodies. Integrate mutates the transform in
// place; the stock physics system calls it per matching entity.
type PhysicsWorld interface {
	Initialize() error
	SetGravity(g gmath.Vec3)
	Gravity() gmath.Vec3
	Integrate(t *gmath.Transform, rb *RigidBody, dt float32)
	Shutdown()
}

// Key identifies a logical input key, mapped by the backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	KeyEnter
	KeyW
	KeyA
	KeyS
	KeyD
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// InputManager exposes polled input state. Poll is called once per frame
// before systems run.
type InputManager interface {
	Poll()
	KeyDown(k Key) bool
	KeyJustPressed(k Key) bool
	MouseDown(b MouseButton) bool
	MousePosition() (x, y int)
}
