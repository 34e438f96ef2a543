package engine

import (
	"github.com/gantry-engine/gantry"
	"github.com/gantry-engine/gantry/gmath"
	"github.com/gantry-engine/gantry/resource"
)

// Transform places an entity in the world.
type Transform struct {
	Local gmath.Transform
}

// Velocity is linear velocity in world units per second.
type Velocity struct {
	Linear gmath.Vec3
}

// RigidBody is the minimal state the physics backends integrate.
type RigidBody struct {
	Velocity  gmath.Vec3
	Mass      float32
	Kinematic bool
}

// Renderable points at the assets the render system draws.
type Renderable struct {
	Mesh    resource.Handle
	Texture resource.Handle
	Visible bool
}

// Name is a debug label.
type Name struct {
	Value string
}

// Components holds the registered accessors for the built-in component
// types. One set per process; component type IDs are global.
type Components struct {
	Transform  gantry.AccessibleComponent[Transform]
	Velocity   gantry.AccessibleComponent[Velocity]
	RigidBody  gantry.AccessibleComponent[RigidBody]
	Renderable gantry.AccessibleComponent[Renderable]
	Name       gantry.AccessibleComponent[Name]
}

// RegisterComponents registers the built-in component types. Safe to call
// more than once.
func RegisterComponents() Components {
	return Components{
		Transform:  gantry.FactoryNewComponent[Transform](),
		Velocity:   gantry.FactoryNewComponent[Velocity](),
		RigidBody:  gantry.FactoryNewComponent[RigidBody](),
		Renderable: gantry.FactoryNewComponent[Renderable](),
		Name:       gantry.FactoryNewComponent[Name](),
	}
}
