package engine

import (
	"github.com/gantry-engine/gantry"
)

var (
	_ gantry.System       = &PhysicsSystem{}
	_ gantry.System       = &VelocitySystem{}
	_ gantry.RenderSystem = &RenderSystem{}
)

// PhysicsSystem integrates every Transform+RigidBody entity through the
// configured physics backend.
type PhysicsSystem struct {
	components Components
	physics    PhysicsWorld
	node       gantry.QueryNode
}

func NewPhysicsSystem(components Components, physics PhysicsWorld) *PhysicsSystem {
	q := gantry.Factory.NewQuery()
	return &PhysicsSystem{
		components: components,
		physics:    physics,
		node:       q.And(components.Transform, components.RigidBody),
	}
}

func (s *PhysicsSystem) Name() string { return "physics" }

func (s *PhysicsSystem) Update(w gantry.World, dt float64) error {
	cursor := gantry.Factory.NewCursor(s.node, w)
	for cursor.Next() {
		t := s.components.Transform.GetFromCursor(cursor)
		rb := s.components.RigidBody.GetFromCursor(cursor)
		s.physics.Integrate(&t.Local, rb, float32(dt))
	}
	return nil
}

// VelocitySystem moves Transform+Velocity entities that carry no rigid
// body. It covers kinematic-only scenes without a physics backend.
type VelocitySystem struct {
	components Components
	node       gantry.QueryNode
}

func NewVelocitySystem(components Components) *VelocitySystem {
	q := gantry.Factory.NewQuery()
	return &VelocitySystem{
		components: components,
		node: q.And(
			components.Transform,
			components.Velocity,
			q.Not(components.RigidBody),
		),
	}
}

func (s *VelocitySystem) Name() string { return "velocity" }

func (s *VelocitySystem) Update(w gantry.World, dt float64) error {
	cursor := gantry.Factory.NewCursor(s.node, w)
	for cursor.Next() {
		t := s.components.Transform.GetFromCursor(cursor)
		v := s.components.Velocity.GetFromCursor(cursor)
		t.Local.Position = t.Local.Position.Add(v.Linear.Scale(float32(dt)))
	}
	return nil
}

// RenderSystem draws every visible Transform+Renderable entity. It runs in
// the render pass only.
type RenderSystem struct {
	components Components
	renderer   Renderer
	node       gantry.QueryNode
}

func NewRenderSystem(components Components, renderer Renderer) *RenderSystem {
	q := gantry.Factory.NewQuery()
	return &RenderSystem{
		components: components,
		renderer:   renderer,
		node:       q.And(components.Transform, components.Renderable),
	}
}

func (s *RenderSystem) Name() string { return "render" }

func (s *RenderSystem) Update(w gantry.World, dt float64) error { return nil }

func (s *RenderSystem) Render(w gantry.World) error {
	s.renderer.BeginFrame()
	cursor := gantry.Factory.NewCursor(s.node, w)
	for cursor.Next() {
		r := s.components.Renderable.GetFromCursor(cursor)
		if !r.Visible {
			continue
		}
		t := s.components.Transform.GetFromCursor(cursor)
		s.renderer.Draw(r.Mesh, r.Texture, t.Local.Mat4())
	}
	s.renderer.EndFrame()
	return nil
}
