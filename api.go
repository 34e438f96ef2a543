package gantry

import (
	"iter"
)

// World owns all ECS state for one scene: the entity table, the archetype
// store, the hierarchy index, the deferred operation queue, and the system
// scheduler.
type World interface {
	CreateEntity(components ...Component) (EntityID, error)
	DestroyEntity(id EntityID) error
	DestroySubtree(root EntityID) error
	Resolve(id EntityID) (Location, error)
	Alive(id EntityID) bool
	EntityCount() int

	AddComponent(id EntityID, c Component) error
	RemoveComponent(id EntityID, c Component) error

	QueueCreate(components ...Component) error
	QueueDestroy(id EntityID) error
	QueueAddComponent(id EntityID, c Component) error
	QueueRemoveComponent(id EntityID, c Component) error

	SetParent(child, parent EntityID) error
	ClearParent(child EntityID) error
	Parent(id EntityID) (EntityID, bool)
	Children(id EntityID) iter.Seq[EntityID]
	SetDestroyCallback(id EntityID, callback EntityDestroyCallback) error

	ForEach(sig Signature, fn func(EntityID)) error

	AddSystem(s System)
	RemoveSystem(name string) bool
	Update(dt float64)
	Render()

	Locked() bool
	Lock()
	Unlock()
}

// EntityDestroyCallback runs when an entity is destroyed, before its slot is
// recycled. Destruction order is observable through it: in a cascade,
// children fire before their parents.
type EntityDestroyCallback func(EntityID)

// Component identifies one registered component kind. Concrete values come
// from FactoryNewComponent and double as query terms.
type Component interface {
	TypeID() ComponentTypeID
}

// Archetype is the read-only view of one signature's columnar storage.
type Archetype interface {
	ID() uint32
	Signature() Signature
	Len() int
}

// System is a unit of per-frame logic. Systems run in registration order; a
// failing or panicking system is logged and skipped, never aborting the frame.
type System interface {
	Name() string
	Update(w World, dt float64) error
}

// RenderSystem is implemented by systems that also participate in the render
// pass. Render runs after every system's Update for the frame.
type RenderSystem interface {
	System
	Render(w World) error
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(archetype Archetype) bool
}

type iCursor interface {
	Entities() iter.Seq[EntityID]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
	Clear()
}

// Warning: internal dependencies abound!
type Cursor struct {
	// The query to filter entities
	query QueryNode

	// The world to iterate over
	world *world

	// Current iteration state
	currentArchetype *archetype
	archetypeIndex   int
	entityIndex      int
	remaining        int

	// Initialization state
	initialized       bool
	matchedArchetypes []*archetype
}

// AccessibleComponent extends a base Component with typed column access.
type AccessibleComponent[T any] struct {
	Component
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
