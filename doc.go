/*
Package gantry provides the Entity-Component-System (ECS) core of the Gantry
game-engine SDK.

Gantry groups entities by archetype: every entity with the same set of
component types lives in the same archetype, and each archetype stores its
component data in contiguous per-type columns for cache-friendly iteration.
Entity handles carry a generation counter so references to destroyed entities
are detected rather than silently reading recycled slots.

Core Concepts:

  - EntityID: a stable handle (slot index + generation) for a game object.
  - Component: a plain data struct registered once and identified by a dense type id.
  - Archetype: the columnar storage for one canonical component signature.
  - Signature: the sorted, duplicate-free set of component type ids keying an archetype.
  - System: a named callback invoked once per frame in registration order.

Basic Usage:

	// Create a world
	world := gantry.Factory.NewWorld(gantry.DefaultConfig())

	// Define components
	position := gantry.FactoryNewComponent[Position]()
	velocity := gantry.FactoryNewComponent[Velocity]()

	// Create an entity
	e, _ := world.CreateEntity(position, velocity)
	pos, _ := position.GetFromEntity(world, e)
	pos.X, pos.Y = 10, 20

	// Query entities and process them
	query := gantry.Factory.NewQuery()
	node := query.And(position, velocity)
	cursor := gantry.Factory.NewCursor(node, world)

	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Structural changes (create, destroy, add/remove component) requested while a
cursor or ForEach pass is running must go through the Queue* methods; they are
applied when the pass finishes, never mid-iteration.

The ECS core is single-threaded by contract: a frame runs Update then Render
on one goroutine, each system running to completion before the next starts.

Gantry is the underlying ECS for the Gantry engine SDK but also works as a
standalone library.
*/
package gantry
