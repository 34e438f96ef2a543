package gantry_test

import (
	"fmt"

	"github.com/gantry-engine/gantry"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic world usage with entity creation and queries
func Example_basic() {
	world := gantry.Factory.NewWorld(gantry.DefaultConfig())

	// Define components
	position := gantry.FactoryNewComponent[Position]()
	velocity := gantry.FactoryNewComponent[Velocity]()
	name := gantry.FactoryNewComponent[Name]()

	// Create entities
	for i := 0; i < 5; i++ {
		world.CreateEntity(position)
	}
	for i := 0; i < 3; i++ {
		world.CreateEntity(position, velocity)
	}

	// Create one named entity
	player, _ := world.CreateEntity(position, velocity, name)
	name.Set(world, player, Name{Value: "Player"})
	position.Set(world, player, Position{X: 10, Y: 20})
	velocity.Set(world, player, Velocity{X: 1, Y: 2})

	// Query for all entities with position and velocity
	query := gantry.Factory.NewQuery()
	node := query.And(position, velocity)
	cursor := gantry.Factory.NewCursor(node, world)

	matchCount := 0
	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
		matchCount++
	}

	playerPos, _ := position.GetFromEntity(world, player)
	fmt.Println("matched:", matchCount)
	fmt.Println("player:", playerPos.X, playerPos.Y)

	// Output:
	// matched: 4
	// player: 11 22
}
