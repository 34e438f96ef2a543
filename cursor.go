package gantry

import (
	"iter"
)

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, w World) *Cursor {
	return &Cursor{
		query: query,
		world: w.(*world),
	}
}

// Next advances to the next matched row, locking the world on the first
// call. Exhausting the cursor resets it and unlocks the world, which flushes
// any operations queued during iteration.
func (c *Cursor) Next() bool {
	if c.entityIndex < c.remaining {
		c.entityIndex++
		return true
	}
	return c.advance()
}

func (c *Cursor) advance() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.archetypeIndex < len(c.matchedArchetypes) {
		c.currentArchetype = c.matchedArchetypes[c.archetypeIndex]
		c.remaining = c.currentArchetype.Len()

		if c.entityIndex < c.remaining {
			c.entityIndex++
			return true
		}
		c.archetypeIndex++
		c.entityIndex = 0
	}
	c.Reset()
	return false
}

// Entities yields every matched entity. The world stays locked for the whole
// sequence; breaking out early resets the cursor and unlocks.
func (c *Cursor) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		c.initialize()

		for c.archetypeIndex < len(c.matchedArchetypes) {
			c.currentArchetype = c.matchedArchetypes[c.archetypeIndex]
			c.remaining = c.currentArchetype.Len()

			for c.entityIndex < c.remaining {
				if !yield(c.currentArchetype.entities[c.entityIndex]) {
					c.Reset()
					return
				}
				c.entityIndex++
			}
			c.entityIndex = 0
			c.archetypeIndex++
		}
		c.Reset()
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.world.Lock()
	c.matchedArchetypes = make([]*archetype, 0)

	// Find all matching archetypes
	for _, arch := range c.world.archetypes.asSlice {
		if c.query.Evaluate(arch) {
			c.matchedArchetypes = append(c.matchedArchetypes, arch)
		}
	}
	if len(c.matchedArchetypes) > 0 {
		c.archetypeIndex = 0
		c.currentArchetype = c.matchedArchetypes[0]
		c.remaining = c.currentArchetype.Len()
	}
	c.initialized = true
}

func (c *Cursor) Reset() {
	c.archetypeIndex = 0
	c.entityIndex = 0
	c.remaining = 0
	c.matchedArchetypes = nil
	c.initialized = false
	c.world.Unlock()
}

// CurrentEntity reports the entity at the cursor position.
func (c *Cursor) CurrentEntity() EntityID {
	return c.currentArchetype.entities[c.entityIndex-1]
}

func (c *Cursor) RemainingInArchetype() int {
	return c.remaining - c.entityIndex
}

// TotalMatched counts the entities the query matches right now. On an
// uninitialized cursor it evaluates the archetypes directly without taking
// the world lock, so a count-only caller never has to iterate or Reset.
func (c *Cursor) TotalMatched() int {
	total := 0
	if c.initialized {
		for _, arch := range c.matchedArchetypes {
			total += arch.Len()
		}
		return total
	}
	for _, arch := range c.world.archetypes.asSlice {
		if c.query.Evaluate(arch) {
			total += arch.Len()
		}
	}
	return total
}
