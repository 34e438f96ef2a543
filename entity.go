package gantry

import "fmt"

// EntityID is a stable handle for an entity: a slot index plus the generation
// the slot had when the entity was created. A destroyed entity's index is
// recycled only after the generation is bumped, so stale handles never
// resolve to the new occupant.
type EntityID struct {
	Index      uint32
	Generation uint32
}

// Packed returns the handle as a single 64-bit value, generation in the high
// word.
func (id EntityID) Packed() uint64 {
	return uint64(id.Generation)<<32 | uint64(id.Index)
}

// UnpackEntityID is the inverse of Packed.
func UnpackEntityID(v uint64) EntityID {
	return EntityID{
		Index:      uint32(v),
		Generation: uint32(v >> 32),
	}
}

func (id EntityID) String() string {
	return fmt.Sprintf("e%d:g%d", id.Index, id.Generation)
}

// Location is an entity's current storage address. It is only valid until
// the next structural mutation.
type Location struct {
	Archetype uint32
	Row       int
}

// slot is one entity-table entry. The table is the only source of truth for
// an entity's location; the archetype store fixes slots up whenever a
// swap-remove displaces a row.
type slot struct {
	archetype  uint32
	row        int
	generation uint32
	alive      bool
	onDestroy  EntityDestroyCallback
}
