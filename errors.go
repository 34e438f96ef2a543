package gantry

import "fmt"

// StaleHandleError reports use of an EntityID whose slot has been destroyed
// and possibly recycled, or that never existed. Recoverable: callers decide
// whether to skip or abort.
type StaleHandleError struct {
	Entity EntityID
}

func (e StaleHandleError) Error() string {
	return fmt.Sprintf("stale entity handle %v", e.Entity)
}

// UnknownTypeError reports a ComponentTypeID that was never registered.
type UnknownTypeError struct {
	ID ComponentTypeID
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("component type %d is not registered", e.ID)
}

// InvalidSignatureError reports a duplicate component type in a requested
// signature. Duplicates are a caller error, never silently deduplicated.
type InvalidSignatureError struct {
	Duplicate ComponentTypeID
}

func (e InvalidSignatureError) Error() string {
	return fmt.Sprintf("signature contains component type %d more than once", e.Duplicate)
}

// CycleDetectedError reports an attempt to parent an entity beneath one of
// its own descendants.
type CycleDetectedError struct {
	Child, Parent EntityID
}

func (e CycleDetectedError) Error() string {
	return fmt.Sprintf("setting parent %v on %v would create a cycle", e.Parent, e.Child)
}

// CapacityExceededError reports archetype row growth past the configured
// limit. Fatal for the operation: the engine cannot proceed with a missing row.
type CapacityExceededError struct {
	Archetype uint32
	Limit     int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("archetype %d is at its row capacity (%d)", e.Archetype, e.Limit)
}

// LockedWorldError reports a direct structural mutation while an iteration
// pass holds the world lock. Use the Queue* methods instead.
type LockedWorldError struct{}

func (e LockedWorldError) Error() string {
	return "world is currently locked"
}

type ComponentExistsError struct {
	Component Component
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity: %T", e.Component)
}

type ComponentNotFoundError struct {
	Component Component
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity: %T", e.Component)
}

// CacheCapacityError reports a full SimpleCache.
type CacheCapacityError struct {
	Max int
}

func (e CacheCapacityError) Error() string {
	return fmt.Sprintf("cache at maximum capacity (%d)", e.Max)
}
