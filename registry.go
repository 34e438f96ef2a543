package gantry

import (
	"fmt"
	"reflect"
)

// ComponentTypeID is a dense integer assigned once per distinct component
// kind at first registration, process-wide and monotonic.
type ComponentTypeID uint32

// MaxComponentTypes is the number of distinct component kinds a process may
// register. It matches the width of a signature mask.
const MaxComponentTypes = 64

// Layout is the storage metadata the archetype store needs to manage a
// component kind inside a type-erased column.
type Layout struct {
	Size uintptr
	Type reflect.Type
}

type componentRegistry struct {
	typeToID map[reflect.Type]ComponentTypeID
	layouts  []Layout
}

// The registry is deliberately unsynchronized: component registration is a
// startup-phase activity and must never run concurrently with gameplay code.
var registry = newComponentRegistry()

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{
		typeToID: make(map[reflect.Type]ComponentTypeID, MaxComponentTypes),
		layouts:  make([]Layout, 0, MaxComponentTypes),
	}
}

func (r *componentRegistry) register(t reflect.Type) ComponentTypeID {
	if id, ok := r.typeToID[t]; ok {
		return id
	}
	if len(r.layouts) >= MaxComponentTypes {
		panic(fmt.Sprintf("cannot register component %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}
	id := ComponentTypeID(len(r.layouts))
	r.typeToID[t] = id
	r.layouts = append(r.layouts, Layout{Size: t.Size(), Type: t})
	return id
}

func (r *componentRegistry) layoutOf(id ComponentTypeID) (Layout, error) {
	if int(id) >= len(r.layouts) {
		return Layout{}, UnknownTypeError{ID: id}
	}
	return r.layouts[id], nil
}

// Register assigns a ComponentTypeID for T, returning the existing id if T
// was registered before.
func Register[T any]() ComponentTypeID {
	var zero T
	return registry.register(reflect.TypeOf(zero))
}

// LayoutOf reports the storage layout for a registered component type.
func LayoutOf(id ComponentTypeID) (Layout, error) {
	return registry.layoutOf(id)
}

// ResetRegistry discards every registration. Worlds created before a reset
// must not be used afterwards; this exists for tests and full engine
// re-initialization.
func ResetRegistry() {
	registry = newComponentRegistry()
}
