package gantry

import "iter"

// hierarchy is the parent/child adjacency index, keyed by slot index. Entries
// are removed when an entity is destroyed, so a live key never refers to a
// recycled slot.
type hierarchy struct {
	parents  map[uint32]EntityID
	children map[uint32][]EntityID
}

func newHierarchy() hierarchy {
	return hierarchy{
		parents:  make(map[uint32]EntityID),
		children: make(map[uint32][]EntityID),
	}
}

func (h *hierarchy) parentOf(id EntityID) (EntityID, bool) {
	parent, ok := h.parents[id.Index]
	return parent, ok
}

func (h *hierarchy) childrenOf(id EntityID) []EntityID {
	existing := h.children[id.Index]
	if len(existing) == 0 {
		return nil
	}
	out := make([]EntityID, len(existing))
	copy(out, existing)
	return out
}

func (h *hierarchy) removeChild(parent, child EntityID) {
	siblings := h.children[parent.Index]
	for i, c := range siblings {
		if c == child {
			h.children[parent.Index] = append(siblings[:i], siblings[i+1:]...)
			return
		}
	}
}

// detach unlinks the entity from its parent and drops its own adjacency
// entries. In a cascade the children are already gone by the time this runs.
func (h *hierarchy) detach(id EntityID) {
	if parent, ok := h.parents[id.Index]; ok {
		h.removeChild(parent, id)
		delete(h.parents, id.Index)
	}
	delete(h.children, id.Index)
}

// SetParent links child beneath parent, detaching it from any previous
// parent first. Fails when parent is a descendant of child.
func (w *world) SetParent(child, parent EntityID) error {
	if _, err := w.resolveSlot(child); err != nil {
		return err
	}
	if _, err := w.resolveSlot(parent); err != nil {
		return err
	}
	// Walk up from parent; reaching child means the link would close a loop.
	for cur, ok := parent, true; ok; cur, ok = w.hierarchy.parentOf(cur) {
		if cur == child {
			return CycleDetectedError{Child: child, Parent: parent}
		}
	}
	if previous, ok := w.hierarchy.parentOf(child); ok {
		w.hierarchy.removeChild(previous, child)
	}
	w.hierarchy.parents[child.Index] = parent
	w.hierarchy.children[parent.Index] = append(w.hierarchy.children[parent.Index], child)
	return nil
}

// ClearParent detaches child from its parent, if it has one.
func (w *world) ClearParent(child EntityID) error {
	if _, err := w.resolveSlot(child); err != nil {
		return err
	}
	if previous, ok := w.hierarchy.parentOf(child); ok {
		w.hierarchy.removeChild(previous, child)
		delete(w.hierarchy.parents, child.Index)
	}
	return nil
}

func (w *world) Parent(id EntityID) (EntityID, bool) {
	if _, err := w.resolveSlot(id); err != nil {
		return EntityID{}, false
	}
	return w.hierarchy.parentOf(id)
}

// Children yields the entity's children in insertion order.
func (w *world) Children(id EntityID) iter.Seq[EntityID] {
	snapshot := w.hierarchy.childrenOf(id)
	return func(yield func(EntityID) bool) {
		for _, child := range snapshot {
			if !yield(child) {
				return
			}
		}
	}
}
