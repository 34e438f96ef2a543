package gantry

import (
	"errors"
	"fmt"
)

type operationType int

const (
	opCreate operationType = iota
	opDestroy
	opAddComponent
	opRemoveComponent

	// opNone marks a queued operation cancelled by a later queued destroy.
	opNone operationType = -1
)

type operation struct {
	typ    operationType
	comps  []Component
	entity EntityID
}

type opKey struct {
	entity EntityID
}

// opQueue buffers structural mutations requested while the world is locked.
// Contents are applied on unlock: creates first, then component changes,
// then destroys. A queued destroy cancels any earlier component operations
// for the same entity.
type opQueue struct {
	createOps      []operation
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[opKey]struct{}
	pendingMods    map[opKey][]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[opKey]struct{}),
		pendingMods:    make(map[opKey][]int),
	}
}

func (w *world) QueueCreate(components ...Component) error {
	if !w.locked {
		if _, err := w.CreateEntity(components...); err != nil {
			return fmt.Errorf("failed to create entity directly: %w", err)
		}
		return nil
	}
	w.opQueue.createOps = append(w.opQueue.createOps, operation{
		typ:   opCreate,
		comps: components,
	})
	return nil
}

func (w *world) QueueDestroy(id EntityID) error {
	if !w.locked {
		return w.DestroyEntity(id)
	}
	key := opKey{entity: id}
	if _, exists := w.opQueue.pendingDestroy[key]; exists {
		return nil
	}
	w.opQueue.pendingDestroy[key] = struct{}{}

	// Cancel component operations already queued for this entity.
	for _, idx := range w.opQueue.pendingMods[key] {
		w.opQueue.componentOps[idx].typ = opNone
	}
	delete(w.opQueue.pendingMods, key)

	w.opQueue.destroyOps = append(w.opQueue.destroyOps, operation{
		typ:    opDestroy,
		entity: id,
	})
	return nil
}

func (w *world) QueueAddComponent(id EntityID, c Component) error {
	if !w.locked {
		return w.AddComponent(id, c)
	}
	w.queueComponentOp(opAddComponent, id, c)
	return nil
}

func (w *world) QueueRemoveComponent(id EntityID, c Component) error {
	if !w.locked {
		return w.RemoveComponent(id, c)
	}
	w.queueComponentOp(opRemoveComponent, id, c)
	return nil
}

func (w *world) queueComponentOp(typ operationType, id EntityID, c Component) {
	key := opKey{entity: id}

	// Component operations on an entity pending destruction are ignored.
	if _, isDestroyed := w.opQueue.pendingDestroy[key]; isDestroyed {
		return
	}
	w.opQueue.pendingMods[key] = append(w.opQueue.pendingMods[key], len(w.opQueue.componentOps))
	w.opQueue.componentOps = append(w.opQueue.componentOps, operation{
		typ:    typ,
		entity: id,
		comps:  []Component{c},
	})
}

// flushOperationQueue applies every queued operation exactly once. A failing
// operation does not stop the flush: the remaining operations still apply,
// the errors are collected, and the queue is always cleared so nothing
// re-applies on a later unlock.
func (w *world) flushOperationQueue() error {
	q := &w.opQueue
	if len(q.createOps) == 0 &&
		len(q.componentOps) == 0 &&
		len(q.destroyOps) == 0 {
		return nil
	}
	defer func() {
		q.createOps = q.createOps[:0]
		q.componentOps = q.componentOps[:0]
		q.destroyOps = q.destroyOps[:0]
		clear(q.pendingDestroy)
		clear(q.pendingMods)
	}()

	var errs []error

	// Process creates first
	for _, op := range q.createOps {
		if _, err := w.CreateEntity(op.comps...); err != nil {
			errs = append(errs, fmt.Errorf("failed to process queued entity creation: %w", err))
		}
	}

	// Process component modifications
	for _, op := range q.componentOps {
		if op.typ == opNone {
			continue
		}
		// Skip handles that went stale while queued
		if !w.Alive(op.entity) {
			continue
		}
		switch op.typ {
		case opAddComponent:
			if err := w.AddComponent(op.entity, op.comps[0]); err != nil {
				errs = append(errs, fmt.Errorf("failed to add queued component: %w", err))
			}
		case opRemoveComponent:
			if err := w.RemoveComponent(op.entity, op.comps[0]); err != nil {
				errs = append(errs, fmt.Errorf("failed to remove queued component: %w", err))
			}
		}
	}

	// Process destroys last
	for _, op := range q.destroyOps {
		if !w.Alive(op.entity) {
			continue
		}
		if err := w.destroySubtree(op.entity); err != nil {
			errs = append(errs, fmt.Errorf("failed to destroy queued entity: %w", err))
		}
	}

	return errors.Join(errs...)
}
