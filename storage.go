package gantry

import (
	"github.com/TheBitDrifter/mask"
	"go.uber.org/zap"
)

var _ World = &world{}

type world struct {
	cfg         Config
	log         *zap.Logger
	locked      bool
	archetypes  *archetypes
	slots       []slot
	freeIndices []uint32
	opQueue     opQueue
	hierarchy   hierarchy
	scheduler   scheduler
}

type archetypes struct {
	nextID           archetypeID
	asSlice          []*archetype
	idsGroupedByMask map[mask.Mask]archetypeID
}

func newWorld(cfg Config) *world {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	w := &world{
		cfg: cfg,
		log: log,
		archetypes: &archetypes{
			nextID:           1,
			idsGroupedByMask: make(map[mask.Mask]archetypeID),
		},
		slots:     make([]slot, 0, cfg.InitialEntityCapacity),
		opQueue:   newOpQueue(),
		hierarchy: newHierarchy(),
		scheduler: scheduler{log: log},
	}
	// The empty-signature archetype always exists; component-less entities
	// live there.
	if _, err := w.findOrCreateArchetype(Signature{}); err != nil {
		panic(err)
	}
	return w
}

func (w *world) findOrCreateArchetype(sig Signature) (*archetype, error) {
	if id, found := w.archetypes.idsGroupedByMask[sig.Mask()]; found {
		return w.archetypes.asSlice[id-1], nil
	}
	created, err := newArchetype(w.archetypes.nextID, sig)
	if err != nil {
		return nil, err
	}
	w.archetypes.asSlice = append(w.archetypes.asSlice, created)
	w.archetypes.idsGroupedByMask[sig.Mask()] = w.archetypes.nextID
	w.archetypes.nextID++
	return created, nil
}

func (w *world) archetypeByID(id uint32) *archetype {
	return w.archetypes.asSlice[id-1]
}

func (w *world) resolveSlot(id EntityID) (*slot, error) {
	if int(id.Index) >= len(w.slots) {
		return nil, StaleHandleError{Entity: id}
	}
	s := &w.slots[id.Index]
	if !s.alive || s.generation != id.Generation {
		return nil, StaleHandleError{Entity: id}
	}
	return s, nil
}

func (w *world) CreateEntity(components ...Component) (EntityID, error) {
	if w.locked {
		return EntityID{}, LockedWorldError{}
	}
	sig, err := NewSignature(components...)
	if err != nil {
		return EntityID{}, err
	}
	arch, err := w.findOrCreateArchetype(sig)
	if err != nil {
		return EntityID{}, err
	}

	var index uint32
	if n := len(w.freeIndices); n > 0 {
		index = w.freeIndices[n-1]
		w.freeIndices = w.freeIndices[:n-1]
	} else {
		w.slots = append(w.slots, slot{})
		index = uint32(len(w.slots) - 1)
	}

	id := EntityID{Index: index, Generation: w.slots[index].generation}
	row, err := arch.allocateRow(id, w.cfg.MaxEntitiesPerArchetype)
	if err != nil {
		w.freeIndices = append(w.freeIndices, index)
		return EntityID{}, err
	}
	s := &w.slots[index]
	s.archetype = arch.ID()
	s.row = row
	s.alive = true
	s.onDestroy = nil
	return id, nil
}

func (w *world) DestroyEntity(id EntityID) error {
	if w.locked {
		return LockedWorldError{}
	}
	return w.destroySubtree(id)
}

// DestroySubtree destroys the entity and every descendant, children before
// parents.
func (w *world) DestroySubtree(root EntityID) error {
	if w.locked {
		return LockedWorldError{}
	}
	return w.destroySubtree(root)
}

func (w *world) destroySubtree(id EntityID) error {
	if _, err := w.resolveSlot(id); err != nil {
		return err
	}
	children := w.hierarchy.childrenOf(id)
	for _, child := range children {
		if err := w.destroySubtree(child); err != nil {
			return err
		}
	}
	return w.destroyOne(id)
}

func (w *world) destroyOne(id EntityID) error {
	s, err := w.resolveSlot(id)
	if err != nil {
		return err
	}
	if s.onDestroy != nil {
		s.onDestroy(id)
	}
	w.hierarchy.detach(id)

	arch := w.archetypeByID(s.archetype)
	displaced, swapped := arch.eraseRow(s.row)
	if swapped {
		w.slots[displaced.Index].row = s.row
	}

	s.alive = false
	s.generation++
	s.onDestroy = nil
	w.freeIndices = append(w.freeIndices, id.Index)
	return nil
}

func (w *world) Resolve(id EntityID) (Location, error) {
	s, err := w.resolveSlot(id)
	if err != nil {
		return Location{}, err
	}
	return Location{Archetype: s.archetype, Row: s.row}, nil
}

func (w *world) Alive(id EntityID) bool {
	_, err := w.resolveSlot(id)
	return err == nil
}

func (w *world) EntityCount() int {
	return len(w.slots) - len(w.freeIndices)
}

func (w *world) AddComponent(id EntityID, c Component) error {
	if w.locked {
		return LockedWorldError{}
	}
	s, err := w.resolveSlot(id)
	if err != nil {
		return err
	}
	origin := w.archetypeByID(s.archetype)
	if origin.Contains(c.TypeID()) {
		return ComponentExistsError{Component: c}
	}
	destSig, err := origin.signature.With(c.TypeID())
	if err != nil {
		return err
	}
	return w.migrate(s, origin, destSig)
}

func (w *world) RemoveComponent(id EntityID, c Component) error {
	if w.locked {
		return LockedWorldError{}
	}
	s, err := w.resolveSlot(id)
	if err != nil {
		return err
	}
	origin := w.archetypeByID(s.archetype)
	if !origin.Contains(c.TypeID()) {
		return ComponentNotFoundError{Component: c}
	}
	return w.migrate(s, origin, origin.signature.Without(c.TypeID()))
}

// migrate moves one row into the archetype for destSig and fixes up the
// entity table for both the moved entity and any entity displaced by the
// swap-remove on the origin.
func (w *world) migrate(s *slot, origin *archetype, destSig Signature) error {
	dest, err := w.findOrCreateArchetype(destSig)
	if err != nil {
		return err
	}
	newRow, displaced, swapped, err := origin.moveRow(s.row, dest, w.cfg.MaxEntitiesPerArchetype)
	if err != nil {
		return err
	}
	if swapped {
		w.slots[displaced.Index].row = s.row
	}
	s.archetype = dest.ID()
	s.row = newRow
	return nil
}

func (w *world) SetDestroyCallback(id EntityID, callback EntityDestroyCallback) error {
	s, err := w.resolveSlot(id)
	if err != nil {
		return err
	}
	s.onDestroy = callback
	return nil
}

func (w *world) Locked() bool {
	return w.locked
}

func (w *world) Lock() {
	w.locked = true
}

func (w *world) Unlock() {
	w.locked = false
	if err := w.flushOperationQueue(); err != nil {
		w.log.Error("failed to apply queued operations", zap.Error(err))
	}
}
