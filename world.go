package gantry

// AddSystem appends a system to the frame schedule. There is no reordering
// API: callers control ordering by registration order alone.
func (w *world) AddSystem(s System) {
	w.scheduler.add(s)
}

// RemoveSystem drops the first system with the given name.
func (w *world) RemoveSystem(name string) bool {
	return w.scheduler.remove(name)
}

// Update runs the update pass: every system in registration order, each to
// completion before the next starts.
func (w *world) Update(dt float64) {
	w.scheduler.runUpdate(w, dt)
}

// Render runs the render pass over systems implementing RenderSystem. Always
// called after Update within a frame, never interleaved with it.
func (w *world) Render() {
	w.scheduler.runRender(w)
}

// ForEach visits every entity in every archetype whose signature is a
// superset of sig. The world is locked for the duration of the pass, so row
// counts are stable; structural changes requested inside fn must go through
// the Queue* methods and apply when the pass returns.
func (w *world) ForEach(sig Signature, fn func(EntityID)) error {
	if w.locked {
		return LockedWorldError{}
	}
	w.Lock()
	defer w.Unlock()

	required := sig.Mask()
	for _, arch := range w.archetypes.asSlice {
		if !arch.Mask().ContainsAll(required) {
			continue
		}
		for row := 0; row < len(arch.entities); row++ {
			fn(arch.entities[row])
		}
	}
	return nil
}
