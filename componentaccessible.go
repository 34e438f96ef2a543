package gantry

// GetFromCursor retrieves the component value for the entity at the cursor
// position. The pointer is valid only until the next structural mutation.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	return (*T)(cursor.currentArchetype.ptr(c.TypeID(), cursor.entityIndex-1))
}

// GetFromCursorSafe safely retrieves a component value, checking that the
// component exists in the current archetype first.
func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	if cursor.currentArchetype.Contains(c.TypeID()) {
		return true, c.GetFromCursor(cursor)
	}
	return false, nil
}

// CheckCursor determines if the component exists in the archetype at the
// cursor position.
func (c AccessibleComponent[T]) CheckCursor(cursor *Cursor) bool {
	return cursor.currentArchetype.Contains(c.TypeID())
}

// GetFromEntity retrieves the component value for the given entity.
func (c AccessibleComponent[T]) GetFromEntity(w World, id EntityID) (*T, error) {
	wd := w.(*world)
	s, err := wd.resolveSlot(id)
	if err != nil {
		return nil, err
	}
	p := wd.archetypeByID(s.archetype).ptr(c.TypeID(), s.row)
	if p == nil {
		return nil, ComponentNotFoundError{Component: c.Component}
	}
	return (*T)(p), nil
}

// Add attaches the component to the entity and sets its initial value in one
// call.
func (c AccessibleComponent[T]) Add(w World, id EntityID, value T) error {
	if err := w.AddComponent(id, c); err != nil {
		return err
	}
	return c.Set(w, id, value)
}

// Set overwrites the entity's component value in place. Not a structural
// change: no archetype migration happens.
func (c AccessibleComponent[T]) Set(w World, id EntityID, value T) error {
	p, err := c.GetFromEntity(w, id)
	if err != nil {
		return err
	}
	*p = value
	return nil
}
