package gantry

// componentType is the concrete Component handle produced by
// FactoryNewComponent. It carries only the registered type id; storage layout
// comes from the registry.
type componentType struct {
	id ComponentTypeID
}

func (c componentType) TypeID() ComponentTypeID {
	return c.id
}
