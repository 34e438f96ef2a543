package gantry

type factory struct{}

var Factory factory

func (f factory) NewWorld(cfg Config) World {
	return newWorld(cfg)
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query QueryNode, w World) *Cursor {
	return newCursor(query, w)
}

// FactoryNewComponent registers T (idempotently) and returns a typed handle
// usable both as a query term and as a column accessor.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	id := Register[T]()
	return AccessibleComponent[T]{
		Component: componentType{id: id},
	}
}

// FactoryNewCache builds a bounded string-keyed cache, used by the resource
// layer for handle lookup tables.
func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
