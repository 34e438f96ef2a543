package gantry

import (
	"reflect"
	"unsafe"

	"github.com/TheBitDrifter/mask"
)

type archetypeID uint32

var (
	_ Archetype     = &archetype{}
	_ mask.Maskable = &archetype{}
)

// archetype owns one contiguous column per component type in its signature,
// plus a parallel array of the EntityIDs occupying each row. For every row r
// and type T, columns[T][r] holds the T data for entities[r].
type archetype struct {
	id        archetypeID
	signature Signature
	columns   []column
	colIndex  [MaxComponentTypes]int16 // column position per type id, -1 when absent
	entities  []EntityID
}

// column is the type-erased backing storage for one component type. Rows are
// addressed by index only; pointers into a column are invalidated by any
// structural mutation, since growth reallocates and swap-remove reorders.
type column struct {
	id   ComponentTypeID
	size uintptr
	data reflect.Value // slice of the component type, len == row count
}

func newArchetype(id archetypeID, sig Signature) (*archetype, error) {
	a := &archetype{
		id:        id,
		signature: sig,
		columns:   make([]column, sig.Len()),
	}
	for i := range a.colIndex {
		a.colIndex[i] = -1
	}
	for i, typeID := range sig.IDs() {
		layout, err := LayoutOf(typeID)
		if err != nil {
			return nil, err
		}
		a.columns[i] = column{
			id:   typeID,
			size: layout.Size,
			data: reflect.MakeSlice(reflect.SliceOf(layout.Type), 0, 0),
		}
		a.colIndex[typeID] = int16(i)
	}
	return a, nil
}

func (a *archetype) ID() uint32 {
	return uint32(a.id)
}

func (a *archetype) Signature() Signature {
	return a.signature
}

func (a *archetype) Len() int {
	return len(a.entities)
}

func (a *archetype) Mask() mask.Mask {
	return a.signature.Mask()
}

func (a *archetype) Contains(id ComponentTypeID) bool {
	return a.colIndex[id] >= 0
}

// ptr addresses one component slot. Valid only until the next structural
// mutation of this archetype.
func (a *archetype) ptr(id ComponentTypeID, row int) unsafe.Pointer {
	ci := a.colIndex[id]
	if ci < 0 {
		return nil
	}
	return a.columns[ci].ptr(row)
}

// allocateRow appends the entity and default-constructs a slot in every
// column.
func (a *archetype) allocateRow(e EntityID, limit int) (int, error) {
	if limit > 0 && len(a.entities) >= limit {
		return 0, CapacityExceededError{Archetype: a.ID(), Limit: limit}
	}
	row := len(a.entities)
	if len(a.entities) == cap(a.entities) {
		grown := make([]EntityID, row, grownCapacity(row+1, cap(a.entities)))
		copy(grown, a.entities)
		a.entities = grown
	}
	a.entities = append(a.entities, e)
	for i := range a.columns {
		a.columns[i].appendZero()
	}
	return row, nil
}

// eraseRow destructs the row's values, swaps the last row into its place and
// truncates by one. When a swap happened, the returned entity previously
// occupied the last row and its table entry must be repointed at row in the
// same operation.
func (a *archetype) eraseRow(row int) (displaced EntityID, swapped bool) {
	last := len(a.entities) - 1
	displaced = a.entities[last]
	swapped = row != last
	if swapped {
		a.entities[row] = displaced
	}
	a.entities = a.entities[:last]
	for i := range a.columns {
		a.columns[i].swapRemove(row)
	}
	return displaced, swapped
}

// moveRow transfers a row into the destination archetype: types common to
// both signatures are copied, types only in the destination start
// default-constructed, types only in the origin are dropped. The origin row
// is then erased per eraseRow.
func (a *archetype) moveRow(fromRow int, to *archetype, limit int) (newRow int, displaced EntityID, swapped bool, err error) {
	e := a.entities[fromRow]
	newRow, err = to.allocateRow(e, limit)
	if err != nil {
		return 0, EntityID{}, false, err
	}
	for i := range to.columns {
		dst := &to.columns[i]
		if ci := a.colIndex[dst.id]; ci >= 0 {
			dst.data.Index(newRow).Set(a.columns[ci].data.Index(fromRow))
		}
	}
	displaced, swapped = a.eraseRow(fromRow)
	return newRow, displaced, swapped, nil
}

func (c *column) ptr(row int) unsafe.Pointer {
	return unsafe.Add(c.data.UnsafePointer(), uintptr(row)*c.size)
}

func (c *column) appendZero() {
	l := c.data.Len()
	if l == c.data.Cap() {
		grown := reflect.MakeSlice(c.data.Type(), l, grownCapacity(l+1, c.data.Cap()))
		reflect.Copy(grown, c.data)
		c.data = grown
	}
	c.data = c.data.Slice3(0, l+1, c.data.Cap())
	c.data.Index(l).SetZero()
}

func (c *column) swapRemove(row int) {
	last := c.data.Len() - 1
	if row != last {
		c.data.Index(row).Set(c.data.Index(last))
	}
	c.data.Index(last).SetZero()
	c.data = c.data.Slice3(0, last, c.data.Cap())
}

// grownCapacity is the shared growth policy for row storage.
func grownCapacity(needed, current int) int {
	return max(needed, current+current/2)
}
