package gantry

import (
	"sort"

	"github.com/TheBitDrifter/mask"
)

// Signature is the canonical identity of an archetype: its component type
// ids sorted ascending, plus a bitmask for O(1) subset tests. The mask is
// the archetype store's map key, so equal component sets always resolve to
// the same archetype regardless of the order components were given in.
type Signature struct {
	ids  []ComponentTypeID
	bits mask.Mask
}

// NewSignature canonicalizes the given components into a Signature. A
// component type appearing more than once is a caller error.
func NewSignature(components ...Component) (Signature, error) {
	ids := make([]ComponentTypeID, len(components))
	for i, c := range components {
		ids[i] = c.TypeID()
	}
	return NewSignatureFromIDs(ids...)
}

// NewSignatureFromIDs canonicalizes raw type ids into a Signature.
func NewSignatureFromIDs(ids ...ComponentTypeID) (Signature, error) {
	sorted := make([]ComponentTypeID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var bits mask.Mask
	for i, id := range sorted {
		if i > 0 && sorted[i-1] == id {
			return Signature{}, InvalidSignatureError{Duplicate: id}
		}
		bits.Mark(uint32(id))
	}
	return Signature{ids: sorted, bits: bits}, nil
}

// IDs returns the sorted type ids. The slice is shared; callers must not
// mutate it.
func (s Signature) IDs() []ComponentTypeID {
	return s.ids
}

func (s Signature) Mask() mask.Mask {
	return s.bits
}

func (s Signature) Len() int {
	return len(s.ids)
}

// Has reports whether the signature includes the given type id.
func (s Signature) Has(id ComponentTypeID) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Contains reports whether s is a superset of sub.
func (s Signature) Contains(sub Signature) bool {
	return s.bits.ContainsAll(sub.bits)
}

// With returns a new signature extended by id.
func (s Signature) With(id ComponentTypeID) (Signature, error) {
	ids := make([]ComponentTypeID, len(s.ids), len(s.ids)+1)
	copy(ids, s.ids)
	return NewSignatureFromIDs(append(ids, id)...)
}

// Without returns a new signature with id removed. Removing an absent id is
// a no-op.
func (s Signature) Without(id ComponentTypeID) Signature {
	ids := make([]ComponentTypeID, 0, len(s.ids))
	var bits mask.Mask
	for _, existing := range s.ids {
		if existing == id {
			continue
		}
		ids = append(ids, existing)
		bits.Mark(uint32(existing))
	}
	return Signature{ids: ids, bits: bits}
}
