package gantry

import (
	"testing"
)

// TestAddComponent tests attaching components and the resulting migrations
func TestAddComponent(t *testing.T) {
	w := newWorld(DefaultConfig())
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()

	e, err := w.CreateEntity(posComp)
	if err != nil {
		t.Fatalf("Failed to create entity: %v", err)
	}
	if err := posComp.Set(w, e, Position{X: 3, Y: 4}); err != nil {
		t.Fatalf("Failed to set position: %v", err)
	}

	before, err := w.Resolve(e)
	if err != nil {
		t.Fatalf("Failed to resolve entity: %v", err)
	}

	if err := velComp.Add(w, e, Velocity{X: 1, Y: 2}); err != nil {
		t.Fatalf("Failed to add velocity: %v", err)
	}

	after, err := w.Resolve(e)
	if err != nil {
		t.Fatalf("Failed to resolve entity after migration: %v", err)
	}
	if after.Archetype == before.Archetype {
		t.Error("Entity did not migrate to a new archetype")
	}

	pos, err := posComp.GetFromEntity(w, e)
	if err != nil {
		t.Fatalf("Position lost after migration: %v", err)
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Position after migration: %+v, want {3 4}", *pos)
	}
	vel, err := velComp.GetFromEntity(w, e)
	if err != nil {
		t.Fatalf("Velocity missing after add: %v", err)
	}
	if vel.X != 1 || vel.Y != 2 {
		t.Errorf("Velocity after add: %+v, want {1 2}", *vel)
	}

	// Adding a component twice is a caller error
	err = w.AddComponent(e, velComp)
	var exists ComponentExistsError
	if !asError(err, &exists) {
		t.Errorf("Second add error: %v, want ComponentExistsError", err)
	}
}

// TestRemoveComponent tests detaching components
func TestRemoveComponent(t *testing.T) {
	w := newWorld(DefaultConfig())
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	e, err := w.CreateEntity(posComp, velComp, healthComp)
	if err != nil {
		t.Fatalf("Failed to create entity: %v", err)
	}
	if err := healthComp.Set(w, e, Health{Current: 7, Max: 10}); err != nil {
		t.Fatalf("Failed to set health: %v", err)
	}

	if err := w.RemoveComponent(e, velComp); err != nil {
		t.Fatalf("Failed to remove velocity: %v", err)
	}
	if _, err := velComp.GetFromEntity(w, e); err == nil {
		t.Error("Velocity still readable after removal")
	}
	hp, err := healthComp.GetFromEntity(w, e)
	if err != nil {
		t.Fatalf("Health lost after removal of velocity: %v", err)
	}
	if hp.Current != 7 || hp.Max != 10 {
		t.Errorf("Health after migration: %+v, want {7 10}", *hp)
	}

	err = w.RemoveComponent(e, velComp)
	var notFound ComponentNotFoundError
	if !asError(err, &notFound) {
		t.Errorf("Second remove error: %v, want ComponentNotFoundError", err)
	}
}

// TestMigrationPreservesData tests that an add/remove round trip leaves every
// other component untouched.
func TestMigrationPreservesData(t *testing.T) {
	w := newWorld(DefaultConfig())
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	e, err := w.CreateEntity(posComp, healthComp)
	if err != nil {
		t.Fatalf("Failed to create entity: %v", err)
	}
	if err := posComp.Set(w, e, Position{X: 1.5, Y: -2.5}); err != nil {
		t.Fatal(err)
	}
	if err := healthComp.Set(w, e, Health{Current: 42, Max: 100}); err != nil {
		t.Fatal(err)
	}

	if err := velComp.Add(w, e, Velocity{X: 9, Y: 9}); err != nil {
		t.Fatalf("Failed to add velocity: %v", err)
	}
	if err := w.RemoveComponent(e, velComp); err != nil {
		t.Fatalf("Failed to remove velocity: %v", err)
	}

	pos, err := posComp.GetFromEntity(w, e)
	if err != nil {
		t.Fatal(err)
	}
	hp, err := healthComp.GetFromEntity(w, e)
	if err != nil {
		t.Fatal(err)
	}
	if *pos != (Position{X: 1.5, Y: -2.5}) {
		t.Errorf("Position after round trip: %+v, want {1.5 -2.5}", *pos)
	}
	if *hp != (Health{Current: 42, Max: 100}) {
		t.Errorf("Health after round trip: %+v, want {42 100}", *hp)
	}
}

// TestSwapRemoveFixup tests table fixups for the entity displaced into an
// erased row.
func TestSwapRemoveFixup(t *testing.T) {
	w := newWorld(DefaultConfig())
	posComp := FactoryNewComponent[Position]()

	entities := make([]EntityID, 5)
	for i := range entities {
		e, err := w.CreateEntity(posComp)
		if err != nil {
			t.Fatal(err)
		}
		entities[i] = e
		if err := posComp.Set(w, e, Position{X: float64(i * 10)}); err != nil {
			t.Fatal(err)
		}
	}

	// Destroying the first row swaps the last entity into row 0
	if err := w.DestroyEntity(entities[0]); err != nil {
		t.Fatal(err)
	}

	loc, err := w.Resolve(entities[4])
	if err != nil {
		t.Fatalf("Displaced entity no longer resolvable: %v", err)
	}
	if loc.Row != 0 {
		t.Errorf("Displaced entity row: %d, want 0", loc.Row)
	}
	pos, err := posComp.GetFromEntity(w, entities[4])
	if err != nil {
		t.Fatal(err)
	}
	if pos.X != 40 {
		t.Errorf("Displaced entity data: %v, want 40", pos.X)
	}

	// Every remaining row must index its own entity's data
	for _, i := range []int{1, 2, 3, 4} {
		pos, err := posComp.GetFromEntity(w, entities[i])
		if err != nil {
			t.Fatalf("Entity %d unresolvable: %v", i, err)
		}
		if pos.X != float64(i*10) {
			t.Errorf("Entity %d data: %v, want %v", i, pos.X, float64(i*10))
		}
	}
}

func TestZeroSizeComponent(t *testing.T) {
	w := newWorld(DefaultConfig())
	posComp := FactoryNewComponent[Position]()
	tagComp := FactoryNewComponent[Tag]()

	e, err := w.CreateEntity(posComp, tagComp)
	if err != nil {
		t.Fatalf("Failed to create tagged entity: %v", err)
	}
	if err := posComp.Set(w, e, Position{X: 1}); err != nil {
		t.Fatal(err)
	}
	if err := w.RemoveComponent(e, tagComp); err != nil {
		t.Fatalf("Failed to remove tag: %v", err)
	}
	pos, err := posComp.GetFromEntity(w, e)
	if err != nil {
		t.Fatal(err)
	}
	if pos.X != 1 {
		t.Errorf("Position after tag removal: %v, want 1", pos.X)
	}
}

func TestDestroyCallbackOrder(t *testing.T) {
	w := newWorld(DefaultConfig())

	parent, _ := w.CreateEntity()
	mid, _ := w.CreateEntity()
	leaf, _ := w.CreateEntity()
	if err := w.SetParent(mid, parent); err != nil {
		t.Fatal(err)
	}
	if err := w.SetParent(leaf, mid); err != nil {
		t.Fatal(err)
	}

	var order []EntityID
	log := func(id EntityID) { order = append(order, id) }
	for _, e := range []EntityID{parent, mid, leaf} {
		if err := w.SetDestroyCallback(e, log); err != nil {
			t.Fatal(err)
		}
	}

	if err := w.DestroySubtree(parent); err != nil {
		t.Fatalf("Failed to destroy subtree: %v", err)
	}

	want := []EntityID{leaf, mid, parent}
	if len(order) != len(want) {
		t.Fatalf("Destroy log length: %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Destroy order[%d]: %v, want %v", i, order[i], want[i])
		}
	}
	for _, e := range want {
		if w.Alive(e) {
			t.Errorf("Entity %v still alive after cascade", e)
		}
	}
}
