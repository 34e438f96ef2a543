package gantry

import (
	"testing"

	iter_util "github.com/TheBitDrifter/util/iter"
)

func TestSetParent(t *testing.T) {
	w := newWorld(DefaultConfig())

	parent, _ := w.CreateEntity()
	child, _ := w.CreateEntity()

	if err := w.SetParent(child, parent); err != nil {
		t.Fatalf("Failed to set parent: %v", err)
	}
	got, ok := w.Parent(child)
	if !ok || got != parent {
		t.Errorf("Parent of child: %v (%v), want %v", got, ok, parent)
	}
	children := iter_util.Collect(w.Children(parent))
	if len(children) != 1 || children[0] != child {
		t.Errorf("Children of parent: %v, want [%v]", children, child)
	}
}

func TestReparenting(t *testing.T) {
	w := newWorld(DefaultConfig())

	first, _ := w.CreateEntity()
	second, _ := w.CreateEntity()
	child, _ := w.CreateEntity()

	if err := w.SetParent(child, first); err != nil {
		t.Fatal(err)
	}
	if err := w.SetParent(child, second); err != nil {
		t.Fatal(err)
	}

	// The child must appear in exactly one children list
	if got := iter_util.Collect(w.Children(first)); len(got) != 0 {
		t.Errorf("Old parent still lists child: %v", got)
	}
	if got := iter_util.Collect(w.Children(second)); len(got) != 1 || got[0] != child {
		t.Errorf("New parent children: %v, want [%v]", got, child)
	}
	got, ok := w.Parent(child)
	if !ok || got != second {
		t.Errorf("Parent after reparenting: %v, want %v", got, second)
	}
}

func TestCycleDetection(t *testing.T) {
	w := newWorld(DefaultConfig())

	a, _ := w.CreateEntity()
	b, _ := w.CreateEntity()
	c, _ := w.CreateEntity()

	if err := w.SetParent(b, a); err != nil {
		t.Fatal(err)
	}
	if err := w.SetParent(c, b); err != nil {
		t.Fatal(err)
	}

	var cycle CycleDetectedError
	if err := w.SetParent(a, c); !asError(err, &cycle) {
		t.Fatalf("Grandchild cycle error: %v, want CycleDetectedError", err)
	}
	if err := w.SetParent(a, a); !asError(err, &cycle) {
		t.Fatalf("Self-parent error: %v, want CycleDetectedError", err)
	}
}

func TestClearParent(t *testing.T) {
	w := newWorld(DefaultConfig())

	parent, _ := w.CreateEntity()
	child, _ := w.CreateEntity()
	if err := w.SetParent(child, parent); err != nil {
		t.Fatal(err)
	}
	if err := w.ClearParent(child); err != nil {
		t.Fatal(err)
	}
	if _, ok := w.Parent(child); ok {
		t.Error("Child still has parent after ClearParent")
	}
	if got := iter_util.Collect(w.Children(parent)); len(got) != 0 {
		t.Errorf("Parent still lists child: %v", got)
	}

	// Detached child must survive the old parent's destruction
	if err := w.DestroyEntity(parent); err != nil {
		t.Fatal(err)
	}
	if !w.Alive(child) {
		t.Error("Detached child destroyed with former parent")
	}
}

func TestDestroySubtreeCascades(t *testing.T) {
	w := newWorld(DefaultConfig())
	posComp := FactoryNewComponent[Position]()

	root, _ := w.CreateEntity(posComp)
	var all []EntityID
	all = append(all, root)

	// Two children, each with two grandchildren
	for i := 0; i < 2; i++ {
		child, _ := w.CreateEntity(posComp)
		if err := w.SetParent(child, root); err != nil {
			t.Fatal(err)
		}
		all = append(all, child)
		for j := 0; j < 2; j++ {
			grandchild, _ := w.CreateEntity(posComp)
			if err := w.SetParent(grandchild, child); err != nil {
				t.Fatal(err)
			}
			all = append(all, grandchild)
		}
	}

	bystander, _ := w.CreateEntity(posComp)

	if err := w.DestroySubtree(root); err != nil {
		t.Fatalf("Failed to destroy subtree: %v", err)
	}

	for _, e := range all {
		if w.Alive(e) {
			t.Errorf("Entity %v survived subtree destruction", e)
		}
	}
	if !w.Alive(bystander) {
		t.Error("Bystander destroyed by unrelated cascade")
	}
	if got := w.EntityCount(); got != 1 {
		t.Errorf("Entity count after cascade: %d, want 1", got)
	}
}
