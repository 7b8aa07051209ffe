package zeste

import "testing"

type entityPosition struct{ X, Y float32 }

type entityBundle struct {
	entityPosition
}

func TestEntityAccessors(t *testing.T) {
	w := Init(NewCountingAllocator(nil))
	defer w.Deinit()

	e, err := CreateEntity[entityBundle](w)
	if err != nil {
		t.Fatalf("CreateEntity failed: %v", err)
	}
	if e.World() != w {
		t.Fatal("Entity.World() does not point back to its world")
	}
	if e.Archetype() == nil {
		t.Fatal("Entity.Archetype() is nil")
	}
	if e.Archetype().Column(HashType[entityPosition]()) == nil {
		t.Fatal("entity's archetype has no column for its own bundle component")
	}
}
