package zeste

import (
	"testing"
	"unsafe"
)

type worldPosition struct{ X, Y float32 }
type worldVelocity struct{ DX, DY float32 }

type worldBundle struct {
	worldPosition
	worldVelocity
}

func TestWorldInitHasEmptyArchetype(t *testing.T) {
	w := Init(NewCountingAllocator(nil))
	defer w.Deinit()
	a, ok := w.archetypes[0]
	if !ok {
		t.Fatal("fresh world has no archetype at hash 0")
	}
	if a.Len() != 0 {
		t.Fatalf("empty archetype Len() = %d, want 0", a.Len())
	}
}

func TestCreateEntityIDMonotonicity(t *testing.T) {
	w := Init(NewCountingAllocator(nil))
	defer w.Deinit()

	e1, err := CreateEntity[worldBundle](w)
	if err != nil {
		t.Fatalf("CreateEntity #1 failed: %v", err)
	}
	e2, err := CreateEntity[worldBundle](w)
	if err != nil {
		t.Fatalf("CreateEntity #2 failed: %v", err)
	}
	if e1.ID != 0 {
		t.Fatalf("first entity ID = %d, want 0", e1.ID)
	}
	if e2.ID != 1 {
		t.Fatalf("second entity ID = %d, want 1", e2.ID)
	}
}

func TestCreateEntityArchetypeReuse(t *testing.T) {
	// create_entity with bundle {worldPosition, worldVelocity} twice on a
	// fresh world: ids 0 and 1, both in the same archetype, whose len == 2.
	w := Init(NewCountingAllocator(nil))
	defer w.Deinit()

	e1, err := CreateEntity[worldBundle](w)
	if err != nil {
		t.Fatalf("CreateEntity #1 failed: %v", err)
	}
	e2, err := CreateEntity[worldBundle](w)
	if err != nil {
		t.Fatalf("CreateEntity #2 failed: %v", err)
	}
	if e1.Archetype() != e2.Archetype() {
		t.Fatal("entities from identical bundles landed in different archetypes")
	}
	if e1.Archetype().Len() != 2 {
		t.Fatalf("archetype Len() = %d, want 2", e1.Archetype().Len())
	}
}

func TestCreateEntityDistinctBundlesDistinctArchetypes(t *testing.T) {
	w := Init(NewCountingAllocator(nil))
	defer w.Deinit()

	type onlyPos struct{ worldPosition }

	eFull, err := CreateEntity[worldBundle](w)
	if err != nil {
		t.Fatalf("CreateEntity[worldBundle] failed: %v", err)
	}
	ePos, err := CreateEntity[onlyPos](w)
	if err != nil {
		t.Fatalf("CreateEntity[onlyPos] failed: %v", err)
	}
	if eFull.Archetype() == ePos.Archetype() {
		t.Fatal("distinct bundles landed in the same archetype")
	}
}

func TestWorldSetHookBeforeArchetypeCreation(t *testing.T) {
	type hooked struct{ V int32 }
	w := Init(NewCountingAllocator(nil))
	defer w.Deinit()

	w.SetHook(HashType[hooked](), &Hook{
		Dtor: func(unsafe.Pointer) {},
		Copy: defaultCopy,
	})
	h := w.GetHook(HashType[hooked]())
	if h.Dtor == nil {
		t.Fatal("GetHook returned a hook with nil Dtor")
	}
}
