/*
Package zeste is the storage core of an archetype-based Entity-Component-
System (ECS). Entities are opaque identifiers associated with a
heterogeneous set of component values; components belonging to the same
combination of types ("archetype") are stored together in tightly packed,
parallel columnar arrays so that iteration over entities sharing a
component set is cache-friendly and type-erased at the container level
yet type-safe at the access boundary.

Core Concepts:

  - TypeInfo: a component type's stable hash, memory layout, and hook pair.
  - TypedColumn: a growable buffer of a known Go type T with externally
    tracked length.
  - ErasedColumn: the same buffer described only by a TypeInfo, for
    heterogeneous storage inside an archetype.
  - Archetype: an ordered set of component types plus one erased column
    per non-zero-sized component and an entity roster.
  - World: owner of every archetype, keyed by archetype hash, and the
    per-type hook table.

Basic Usage:

	world := zeste.Init(zeste.DefaultAllocator{})
	defer world.Deinit()

	type Body struct {
		Position
		Velocity
	}

	e1, _ := zeste.CreateEntity[Body](world)
	e2, _ := zeste.CreateEntity[Body](world)
	// e1 and e2 land in the same archetype, whose Len() is now 2.

	col := e1.Archetype().Column(zeste.HashType[Position]())
	typed := zeste.AsTyped[Position](col)
	typed.At(0).X = 1

This package covers the storage layer only: query/iteration, system
scheduling, cross-archetype moves, and serialization are the concern of
layers built on top of it.
*/
package zeste
