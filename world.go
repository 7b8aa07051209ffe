package zeste

import "reflect"

// World owns every archetype, keyed by archetype hash, the per-type hook
// table, and the monotonically increasing entity ID counter. A World
// always contains at least the empty-bundle archetype at hash 0.
type World struct {
	allocator    Allocator
	nextEntityID uint64
	archetypes   map[uint64]*Archetype
	hooks        map[TypeHash]*Hook
}

// Init constructs a World using alloc for every allocation made by its
// archetypes and columns, with next_entity_id at 0 and a single archetype
// at key 0 built from the empty component list.
func Init(alloc Allocator) *World {
	if alloc == nil {
		alloc = Config.Allocator()
	}
	w := &World{
		allocator:  alloc,
		archetypes: make(map[uint64]*Archetype),
		hooks:      make(map[TypeHash]*Hook),
	}
	empty := InitArchetype(nil)
	w.archetypes[empty.hash] = empty
	return w
}

// Deinit releases every archetype's columns and bookkeeping via
// Archetype.Deinit. The World itself becomes unusable afterward.
func (w *World) Deinit() {
	for hash, a := range w.archetypes {
		a.Deinit(w.allocator)
		delete(w.archetypes, hash)
	}
	w.hooks = nil
}

// GetHook returns the hook registered for hash, or DefaultHook if none
// has been installed.
func (w *World) GetHook(hash TypeHash) *Hook {
	if h, ok := w.hooks[hash]; ok {
		return h
	}
	return DefaultHook
}

// SetHook installs or overwrites the hook used for hash. Must be called
// before any column of that type is created (via CreateEntity or a
// direct TypeInfo resolution) or existing columns keep the old hook,
// per Hook's early-binding resolution timing.
func (w *World) SetHook(hash TypeHash, hook *Hook) error {
	w.hooks[hash] = hook
	return nil
}

// resolveArchetype finds or creates the archetype for hash, building it
// from bundleType's fields (in declaration order) when absent.
func (w *World) resolveArchetype(hash uint64, bundleType reflect.Type) *Archetype {
	if a, ok := w.archetypes[hash]; ok {
		return a
	}

	var infos []TypeInfo
	if bundleType != nil {
		infos = make([]TypeInfo, bundleType.NumField())
		for i := range infos {
			infos[i] = typeInfoOfReflect(bundleType.Field(i).Type, w)
		}
	}

	a := InitArchetype(infos)
	w.archetypes[a.hash] = a
	return a
}

// CreateEntity resolves (or creates) the archetype for bundle type B's
// component fields, appends a fresh entity to it, and returns the new
// Entity. IDs are unique per world and strictly increasing, starting at
// 0. B must be a struct whose fields, in declaration order, name the
// bundle's component types.
func CreateEntity[B any](w *World) (Entity, error) {
	hash := uint64(HashBundle[B]())
	var zero B
	bundleType := reflect.TypeOf(zero)

	archetype := w.resolveArchetype(hash, bundleType)

	id := w.nextEntityID
	if err := archetype.AppendEntity(w.allocator, id); err != nil {
		return Entity{}, err
	}
	w.nextEntityID++

	return Entity{ID: id, archetype: archetype, world: w}, nil
}
