package zeste

import "reflect"

// TypeInfo describes everything a column needs to operate on a component
// type it cannot name at compile time: its identity hash, its memory
// layout, and the hook used to destroy/copy its values. TypeInfo values
// are copied freely; the Hook pointer they carry must outlive any column
// built from this TypeInfo (hooks live for the owning World's lifetime).
type TypeInfo struct {
	Hash   TypeHash
	Layout Layout
	Hook   *Hook
}

// TypeInfoOf resolves the TypeInfo for T. If world is non-nil and has a
// hook registered for T, that hook is used; otherwise DefaultHook is used.
// Resolution happens once, at the call site — see Hook's early-binding
// note.
func TypeInfoOf[T any](world *World) TypeInfo {
	hash := HashType[T]()
	return TypeInfo{
		Hash:   hash,
		Layout: LayoutOf[T](),
		Hook:   resolveHook(world, hash),
	}
}

// typeInfoOfReflect is the runtime counterpart of TypeInfoOf, used by
// World.CreateEntity when it only has a reflect.Type (walking a bundle's
// fields) rather than a type parameter.
func typeInfoOfReflect(t reflect.Type, world *World) TypeInfo {
	hash := HashTypeOf(t)
	return TypeInfo{
		Hash: hash,
		Layout: Layout{
			Size:  t.Size(),
			Align: uintptr(t.Align()),
		},
		Hook: resolveHook(world, hash),
	}
}

func resolveHook(world *World, hash TypeHash) *Hook {
	if world == nil {
		return DefaultHook
	}
	return world.GetHook(hash)
}
