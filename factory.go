package zeste

// factory implements the factory pattern for zeste's top-level
// constructors, mirroring the package's other global-instance
// conventions (see Config).
type factory struct{}

// Factory is the global factory instance for creating worlds and hooks.
var Factory factory

// NewWorld creates a new World using alloc for all of its allocations.
// Passing nil defers to Config's default allocator.
func (f factory) NewWorld(alloc Allocator) *World {
	return Init(alloc)
}

// NewHook builds a Hook from the given destructor and copy callbacks.
// Passing nil for either uses the package's no-op/byte-wise default.
func (f factory) NewHook(dtor DtorFunc, cp CopyFunc) *Hook {
	if dtor == nil {
		dtor = defaultDtor
	}
	if cp == nil {
		cp = defaultCopy
	}
	return &Hook{Dtor: dtor, Copy: cp}
}
