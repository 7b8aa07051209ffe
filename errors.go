package zeste

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// ErrOutOfMemory is returned by every operation that allocates through an
// Allocator (TypedColumn and ErasedColumn growth, Archetype.AppendEntity,
// CreateEntity) when the Allocator fails or the requested size cannot be
// represented. InitArchetype and World.SetHook do not allocate through the
// Allocator and never return it. Callers are guaranteed no partial
// mutation is left behind: the affected column or map stays at its
// pre-call capacity and content.
var ErrOutOfMemory = errors.New("zeste: out of memory")

// addTrace attaches a stack trace to err via bark, matching the way the
// teacher library traces programmer-error panics before they leave the
// package (see entity.go/query.go in the teacher for the same idiom).
func addTrace(err error) error {
	return bark.AddTrace(err)
}

// DuplicateComponentError is raised when a bundle passed to
// World.CreateEntity or Archetype.Init names the same component type more
// than once. Detected, not silently collapsed.
type DuplicateComponentError struct {
	Hash TypeHash
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("zeste: duplicate component in bundle (hash %#x)", uint64(e.Hash))
}

// IndexOutOfRangeError is raised by SwapRemove when given an index
// outside the externally tracked length. Pop on an empty column reports
// false instead.
type IndexOutOfRangeError struct {
	Index, Len int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("zeste: index %d out of range for length %d", e.Index, e.Len)
}

// TypeMismatchError is raised when a cast from ErasedColumn back to a
// TypedColumn[T] is attempted against a column whose TypeInfo does not
// describe T.
type TypeMismatchError struct {
	Want TypeHash
	Got  TypeHash
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("zeste: type mismatch: column holds %#x, cast requested %#x", uint64(e.Got), uint64(e.Want))
}

func errInvalidBundle(t reflect.Type) error {
	return fmt.Errorf("zeste: bundle type %v must be a struct naming components as fields", t)
}
