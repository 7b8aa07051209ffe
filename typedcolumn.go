package zeste

import (
	"math"
	"unsafe"
)

// CacheLineBytes is the assumed target cache line size used to seed
// grow_capacity's initial step. It is a compile-time constant; changing it
// for another architecture means editing this declaration.
const CacheLineBytes = 64

// maxCapacity is the value ZST-backed columns report as their capacity:
// they never run out of room because they never allocate.
const maxCapacity = uintptr(math.MaxUint64)

// TypedColumn is a growable, contiguous buffer of T that does not track
// its own length — length is owned externally (typically by the
// Archetype a column belongs to) so that many parallel columns can share
// a single length without drifting out of sync with each other.
type TypedColumn[T any] struct {
	base     *T
	capacity uintptr
}

// EmptyTypedColumn returns a TypedColumn[T] with zero capacity and no
// backing allocation.
func EmptyTypedColumn[T any]() TypedColumn[T] {
	return TypedColumn[T]{}
}

func isZST[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

func elemLayout[T any]() Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// Capacity reports how many elements this column currently has room for.
// Zero-sized element types always report maxCapacity, since they occupy
// no storage and therefore never run out of room.
func (c *TypedColumn[T]) Capacity() uintptr {
	if isZST[T]() {
		return maxCapacity
	}
	return c.capacity
}

// At returns a pointer to the element at index i. The caller must ensure
// i is within the externally tracked length; the pointer is invalidated
// by any subsequent reallocating call on this column.
func (c *TypedColumn[T]) At(i int) *T {
	if isZST[T]() {
		var zero T
		return &zero
	}
	return (*T)(unsafe.Add(unsafe.Pointer(c.base), uintptr(i)*unsafe.Sizeof(*c.base)))
}

// Append places item at index len and increments *len, growing the
// column first if necessary.
func (c *TypedColumn[T]) Append(alloc Allocator, item T, length *int) error {
	if err := c.EnsureTotalCapacity(alloc, uintptr(*length+1), *length); err != nil {
		return err
	}
	if !isZST[T]() {
		*c.At(*length) = item
	}
	*length++
	return nil
}

// AddOne grows the column if necessary and returns a pointer to the
// uninitialized slot at index len, which the caller must write to. The
// returned pointer is invalidated by any later reallocating call.
func (c *TypedColumn[T]) AddOne(alloc Allocator, length *int) (*T, error) {
	if err := c.EnsureTotalCapacity(alloc, uintptr(*length+1), *length); err != nil {
		return nil, err
	}
	ptr := c.At(*length)
	*length++
	return ptr, nil
}

// Pop removes and returns the last element, reporting false if the
// column is empty.
func (c *TypedColumn[T]) Pop(length *int) (T, bool) {
	if *length == 0 {
		var zero T
		return zero, false
	}
	*length--
	return *c.At(*length), true
}

// SwapRemove removes the element at index i in O(1) by moving the last
// element into its place, and returns the removed value. Panics if i is
// out of range.
func (c *TypedColumn[T]) SwapRemove(i int, length *int) T {
	if i < 0 || i >= *length {
		panic(addTrace(IndexOutOfRangeError{Index: i, Len: *length}))
	}
	last := *length - 1
	removed := *c.At(i)
	if i != last {
		*c.At(i) = *c.At(last)
	}
	*length--
	return removed
}

// EnsureTotalCapacity grows the column, if needed, so that Capacity() is
// at least newCap, using grow_capacity's policy to decide the actual
// new capacity. It is a no-op for zero-sized T and a no-op if the column
// already has enough room.
func (c *TypedColumn[T]) EnsureTotalCapacity(alloc Allocator, newCap uintptr, length int) error {
	if isZST[T]() {
		c.capacity = maxCapacity
		return nil
	}
	if newCap <= c.capacity {
		return nil
	}
	grown := growCapacity(elemLayout[T]().Size, c.capacity, newCap)
	return c.EnsureTotalCapacityPrecise(alloc, grown, length)
}

// EnsureTotalCapacityPrecise grows the column to exactly newCap elements
// (not the grow_capacity-rounded value), reallocating and copying the
// first length live elements if an in-place Remap is not available.
func (c *TypedColumn[T]) EnsureTotalCapacityPrecise(alloc Allocator, newCap uintptr, length int) error {
	if isZST[T]() {
		c.capacity = maxCapacity
		return nil
	}
	if newCap <= c.capacity {
		return nil
	}
	layout := elemLayout[T]()
	stride := layout.PadToAlign().Size
	if newCap > uintptr(math.MaxInt)/stride {
		return ErrOutOfMemory
	}
	newBytes := stride * newCap

	if c.base == nil {
		buf, err := alloc.Alloc(newBytes, layout.Align)
		if err != nil {
			return ErrOutOfMemory
		}
		c.base = (*T)(unsafe.Pointer(unsafe.SliceData(buf)))
		c.capacity = newCap
		return nil
	}

	oldBytes := stride * c.capacity
	oldBuf := unsafe.Slice((*byte)(unsafe.Pointer(c.base)), oldBytes)
	if remapped, ok := alloc.Remap(oldBuf, newBytes, layout.Align); ok {
		c.base = (*T)(unsafe.Pointer(unsafe.SliceData(remapped)))
		c.capacity = newCap
		return nil
	}

	newBuf, err := alloc.Alloc(newBytes, layout.Align)
	if err != nil {
		return ErrOutOfMemory
	}
	copy(newBuf, oldBuf[:stride*uintptr(length)])
	alloc.Free(oldBuf)
	c.base = (*T)(unsafe.Pointer(unsafe.SliceData(newBuf)))
	c.capacity = newCap
	return nil
}

// FromOwned adopts a caller-owned slice as this column's backing buffer.
// The column's capacity becomes len(items); ownership of the slice's
// backing array transfers to the column.
func FromOwned[T any](items []T) TypedColumn[T] {
	if len(items) == 0 {
		return TypedColumn[T]{}
	}
	return TypedColumn[T]{
		base:     &items[0],
		capacity: uintptr(len(items)),
	}
}

// ToErased reseats this column's buffer behind a TypeInfo resolved for T
// against world (nil for DefaultHook), consuming the typed column: after
// this call c is reset to empty, precluding a double free once the
// returned ErasedColumn is eventually deinitialized.
func (c *TypedColumn[T]) ToErased(world *World) ErasedColumn {
	info := TypeInfoOf[T](world)
	erased := ErasedColumn{info: info}
	if !isZST[T]() && c.base != nil {
		erased.base = unsafe.Pointer(c.base)
		erased.capacity = c.capacity
	} else if isZST[T]() {
		erased.capacity = maxCapacity
	}
	c.base = nil
	c.capacity = 0
	return erased
}

// growCapacity implements the package's growth policy: starting from an initial
// step derived from the cache line size, grow by ~1.5x (new + new/2 +
// seed) until the result reaches minimum. Arithmetic saturates rather
// than overflows, so a minimum beyond math.MaxUint64 still terminates
// (and the subsequent allocation then fails cleanly with OutOfMemory).
func growCapacity(elemSize, current, minimum uintptr) uintptr {
	if elemSize == 0 {
		return maxCapacity
	}
	seed := CacheLineBytes / elemSize
	if seed < 1 {
		seed = 1
	}
	newCap := current
	for newCap < minimum {
		grown := satAdd(newCap, newCap/2)
		grown = satAdd(grown, seed)
		if grown <= newCap {
			return maxCapacity
		}
		newCap = grown
	}
	return newCap
}

func satAdd(a, b uintptr) uintptr {
	sum := a + b
	if sum < a {
		return maxCapacity
	}
	return sum
}
