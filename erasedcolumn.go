package zeste

import (
	"math"
	"unsafe"
)

// ErasedColumn is the type-erased twin of TypedColumn: a growable,
// contiguous buffer described at runtime by a TypeInfo instead of a
// compile-time T. Like TypedColumn, it does not track its own length.
type ErasedColumn struct {
	base     unsafe.Pointer
	capacity uintptr
	info     TypeInfo
}

// EmptyErasedColumn returns an ErasedColumn with zero capacity, described
// by info, and no backing allocation.
func EmptyErasedColumn(info TypeInfo) ErasedColumn {
	return ErasedColumn{info: info}
}

// Info returns the TypeInfo this column was created with.
func (c *ErasedColumn) Info() TypeInfo { return c.info }

// stride is the byte distance between consecutive elements.
func (c *ErasedColumn) stride() uintptr { return c.info.Layout.PadToAlign().Size }

// Capacity reports how many elements this column currently has room for.
// Zero-sized components always report maxCapacity.
func (c *ErasedColumn) Capacity() uintptr {
	if c.info.Layout.Size == 0 {
		return maxCapacity
	}
	return c.capacity
}

// At returns a pointer to the byte-stride element at index i. The caller
// must ensure i is within the externally tracked length; the pointer is
// invalidated by any subsequent reallocating call on this column.
func (c *ErasedColumn) At(i int) unsafe.Pointer {
	if c.info.Layout.Size == 0 {
		return c.base
	}
	return unsafe.Add(c.base, uintptr(i)*c.stride())
}

// Append copies one element's worth of bytes from src into the slot at
// index len, growing the column first if necessary, and increments *len.
func (c *ErasedColumn) Append(alloc Allocator, src unsafe.Pointer, length *int) error {
	if err := c.EnsureTotalCapacity(alloc, uintptr(*length+1), *length); err != nil {
		return err
	}
	if c.info.Layout.Size > 0 {
		c.info.Hook.Copy(c.At(*length), src, c.info.Layout.Size)
	}
	*length++
	return nil
}

// AddOne grows the column if necessary and returns a pointer to the
// uninitialized slot at index len, which the caller must populate.
func (c *ErasedColumn) AddOne(alloc Allocator, length *int) (unsafe.Pointer, error) {
	if err := c.EnsureTotalCapacity(alloc, uintptr(*length+1), *length); err != nil {
		return nil, err
	}
	ptr := c.At(*length)
	*length++
	return ptr, nil
}

// Pop copies the last element's stride bytes into dst and reports true,
// or reports false without touching dst if the column is empty. The
// caller is responsible for decrementing length.
func (c *ErasedColumn) Pop(dst unsafe.Pointer, length int) bool {
	if length == 0 {
		return false
	}
	if c.info.Layout.Size > 0 {
		c.info.Hook.Copy(dst, c.At(length-1), c.stride())
	}
	return true
}

// SwapRemove copies element i into dst, then overwrites slot i with
// element len-1 (copying exactly info.Layout.Size bytes, trailing pad
// bytes are not required to be copied), and reports true. Panics if i is
// out of range. The destructor hook is not invoked on the overwritten
// slot: its value has already been moved into dst, and the caller is
// responsible for eventually dropping what it receives.
func (c *ErasedColumn) SwapRemove(dst unsafe.Pointer, i int, length int) bool {
	if i < 0 || i >= length {
		panic(addTrace(IndexOutOfRangeError{Index: i, Len: length}))
	}
	last := length - 1
	if c.info.Layout.Size > 0 {
		c.info.Hook.Copy(dst, c.At(i), c.info.Layout.Size)
		if i != last {
			c.info.Hook.Copy(c.At(i), c.At(last), c.info.Layout.Size)
		}
	}
	return true
}

// Deinit invokes the destructor hook on each of the length live elements,
// then releases the backing allocation. Zero-sized element types have no
// storage, and the destructor hook is not invoked for them. Safe to call
// on a column whose capacity is zero.
func (c *ErasedColumn) Deinit(alloc Allocator, length int) {
	if c.info.Layout.Size > 0 && c.info.Hook != nil {
		for i := 0; i < length; i++ {
			c.info.Hook.Dtor(c.At(i))
		}
	}
	if c.base != nil {
		alloc.Free(unsafe.Slice((*byte)(c.base), c.stride()*c.capacity))
	}
	c.base = nil
	c.capacity = 0
}

// EnsureTotalCapacity grows the column, if needed, so Capacity() is at
// least newCap, using the package's grow_capacity policy. No-op for zero-sized
// components and a no-op if the column already has enough room.
func (c *ErasedColumn) EnsureTotalCapacity(alloc Allocator, newCap uintptr, length int) error {
	if c.info.Layout.Size == 0 {
		c.capacity = maxCapacity
		return nil
	}
	if newCap <= c.capacity {
		return nil
	}
	grown := growCapacity(c.info.Layout.Size, c.capacity, newCap)
	return c.EnsureTotalCapacityPrecise(alloc, grown, length)
}

// EnsureTotalCapacityPrecise grows the column to exactly newCap elements,
// reallocating and byte-copying the first length live elements if an
// in-place Remap is not available.
func (c *ErasedColumn) EnsureTotalCapacityPrecise(alloc Allocator, newCap uintptr, length int) error {
	if c.info.Layout.Size == 0 {
		c.capacity = maxCapacity
		return nil
	}
	if newCap <= c.capacity {
		return nil
	}
	stride := c.stride()
	align := c.info.Layout.Align
	if newCap > uintptr(math.MaxInt)/stride {
		return ErrOutOfMemory
	}
	newBytes := stride * newCap

	if c.base == nil {
		buf, err := alloc.Alloc(newBytes, align)
		if err != nil {
			return ErrOutOfMemory
		}
		c.base = unsafe.Pointer(unsafe.SliceData(buf))
		c.capacity = newCap
		return nil
	}

	oldBytes := stride * c.capacity
	oldBuf := unsafe.Slice((*byte)(c.base), oldBytes)
	if remapped, ok := alloc.Remap(oldBuf, newBytes, align); ok {
		c.base = unsafe.Pointer(unsafe.SliceData(remapped))
		c.capacity = newCap
		return nil
	}

	newBuf, err := alloc.Alloc(newBytes, align)
	if err != nil {
		return ErrOutOfMemory
	}
	copy(newBuf, oldBuf[:stride*uintptr(length)])
	alloc.Free(oldBuf)
	c.base = unsafe.Pointer(unsafe.SliceData(newBuf))
	c.capacity = newCap
	return nil
}

// FromErasedSlice adopts a raw byte buffer as this column's backing
// buffer, described by info. bytes must have a length that is an exact
// multiple of info's stride; capacity becomes len(bytes)/stride.
func FromErasedSlice(bytes []byte, info TypeInfo) ErasedColumn {
	stride := info.Layout.PadToAlign().Size
	if stride == 0 || len(bytes) == 0 {
		return ErasedColumn{info: info}
	}
	return ErasedColumn{
		base:     unsafe.Pointer(unsafe.SliceData(bytes)),
		capacity: uintptr(len(bytes)) / stride,
		info:     info,
	}
}

// AsTyped casts an ErasedColumn back to a *TypedColumn[T], for callers
// that know (or claim to know) the concrete element type a column was
// built with. Panics with a TypeMismatchError if c's info does not
// describe T, so a wrong cast fails loudly instead of reinterpreting
// bytes under the wrong layout.
func AsTyped[T any](c *ErasedColumn) *TypedColumn[T] {
	want := HashType[T]()
	if c.info.Hash != want {
		panic(addTrace(TypeMismatchError{Want: want, Got: c.info.Hash}))
	}
	return (*TypedColumn[T])(unsafe.Pointer(c))
}

// ErasedFromOwned adopts a caller-owned slice of T as an ErasedColumn's
// backing buffer, resolving the column's TypeInfo from T itself (against
// world, nil for DefaultHook) so the info can never describe a type other
// than items' element type. Ownership of the slice's backing array
// transfers to the returned column. This is the direct erased-side
// counterpart of TypedColumn.FromOwned followed by ToErased, useful for
// tests and other callers that only ever need the erased form.
func ErasedFromOwned[T any](items []T, world *World) ErasedColumn {
	info := TypeInfoOf[T](world)
	if isZST[T]() {
		return ErasedColumn{info: info, capacity: maxCapacity}
	}
	if len(items) == 0 {
		return ErasedColumn{info: info}
	}
	return ErasedColumn{
		base:     unsafe.Pointer(&items[0]),
		capacity: uintptr(len(items)),
		info:     info,
	}
}
