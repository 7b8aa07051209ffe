package zeste

import "unsafe"

// Layout describes the size and alignment of a component's in-memory
// representation. Alignment is always a power of two.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutOf derives the Layout of T from the Go compiler's own notion of
// size and alignment.
func LayoutOf[T any]() Layout {
	var zero T
	return Layout{
		Size:  unsafe.Sizeof(zero),
		Align: unsafe.Alignof(zero),
	}
}

// PadToAlign rounds Size up to the nearest multiple of Align, yielding the
// stride used between consecutive elements of an array of this layout.
func (l Layout) PadToAlign() Layout {
	if l.Align == 0 {
		return l
	}
	padded := (l.Size + l.Align - 1) &^ (l.Align - 1)
	return Layout{Size: padded, Align: l.Align}
}

// Repeat returns the Layout of an array of n elements of this layout,
// i.e. a Layout whose Size is n times this layout's stride.
func (l Layout) Repeat(n uintptr) Layout {
	stride := l.PadToAlign().Size
	return Layout{Size: stride * n, Align: l.Align}
}

// Stride is shorthand for l.PadToAlign().Size, the byte distance between
// consecutive elements of an array laid out with this layout.
func (l Layout) Stride() uintptr {
	return l.PadToAlign().Size
}
