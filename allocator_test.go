package zeste

import (
	"testing"
	"unsafe"
)

func TestDefaultAllocatorAlignment(t *testing.T) {
	var a DefaultAllocator
	for _, align := range []uintptr{1, 2, 4, 8, 16, 32} {
		buf, err := a.Alloc(24, align)
		if err != nil {
			t.Fatalf("Alloc(24, %d) failed: %v", align, err)
		}
		if len(buf) != 24 {
			t.Fatalf("Alloc(24, %d) returned %d bytes", align, len(buf))
		}
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
		if addr%align != 0 {
			t.Fatalf("Alloc(24, %d) returned unaligned address %#x", align, addr)
		}
	}
}

func TestDefaultAllocatorRemapGrowthFallsBack(t *testing.T) {
	// A reconstructed column view always has len == cap == its tracked
	// capacity in bytes (see EnsureTotalCapacityPrecise), so growth past
	// that exact size must fail regardless of any alignment slack the
	// original Alloc call happened to leave.
	var a DefaultAllocator
	buf, err := a.Alloc(8, 8)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	exact := buf[:8:8]
	_, ok := a.Remap(exact, 4096, 8)
	if ok {
		t.Fatal("Remap reported success growing an exact-capacity view far beyond its size")
	}
}

func TestDefaultAllocatorRemapShrinkSucceeds(t *testing.T) {
	var a DefaultAllocator
	buf, err := a.Alloc(64, 8)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	shrunk, ok := a.Remap(buf, 8, 8)
	if !ok {
		t.Fatal("Remap reported failure shrinking within the existing allocation")
	}
	if len(shrunk) != 8 {
		t.Fatalf("Remap(shrink) returned %d bytes, want 8", len(shrunk))
	}
}
