package zeste

// CountingAllocator decorates another Allocator, incrementing a counter
// per operation performed. Tests use it to assert exact allocation
// counts.
type CountingAllocator struct {
	Inner   Allocator
	Allocs  int
	Resizes int
	Remaps  int
	Frees   int
}

// NewCountingAllocator wraps inner, defaulting to DefaultAllocator{} when
// inner is nil.
func NewCountingAllocator(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = DefaultAllocator{}
	}
	return &CountingAllocator{Inner: inner}
}

func (c *CountingAllocator) Alloc(size, align uintptr) ([]byte, error) {
	c.Allocs++
	return c.Inner.Alloc(size, align)
}

func (c *CountingAllocator) Resize(buf []byte, newSize uintptr) ([]byte, bool) {
	c.Resizes++
	return c.Inner.Resize(buf, newSize)
}

func (c *CountingAllocator) Remap(buf []byte, newSize, align uintptr) ([]byte, bool) {
	c.Remaps++
	return c.Inner.Remap(buf, newSize, align)
}

func (c *CountingAllocator) Free(buf []byte) {
	c.Frees++
	c.Inner.Free(buf)
}
