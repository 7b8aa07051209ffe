package zeste

// Config holds global configuration for newly constructed worlds.
var Config config = config{allocator: DefaultAllocator{}}

type config struct {
	allocator Allocator
}

// Allocator returns the default Allocator a World falls back to when
// Init is called with a nil allocator.
func (c *config) Allocator() Allocator {
	return c.allocator
}

// SetAllocator configures the default allocator used by World.Init when
// called without an explicit one.
func (c *config) SetAllocator(a Allocator) {
	c.allocator = a
}
