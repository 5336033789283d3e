package rankinterval

import "sync/atomic"

// Counter counts successful strategy constructions. It is owned by whoever
// builds strategies (normally the engine) and threaded explicitly through
// construction; there is no package-level instance.
type Counter struct {
	value atomic.Int64
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Increment adds one to the counter.
func (c *Counter) Increment() {
	c.value.Add(1)
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	return c.value.Load()
}
