package sentinel

import "sync/atomic"

// Counter is an atomic strong-reference count with a release action.
//
// The count starts at 1 for the initial holder. Release runs the action
// exactly once, when the count reaches zero; the zero state is terminal.
type Counter struct {
	refs    atomic.Int64
	release func()
}

// New returns a counter holding one reference. The release action may be
// nil; it runs on the goroutine that drops the final reference.
func New(release func()) *Counter {
	c := &Counter{release: release}
	c.refs.Store(1)
	return c
}

// Acquire adds a reference. It panics if the counter already hit zero:
// a dead counter cannot be revived.
func (c *Counter) Acquire() {
	if c.refs.Add(1) <= 1 {
		panic("sentinel: acquire after count reached zero")
	}
}

// Release drops a reference. The final release runs the release action.
// It panics on underflow (more releases than acquires).
func (c *Counter) Release() {
	n := c.refs.Add(-1)
	switch {
	case n < 0:
		panic("sentinel: release of a zero count")
	case n == 0:
		if c.release != nil {
			c.release()
			c.release = nil
		}
	}
}

// Refs returns the current count. The value is inherently racy and is
// meant for diagnostics and monotonic zero checks.
func (c *Counter) Refs() int64 {
	return c.refs.Load()
}

// Live reports whether any references remain. Once false it stays false.
func (c *Counter) Live() bool {
	return c.refs.Load() > 0
}
