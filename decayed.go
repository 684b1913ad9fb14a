package decay

import (
	"context"
	"time"
)

// Decayed is the handle an Owner degrades into. It still owns the
// resource - Get is valid before and after decay completes - but it can
// no longer mint loans. What it gains is the decay query and the ability
// to block until every loan minted before the transition has been
// released.
//
// The zero value is a null handle and reports Decayed() == true.
// Decayed is an exclusive handle like Owner; only the wait and query
// methods may be used from multiple goroutines.
type Decayed[T any] struct {
	noCopy noCopy

	gen *generation[T]
}

// Decayed reports whether every loan has been released. It observes the
// sentinel weakly: once true it stays true for this handle.
func (d *Decayed[T]) Decayed() bool {
	return d.gen == nil || !d.gen.loans.Live()
}

// Wait blocks until decay completes. The wake signal is a one-shot
// channel close, so Wait returns immediately when decay already happened;
// there is no lost-wakeup window regardless of when the last loan is
// released relative to this call.
func (d *Decayed[T]) Wait() {
	if d.gen == nil {
		return
	}
	<-d.gen.wake
}

// WaitFor blocks until decay completes or the duration elapses, and
// reports whether the handle had decayed by the deadline.
func (d *Decayed[T]) WaitFor(timeout time.Duration) bool {
	if d.gen == nil {
		return true
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-d.gen.wake:
		return true
	case <-timer.C:
		// The timer and the wake may both be ready; settle on the count.
		return d.Decayed()
	}
}

// WaitUntil is WaitFor against an absolute deadline.
func (d *Decayed[T]) WaitUntil(deadline time.Time) bool {
	return d.WaitFor(time.Until(deadline))
}

// WaitContext blocks until decay completes or ctx is done. It returns nil
// on decay and ctx.Err() on cancellation.
func (d *Decayed[T]) WaitContext(ctx context.Context) error {
	if d.gen == nil {
		return nil
	}
	select {
	case <-d.gen.wake:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Move transfers the handle to a fresh Decayed and detaches the receiver.
func (d *Decayed[T]) Move() *Decayed[T] {
	g := d.gen
	d.gen = nil
	return &Decayed[T]{gen: g}
}

// Reset drops ownership of the resource and all synchronization state,
// leaving the handle null. Outstanding loans still keep the resource
// alive; the release func, if any, runs once the last of them is gone.
func (d *Decayed[T]) Reset() {
	g := d.gen
	d.gen = nil
	if g == nil {
		return
	}
	g.cell.Release()
}

// Get returns the resource pointer, or nil on a null handle. Decay
// affects aliasing guarantees only, not pointer validity.
func (d *Decayed[T]) Get() *T {
	if d.gen == nil {
		return nil
	}
	return d.gen.val
}

// Valid reports whether the handle holds a non-nil resource.
func (d *Decayed[T]) Valid() bool {
	return d.gen != nil && d.gen.val != nil
}

// Refs returns the observable sentinel strong count: one per outstanding
// loan clone, with no implicit owner reference after the transition.
func (d *Decayed[T]) Refs() int64 {
	if d.gen == nil {
		return 0
	}
	return d.gen.loans.Refs()
}
