package decay

import (
	"sync"
	"sync/atomic"

	"github.com/wippyai/decay/internal/sentinel"
)

// generation is the shared state behind one owner lifetime: the resource
// cell, the loan sentinel, and the wake channel. An Owner reset installs
// a brand-new generation; loans minted earlier keep the old one alive.
type generation[T any] struct {
	val *T

	// cell owns the resource. Count: owner-or-decayed chain (1) plus the
	// capture held by the loan sentinel (1). The release action runs the
	// deleter.
	cell *sentinel.Counter

	// loans tracks outstanding shared references. Count: implicit owner
	// reference (1, given up at decay) plus one per live loan clone. The
	// release action fires the wake signal and drops the cell capture.
	loans *sentinel.Counter

	// wake is closed exactly once, when loans reaches zero.
	wake chan struct{}

	seq atomic.Uint64

	obsMu     sync.RWMutex
	observers []Observer
}

func newGeneration[T any](val *T, release func(*T)) *generation[T] {
	g := &generation[T]{
		val:  val,
		wake: make(chan struct{}),
	}
	g.cell = sentinel.New(func() {
		if release != nil {
			// A deleter attached to a nil resource still runs with nil.
			release(val)
		}
		g.notify(Event{Type: EventFreed})
	})

	// The loan sentinel privately captures one cell reference. This is
	// what lets a loan outlive the owner: the resource dies only after
	// both the owning handle and every loan have let go.
	g.cell.Acquire()
	g.loans = sentinel.New(func() {
		g.notify(Event{Type: EventDecayed})
		close(g.wake)
		g.cell.Release()
	})
	return g
}

func (g *generation[T]) subscribe(o Observer) {
	g.obsMu.Lock()
	defer g.obsMu.Unlock()
	g.observers = append(g.observers, o)
}

func (g *generation[T]) unsubscribe(o Observer) {
	g.obsMu.Lock()
	defer g.obsMu.Unlock()
	for i, obs := range g.observers {
		if obs == o {
			g.observers = append(g.observers[:i], g.observers[i+1:]...)
			return
		}
	}
}

func (g *generation[T]) notify(e Event) {
	g.obsMu.RLock()
	defer g.obsMu.RUnlock()
	for _, o := range g.observers {
		o.OnLoanEvent(e)
	}
}
