package decay

import "go.uber.org/zap"

// noCopy flags Owner and Decayed for go vet's copylocks check. Handles
// transfer with Move or Decay, never by struct copy.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Owner is the exclusive handle to a resource that can lend out shared
// references. It is the only handle type that mints loans; consuming it
// with Decay trades that capability for the ability to observe and wait
// for all loans to be released.
//
// The zero value is a detached (null) handle; every method is safe on it.
// Owner is an exclusive handle and is not safe for concurrent use. The
// loans it mints are independently owned and may be released from any
// goroutine.
type Owner[T any] struct {
	noCopy noCopy

	gen *generation[T]
}

// New wraps p in a fresh Owner. A fresh loan sentinel and wake channel
// are allocated even when p is nil: loans minted from a null handle are
// valid loans to nil.
func New[T any](p *T) *Owner[T] {
	return &Owner[T]{gen: newGeneration(p, nil)}
}

// NewFunc wraps p with a release func invoked exactly once, when both the
// owning handle chain and every loan have let go of the resource. The
// release func is called even if p is nil.
func NewFunc[T any](p *T, release func(*T)) *Owner[T] {
	return &Owner[T]{gen: newGeneration(p, release)}
}

// Make allocates v and wraps it directly in a fresh Owner.
func Make[T any](v T) *Owner[T] {
	return New(&v)
}

// Loan mints a shared reference to the resource. The loan lives
// independently of the Owner: it survives Reset, Decay, and release of
// the owning chain. On a detached Owner, Loan returns a detached loan to
// nil; it never faults.
//
// Every minted loan (and every Clone of it) must be released exactly
// once.
func (o *Owner[T]) Loan() Loan[T] {
	if o.gen == nil {
		return Loan[T]{}
	}
	o.gen.loans.Acquire()
	seq := o.gen.seq.Add(1)
	o.gen.notify(Event{Type: EventMinted, Seq: seq, Refs: o.gen.loans.Refs()})
	return Loan[T]{gen: o.gen, seq: seq}
}

// Decay consumes the Owner and returns the degraded handle. The Owner
// gives up its implicit sentinel reference, keeping only the resource
// itself; afterwards it is detached and can no longer mint live loans.
// The transition is one-way.
//
// With no loans outstanding the returned handle is decayed immediately.
func (o *Owner[T]) Decay() *Decayed[T] {
	g := o.gen
	o.gen = nil
	if g == nil {
		return &Decayed[T]{}
	}
	Logger().Debug("ownership decay", zap.Int64("outstanding", g.loans.Refs()-1))
	g.notify(Event{Type: EventDecay, Refs: g.loans.Refs()})
	d := &Decayed[T]{gen: g}
	g.loans.Release()
	return d
}

// Move transfers ownership to a fresh Owner and detaches the receiver.
func (o *Owner[T]) Move() *Owner[T] {
	g := o.gen
	o.gen = nil
	return &Owner[T]{gen: g}
}

// Reset releases the Owner's hold on the resource and sentinel, leaving
// the handle detached. Loans minted earlier keep the old generation -
// and through it the old resource - alive until they are all released.
func (o *Owner[T]) Reset() {
	g := o.gen
	o.gen = nil
	if g == nil {
		return
	}
	g.cell.Release()
	g.loans.Release()
}

// ResetTo releases the current resource as Reset does, then installs p
// under a brand-new generation (fresh sentinel and wake channel).
func (o *Owner[T]) ResetTo(p *T) {
	o.Reset()
	o.gen = newGeneration(p, nil)
}

// ResetFunc is ResetTo with a release func for the new resource.
func (o *Owner[T]) ResetFunc(p *T, release func(*T)) {
	o.Reset()
	o.gen = newGeneration(p, release)
}

// Get returns the resource pointer, or nil on a detached or null handle.
func (o *Owner[T]) Get() *T {
	if o.gen == nil {
		return nil
	}
	return o.gen.val
}

// Valid reports whether the handle holds a non-nil resource.
func (o *Owner[T]) Valid() bool {
	return o.gen != nil && o.gen.val != nil
}

// Refs returns the observable sentinel strong count: one implicit
// reference for the live Owner plus one per outstanding loan clone.
// Zero on a detached handle.
func (o *Owner[T]) Refs() int64 {
	if o.gen == nil {
		return 0
	}
	return o.gen.loans.Refs()
}

// Subscribe attaches an observer to the current generation. Observers do
// not carry over across Reset. No-op on a detached handle.
func (o *Owner[T]) Subscribe(obs Observer) {
	if o.gen == nil {
		return
	}
	o.gen.subscribe(obs)
}

// Unsubscribe removes an observer from the current generation.
func (o *Owner[T]) Unsubscribe(obs Observer) {
	if o.gen == nil {
		return
	}
	o.gen.unsubscribe(obs)
}
