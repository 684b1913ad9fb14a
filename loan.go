package decay

// Loan is a shared reference to an owned resource, minted from an Owner.
// Each Loan (and each Clone of one) holds exactly one strong reference to
// the loan sentinel and keeps the resource alive independently of the
// issuing Owner.
//
// Loans may be handed to and released from any goroutine; the sentinel
// count is the only synchronized state. Sharing a loan is explicit: pass
// the value and call Clone for every new holder, then Release exactly
// once per clone. Releasing through several copies of the same clone is
// misuse and panics once the count underflows.
//
// The zero value is a detached loan to nil; Clone and Release on it are
// no-ops.
type Loan[T any] struct {
	gen *generation[T]
	seq uint64
}

// Get returns the resource address captured at mint time. It stays valid
// for the lifetime of the loan even after the issuing Owner has reset or
// decayed; nil for loans minted from a null handle.
func (l Loan[T]) Get() *T {
	if l.gen == nil {
		return nil
	}
	return l.gen.val
}

// Valid reports whether the loan refers to a non-nil resource.
func (l Loan[T]) Valid() bool {
	return l.gen != nil && l.gen.val != nil
}

// Refs returns the sentinel strong count of the loan's generation.
func (l Loan[T]) Refs() int64 {
	if l.gen == nil {
		return 0
	}
	return l.gen.loans.Refs()
}

// Clone mints an independent holder of the same loan. The clone must be
// released separately.
func (l Loan[T]) Clone() Loan[T] {
	if l.gen == nil {
		return Loan[T]{}
	}
	l.gen.loans.Acquire()
	seq := l.gen.seq.Add(1)
	l.gen.notify(Event{Type: EventMinted, Seq: seq, Refs: l.gen.loans.Refs()})
	return Loan[T]{gen: l.gen, seq: seq}
}

// Release gives the loan back. Dropping the last outstanding reference
// fires the wake signal and lets go of the sentinel's private hold on the
// resource, which frees the resource if no owning handle remains.
//
// Release detaches the receiver, so calling it again through the same
// variable is a no-op.
func (l *Loan[T]) Release() {
	g := l.gen
	if g == nil {
		return
	}
	l.gen = nil
	g.notify(Event{Type: EventReleased, Seq: l.seq, Refs: g.loans.Refs() - 1})
	g.loans.Release()
}
