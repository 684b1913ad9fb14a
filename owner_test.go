package decay

import (
	"testing"
)

func TestOwner_Basic(t *testing.T) {
	o := Make(42)
	if !o.Valid() {
		t.Fatal("Expected valid owner")
	}
	if got := *o.Get(); got != 42 {
		t.Fatalf("Expected 42, got %d", got)
	}
	if o.Refs() != 1 {
		t.Fatalf("Expected implicit ref only, got %d", o.Refs())
	}
}

func TestOwner_ZeroValueDetached(t *testing.T) {
	var o Owner[int]
	if o.Valid() {
		t.Fatal("Zero-value owner should be invalid")
	}
	if o.Get() != nil {
		t.Fatal("Expected nil resource")
	}
	if o.Refs() != 0 {
		t.Fatalf("Expected 0 refs, got %d", o.Refs())
	}

	// All operations must be total on a detached handle.
	l := o.Loan()
	if l.Valid() || l.Get() != nil || l.Refs() != 0 {
		t.Fatal("Loan from detached owner should be detached")
	}
	l.Release()
	o.Reset()

	d := o.Decay()
	if !d.Decayed() {
		t.Fatal("Decay of detached owner should be decayed immediately")
	}
}

func TestOwner_NullResourceLoans(t *testing.T) {
	// A constructed owner holding nil still has a live sentinel: loans to
	// nil are valid and counted.
	o := New[int](nil)
	if o.Valid() {
		t.Fatal("Owner of nil should be invalid")
	}

	l := o.Loan()
	if l.Get() != nil {
		t.Fatal("Expected loan to nil")
	}
	if o.Refs() != 2 {
		t.Fatalf("Expected refs 2 (owner + loan), got %d", o.Refs())
	}
	l.Release()
	if o.Refs() != 1 {
		t.Fatalf("Expected refs 1 after release, got %d", o.Refs())
	}
}

func TestOwner_DecayDetachesSource(t *testing.T) {
	o := Make("payload")
	addr := o.Get()

	d := o.Decay()
	if o.Valid() || o.Get() != nil {
		t.Fatal("Source owner must be detached after decay")
	}
	if !d.Valid() || d.Get() != addr {
		t.Fatal("Decayed handle must hold the same address")
	}
	// No loans were outstanding, so decay completes at the transition.
	if !d.Decayed() {
		t.Fatal("Expected immediate decay with no loans")
	}
	if got := *d.Get(); got != "payload" {
		t.Fatalf("Dereference after decay: got %q", got)
	}
}

func TestOwner_Move(t *testing.T) {
	o := Make(7)
	l := o.Loan()

	o2 := o.Move()
	if o.Valid() {
		t.Fatal("Moved-from owner must be detached")
	}
	if !o2.Valid() || *o2.Get() != 7 {
		t.Fatal("Move target must own the resource")
	}
	// Moving the owner does not touch the sentinel count.
	if o2.Refs() != 2 {
		t.Fatalf("Expected refs 2 after move, got %d", o2.Refs())
	}
	l.Release()
}

func TestOwner_ResetLeavesOldLoansIntact(t *testing.T) {
	oldFreed := false
	o := NewFunc(intp(1), func(*int) { oldFreed = true })
	l := o.Loan()

	o.ResetTo(intp(2))
	if *o.Get() != 2 {
		t.Fatalf("Expected new resource 2, got %d", *o.Get())
	}
	if *l.Get() != 1 {
		t.Fatalf("Old loan must keep the old resource, got %d", *l.Get())
	}
	if oldFreed {
		t.Fatal("Old resource freed while a loan is outstanding")
	}
	// New generation: fresh count, the old loan does not show up.
	if o.Refs() != 1 {
		t.Fatalf("Expected fresh refs 1, got %d", o.Refs())
	}

	l.Release()
	if !oldFreed {
		t.Fatal("Old resource should be freed once its last loan is gone")
	}
}

func TestOwner_DeleterOnReset(t *testing.T) {
	freed := 0
	o := NewFunc(intp(5), func(*int) { freed++ })
	o.Reset()
	if freed != 1 {
		t.Fatalf("Expected deleter to run once, ran %d times", freed)
	}
}

func TestOwner_DeleterOnNilResource(t *testing.T) {
	var got *int = intp(0)
	o := NewFunc[int](nil, func(p *int) { got = p })
	o.Reset()
	if got != nil {
		t.Fatal("Deleter should run with nil for a nil resource")
	}
}

func intp(v int) *int { return &v }
