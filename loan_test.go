package decay

import (
	"testing"
)

func TestLoan_RefArithmetic(t *testing.T) {
	o := Make(1)

	a := o.Loan()
	if o.Refs() != 2 {
		t.Fatalf("Expected refs 2 after mint, got %d", o.Refs())
	}

	b := a.Clone()
	c := a.Clone()
	if o.Refs() != 4 {
		t.Fatalf("Expected refs 4 after clones, got %d", o.Refs())
	}

	b.Release()
	if o.Refs() != 3 {
		t.Fatalf("Expected refs 3, got %d", o.Refs())
	}
	c.Release()
	a.Release()
	if o.Refs() != 1 {
		t.Fatalf("Expected implicit ref only, got %d", o.Refs())
	}
}

func TestLoan_KeepsResourceAliveWithoutDecay(t *testing.T) {
	// Mint a loan, then drop the owner entirely without transitioning.
	// The resource must survive until the loan goes too.
	freed := false
	o := NewFunc(intp(9), func(*int) { freed = true })
	l := o.Loan()

	o.Reset()
	if freed {
		t.Fatal("Resource freed while a loan is alive")
	}
	if *l.Get() != 9 {
		t.Fatalf("Loan lost the resource, got %d", *l.Get())
	}

	l.Release()
	if !freed {
		t.Fatal("Resource should be freed once loan and owner are both gone")
	}
}

func TestLoan_ReleaseIdempotentPerVariable(t *testing.T) {
	o := Make(3)
	l := o.Loan()
	l.Release()
	l.Release() // detached receiver: no-op
	if o.Refs() != 1 {
		t.Fatalf("Expected refs 1, got %d", o.Refs())
	}
}

func TestLoan_UnderflowPanics(t *testing.T) {
	o := Make(3)
	l := o.Loan()
	dup := l // struct copy, not a clone: shares the single reference

	d := o.Decay()
	l.Release()
	if !d.Decayed() {
		t.Fatal("Expected decay after last release")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic when releasing more refs than minted")
		}
	}()
	dup.Release()
}

func TestLoan_CloneAcrossDecay(t *testing.T) {
	// Clones taken before or after the transition all count; decay waits
	// for every one of them.
	o := Make(4)
	a := o.Loan()
	d := o.Decay()

	b := a.Clone()
	if d.Decayed() {
		t.Fatal("Not decayed with clones outstanding")
	}
	a.Release()
	if d.Decayed() {
		t.Fatal("Not decayed while one clone remains")
	}
	b.Release()
	if !d.Decayed() {
		t.Fatal("Expected decay after final clone release")
	}
}

func TestLoan_ZeroValue(t *testing.T) {
	var l Loan[int]
	if l.Valid() || l.Get() != nil || l.Refs() != 0 {
		t.Fatal("Zero-value loan should be detached")
	}
	c := l.Clone()
	c.Release()
	l.Release()
}
