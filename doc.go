// Package decay provides loanable exclusive-ownership handles: an Owner
// that lends out shared references to a resource and then degrades into a
// plain exclusive handle once every loan has been released.
//
// This captures a common pattern: hand a resource to background work that
// needs shared, counted access, while the originating owner wants to
// resume exclusive ownership afterwards - no lingering aliases,
// deterministic teardown.
//
// # Handle Lifecycle
//
// Three handle types cooperate:
//
//	Owner[T]   exclusive handle; mints loans
//	Loan[T]    shared reference; Clone/Release per holder
//	Decayed[T] produced by Owner.Decay; queries and waits for release
//
// Control flow:
//
//	owner := decay.Make(newConn())
//
//	for range workers {
//	    loan := owner.Loan()
//	    go func() {
//	        defer loan.Release()
//	        use(loan.Get())
//	    }()
//	}
//
//	d := owner.Decay() // owner is detached from here on
//	d.Wait()           // blocks until every loan is released
//	// exclusive again: no shared references remain
//
// # Lifetime Rules
//
// A loan keeps the resource alive on its own: the loan sentinel holds a
// private reference to the resource, so even after the owning handle
// resets, the resource survives until the last loan is gone. A release
// func passed to NewFunc runs exactly once, when both the owning chain
// and every loan have let go.
//
// Because Go has no destructors, the owning side releases explicitly:
// Owner.Reset or Decayed.Reset gives up the owning reference. Loans must
// be released exactly once per clone.
//
// # Waiting
//
// The wake signal is a one-shot channel close fired when the last loan is
// released, so Wait, WaitFor, WaitUntil and WaitContext are safe to call
// before or after the event. The release of the final loan
// happens-before any wait call returns.
//
// # Observation
//
// Lifecycle observers (Owner.Subscribe) see mint, release, decay and free
// events; the track package builds logging, gauges and leak checking on
// top of them.
//
// # Misuse
//
// Dereferencing a null handle yields a nil pointer. Releasing more loan
// references than were minted panics, as does cloning from a generation
// whose count already reached zero.
package decay
