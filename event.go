package decay

// EventType identifies a lifecycle event on an owner generation.
type EventType uint8

const (
	// EventMinted fires when a loan is minted or cloned.
	EventMinted EventType = iota
	// EventReleased fires when a loan clone is released.
	EventReleased
	// EventDecay fires when an Owner is consumed into a Decayed handle.
	EventDecay
	// EventDecayed fires once, when the last outstanding reference to the
	// loan sentinel is gone.
	EventDecayed
	// EventFreed fires when the resource itself is released.
	EventFreed
)

// String returns a human-readable event type name.
func (t EventType) String() string {
	switch t {
	case EventMinted:
		return "minted"
	case EventReleased:
		return "released"
	case EventDecay:
		return "decay"
	case EventDecayed:
		return "decayed"
	case EventFreed:
		return "freed"
	default:
		return "unknown"
	}
}

// Event describes a lifecycle event. Seq identifies the loan clone for
// minted/released events; Refs is the sentinel strong count observed
// around the event and is advisory under concurrency.
type Event struct {
	Type EventType
	Seq  uint64
	Refs int64
}

// Observer receives lifecycle events. Observers are invoked synchronously
// on whichever goroutine triggered the event, so they must be safe for
// concurrent use and should return quickly. Observer values must be
// comparable (typically pointers) so Unsubscribe can remove them.
type Observer interface {
	OnLoanEvent(Event)
}
