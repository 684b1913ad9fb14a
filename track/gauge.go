package track

import (
	"sync/atomic"

	"github.com/wippyai/decay"
)

// Gauge counts outstanding loan clones on the generations it observes.
// Safe for concurrent use; feed it with Owner.Subscribe.
type Gauge struct {
	outstanding atomic.Int64
	minted      atomic.Int64
	decayed     atomic.Bool
}

// NewGauge returns an empty gauge.
func NewGauge() *Gauge {
	return &Gauge{}
}

// OnLoanEvent implements decay.Observer.
func (g *Gauge) OnLoanEvent(e decay.Event) {
	switch e.Type {
	case decay.EventMinted:
		g.outstanding.Add(1)
		g.minted.Add(1)
	case decay.EventReleased:
		g.outstanding.Add(-1)
	case decay.EventDecayed:
		g.decayed.Store(true)
	}
}

// Outstanding returns the number of live loan clones.
func (g *Gauge) Outstanding() int64 { return g.outstanding.Load() }

// Minted returns the total number of clones ever minted.
func (g *Gauge) Minted() int64 { return g.minted.Load() }

// Decayed reports whether the observed generation has fully decayed.
func (g *Gauge) Decayed() bool { return g.decayed.Load() }
