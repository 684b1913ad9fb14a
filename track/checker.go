package track

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/wippyai/decay"
)

// Leak describes a loan clone that was minted but never released.
type Leak struct {
	Seq   uint64
	Stack string
}

// String formats the leak for log output.
func (l Leak) String() string {
	return fmt.Sprintf("loan seq %d minted at:\n%s", l.Seq, l.Stack)
}

// Checker records the call site of every mint and drops the record on
// release. Whatever remains is a leak candidate. Safe for concurrent use.
type Checker struct {
	mu    sync.Mutex
	sites map[uint64]string
}

// NewChecker returns an empty leak checker.
func NewChecker() *Checker {
	return &Checker{sites: make(map[uint64]string)}
}

// OnLoanEvent implements decay.Observer.
func (c *Checker) OnLoanEvent(e decay.Event) {
	switch e.Type {
	case decay.EventMinted:
		stack := mintStack()
		c.mu.Lock()
		c.sites[e.Seq] = stack
		c.mu.Unlock()
	case decay.EventReleased:
		c.mu.Lock()
		delete(c.sites, e.Seq)
		c.mu.Unlock()
	}
}

// Leaks returns the outstanding loans with their mint-site stacks.
func (c *Checker) Leaks() []Leak {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Leak, 0, len(c.sites))
	for seq, stack := range c.sites {
		out = append(out, Leak{Seq: seq, Stack: stack})
	}
	return out
}

// Outstanding returns the number of unreleased loans.
func (c *Checker) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sites)
}

// mintStack captures the caller stack above the observer plumbing.
func mintStack() string {
	pc := make([]uintptr, 16)
	// Skip runtime.Callers, mintStack, OnLoanEvent and the notify frame.
	n := runtime.Callers(4, pc)
	frames := runtime.CallersFrames(pc[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "  %s\n    %s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
