package sentinel

import (
	"sync"
	"testing"
)

func TestCounter_ReleaseActionRunsOnce(t *testing.T) {
	runs := 0
	c := New(func() { runs++ })

	c.Acquire()
	c.Acquire()
	if c.Refs() != 3 {
		t.Fatalf("Expected 3 refs, got %d", c.Refs())
	}

	c.Release()
	c.Release()
	if runs != 0 {
		t.Fatal("Release action ran before count reached zero")
	}

	c.Release()
	if runs != 1 {
		t.Fatalf("Expected release action to run once, ran %d times", runs)
	}
	if c.Live() {
		t.Fatal("Counter should not be live after final release")
	}
}

func TestCounter_NilAction(t *testing.T) {
	c := New(nil)
	c.Release() // must not panic
	if c.Refs() != 0 {
		t.Fatalf("Expected 0 refs, got %d", c.Refs())
	}
}

func TestCounter_AcquireAfterZeroPanics(t *testing.T) {
	c := New(nil)
	c.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on acquire after zero")
		}
	}()
	c.Acquire()
}

func TestCounter_UnderflowPanics(t *testing.T) {
	c := New(nil)
	c.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on double release")
		}
	}()
	c.Release()
}

func TestCounter_ConcurrentRelease(t *testing.T) {
	const holders = 64

	done := make(chan struct{})
	c := New(func() { close(done) })
	for i := 1; i < holders; i++ {
		c.Acquire()
	}

	var wg sync.WaitGroup
	for i := 0; i < holders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Release()
		}()
	}
	wg.Wait()

	select {
	case <-done:
	default:
		t.Fatal("Release action did not run after all holders released")
	}
	if c.Refs() != 0 {
		t.Fatalf("Expected 0 refs, got %d", c.Refs())
	}
}
