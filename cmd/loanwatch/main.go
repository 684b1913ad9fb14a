package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/decay"
	"github.com/wippyai/decay/track"
)

func main() {
	var (
		workers     = flag.Int("workers", 8, "Concurrent workers holding loans")
		clones      = flag.Int("clones", 2, "Extra clones each worker takes")
		hold        = flag.Duration("hold", 250*time.Millisecond, "Max randomized hold time per loan")
		timeout     = flag.Duration("timeout", 10*time.Second, "Decay wait deadline")
		leak        = flag.Int("leak", 0, "Loans to mint and never release (leak demo)")
		verbose     = flag.Bool("v", false, "Debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*workers, *clones, *hold); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*workers, *clones, *hold, *timeout, *leak, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// payload stands in for whatever resource the loans guard.
type payload struct {
	id    int64
	freed bool
}

func run(workers, clones int, hold, timeout time.Duration, leak int, verbose bool) error {
	log := zap.NewNop()
	if verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer log.Sync()
		decay.SetLogger(log)
	}

	owner := decay.NewFunc(&payload{id: rand.Int63()}, func(p *payload) {
		p.freed = true
		log.Info("resource freed", zap.Int64("id", p.id))
	})

	gauge := track.NewGauge()
	checker := track.NewChecker()
	owner.Subscribe(gauge)
	owner.Subscribe(checker)
	owner.Subscribe(track.NewLogObserver(log))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		loan := owner.Loan()
		wg.Add(1)
		go func(l decay.Loan[payload]) {
			defer wg.Done()
			for j := 0; j < clones; j++ {
				c := l.Clone()
				go func() {
					time.Sleep(time.Duration(rand.Int63n(int64(hold))))
					c.Release()
				}()
			}
			time.Sleep(time.Duration(rand.Int63n(int64(hold))))
			l.Release()
		}(loan)
	}

	// Deliberately unreleased loans, to demo the leak checker.
	for i := 0; i < leak; i++ {
		_ = owner.Loan()
	}

	start := time.Now()
	d := owner.Decay()
	fmt.Printf("decaying: %d workers x %d clones, hold up to %v\n", workers, clones, hold)

	wg.Wait()
	if !d.WaitFor(timeout) {
		for _, l := range checker.Leaks() {
			fmt.Printf("outstanding %s\n", l)
		}
		return fmt.Errorf("decay did not complete within %v (%d loans outstanding)", timeout, gauge.Outstanding())
	}

	fmt.Printf("decayed in %v: %d loans minted, %d outstanding\n",
		time.Since(start).Round(time.Millisecond), gauge.Minted(), gauge.Outstanding())

	d.Reset()
	return nil
}
