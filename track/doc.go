// Package track builds diagnostics on top of decay lifecycle events.
//
// Three observers are provided:
//
//   - LogObserver writes structured zap logs for every event.
//   - Gauge keeps a live count of outstanding loans.
//   - Checker records the call site of every mint and reports loans that
//     were never released.
//
// Attach them to an owner before minting:
//
//	owner := decay.Make(conn)
//	checker := track.NewChecker()
//	owner.Subscribe(checker)
//	...
//	for _, leak := range checker.Leaks() {
//	    log.Warn("loan never released", zap.Uint64("seq", leak.Seq))
//	}
package track
