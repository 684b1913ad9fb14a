// Package sentinel provides the atomic reference counter backing owner
// handles and loans.
//
// A Counter starts at one and runs its release action exactly once when
// the count reaches zero. The count is the only shared state; panics
// enforce the acquire/release discipline (no acquire after zero, no
// release below zero), matching native pointer misuse semantics.
//
// This package is internal to decay.
package sentinel
