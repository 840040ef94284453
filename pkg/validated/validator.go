package validated

import "context"

// Validator checks a candidate value. It runs on its own goroutine and must
// eventually return. A rejected value is reported as an Invalid Result; the
// error return is reserved for failures of the validator itself.
//
// Validators may be invoked concurrently with no ordering between calls.
type Validator func(ctx context.Context, candidate string) (Result, error)

// Liveness reports whether the component owning a wrapper is still mounted.
// Once Alive returns false it must keep returning false.
type Liveness interface {
	Alive() bool
}

// LivenessFunc adapts a predicate to Liveness.
type LivenessFunc func() bool

// Alive implements Liveness.
func (f LivenessFunc) Alive() bool {
	if f == nil {
		return true
	}
	return f()
}
