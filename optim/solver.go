package optim

import "github.com/joeycumines/go-anneal/kv"

// Solver is the contract a driver (out of scope for this module) uses to
// run an algorithm to completion: build an initial state, advance it one
// iteration at a time, and ask whether to stop. O is the user-supplied
// objective type, wrapped in a Problem; S is the concrete state type a
// solver produces and consumes, typically *IterState[P, F].
//
// Each of Init and NextIter returns, alongside the new state, a kv.Map of
// diagnostic fields describing that step, to be pushed through an observer
// pipeline by the driver.
type Solver[O any, S any] interface {
	Name() string
	Init(problem *Problem[O], state S) (S, *kv.Map, error)
	NextIter(problem *Problem[O], state S) (S, *kv.Map, error)
	Terminate(state S) TerminationReason
}
