package optim

import "math"

// IterState is the generic per-run state a Solver mutates each iteration: a
// candidate parameter (which a solver may take ownership of rather than
// copy), its cost, the best cost seen so far, and the iteration at which
// that best was found.
//
// All builder-style setters mutate the receiver and return it, to let a
// solver chain Param/Cost the way argmin chains state field setters. The
// iteration counter is advanced by the driver (out of scope for this
// module), never by the solver itself.
type IterState[P any, F Float] struct {
	param    P
	hasParam bool
	cost     F
	bestCost F
	iter     uint64
	lastBest uint64
}

// NewIterState constructs the initial state for a run, seeded with the
// starting parameter. bestCost starts at +Inf, so the first time a solver
// records a cost it unconditionally becomes the best.
func NewIterState[P any, F Float](initialParam P) *IterState[P, F] {
	return &IterState[P, F]{
		param:    initialParam,
		hasParam: true,
		bestCost: F(math.Inf(1)),
	}
}

// TakeParam removes and returns the current parameter, leaving the state
// without one. Solvers use this to move a parameter into a cost/anneal call
// without an extra copy; ok is false if no parameter is currently held
// (e.g. TakeParam was already called this iteration).
func (s *IterState[P, F]) TakeParam() (P, bool) {
	if !s.hasParam {
		var zero P
		return zero, false
	}
	p := s.param
	var zero P
	s.param = zero
	s.hasParam = false
	return p, true
}

// Param sets the current parameter, marking it held.
func (s *IterState[P, F]) Param(p P) *IterState[P, F] {
	s.param = p
	s.hasParam = true
	return s
}

// Cost sets the current iteration's cost.
func (s *IterState[P, F]) Cost(c F) *IterState[P, F] {
	s.cost = c
	return s
}

// GetCost returns the current iteration's cost.
func (s *IterState[P, F]) GetCost() F { return s.cost }

// BestCost returns the best cost recorded by any prior call to
// IncrementIter.
func (s *IterState[P, F]) BestCost() F { return s.bestCost }

// GetIter returns the current iteration number.
func (s *IterState[P, F]) GetIter() uint64 { return s.iter }

// IsBest reports whether the iteration currently recorded as the state's
// best is the one it is on right now. It is true for the initial state
// (iteration 0), since both counters start at zero.
func (s *IterState[P, F]) IsBest() bool { return s.iter == s.lastBest }

// IncrementIter advances the iteration counter and, if the state's current
// cost is better than the best recorded so far, records it as the new
// best. This is the one place best-cost bookkeeping happens. A solver's own
// "is this a new best" comparison runs against the same BestCost before this
// call; for anneal.SimulatedAnnealing that comparison uses the candidate's
// cost while this one uses the cost the solver kept, and the two agree
// because a rejected candidate is never cheaper than the kept cost.
func (s *IterState[P, F]) IncrementIter() *IterState[P, F] {
	s.iter++
	if s.cost < s.bestCost {
		s.bestCost = s.cost
		s.lastBest = s.iter
	}
	return s
}
