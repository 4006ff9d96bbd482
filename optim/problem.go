package optim

// CostFunction is the minimal capability a solver needs from a user-supplied
// objective: the ability to score a candidate parameter.
type CostFunction[P any, F Float] interface {
	Cost(param P) (F, error)
}

// Problem wraps a user-supplied objective of type O, counting how many
// times each named operation on it is invoked. O is typically a small
// struct implementing one or more solver-specific capability interfaces
// (CostFunction, and for anneal.SimulatedAnnealing, anneal.Anneal).
//
// Problem itself does not know which operations O supports; Invoke is the
// generic building block solver packages use to define their own typed
// convenience wrappers (see anneal's evalCost/evalAnneal).
type Problem[O any] struct {
	inner  O
	counts map[string]uint64
}

// NewProblem wraps inner for counted evaluation.
func NewProblem[O any](inner O) *Problem[O] {
	return &Problem[O]{inner: inner, counts: make(map[string]uint64)}
}

// Inner returns the wrapped objective.
func (p *Problem[O]) Inner() O { return p.inner }

// Counts returns a copy of the per-operation evaluation counters.
func (p *Problem[O]) Counts() map[string]uint64 {
	out := make(map[string]uint64, len(p.counts))
	for k, v := range p.counts {
		out[k] = v
	}
	return out
}

// Invoke evaluates fn against p's wrapped objective, incrementing the named
// counter by one first. Solver packages use this to implement their own
// typed helpers, e.g. a `cost(problem, param)` free function that calls
// Invoke(problem, "cost_count", func(o O) (F, error) { return o.Cost(param) }).
func Invoke[O any, R any](p *Problem[O], counterName string, fn func(O) (R, error)) (R, error) {
	p.counts[counterName]++
	return fn(p.inner)
}
