package anneal

import "github.com/joeycumines/go-anneal/optim"

// Anneal is the move-generation capability Simulated Annealing needs from a
// user-supplied objective, separate from optim.CostFunction: given a
// current parameter and the current temperature ("extent" of the move),
// produce a neighboring candidate parameter.
type Anneal[P any, F optim.Float] interface {
	Anneal(param P, extent F) (P, error)
}

// Problem is the combined capability a Simulated Annealing objective must
// implement: it must be able to both generate neighboring candidates and
// score them.
type Problem[P any, F optim.Float] interface {
	optim.CostFunction[P, F]
	Anneal[P, F]
}

// evalCost scores param, via problem's counted Cost operation.
func evalCost[P any, F optim.Float, O Problem[P, F]](problem *optim.Problem[O], param P) (F, error) {
	return optim.Invoke(problem, "cost_count", func(o O) (F, error) { return o.Cost(param) })
}

// evalAnneal generates a neighbor of param at the given temperature, via
// problem's counted Anneal operation.
func evalAnneal[P any, F optim.Float, O Problem[P, F]](problem *optim.Problem[O], param P, extent F) (P, error) {
	return optim.Invoke(problem, "anneal_count", func(o O) (P, error) { return o.Anneal(param, extent) })
}
