package anneal

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/joeycumines/go-anneal/internal/diaglog"
	"github.com/joeycumines/go-anneal/kv"
	"github.com/joeycumines/go-anneal/optim"
)

// Source is the uniform random source Simulated Annealing consumes exactly
// once per iteration, to keep runs reproducible given a seeded source.
// *math/rand.Rand satisfies this directly.
type Source interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
}

const unlimited = math.MaxUint64

// SimulatedAnnealing is a Solver (see optim.Solver) implementing Simulated
// Annealing: on each iteration it generates one candidate neighbor of the
// current parameter, scores it, and accepts it either because it's better
// or with a temperature-dependent probability if it's worse. P is the
// parameter type, F the numeric precision, and O the objective type,
// constrained to implement Problem[P, F].
type SimulatedAnnealing[P any, F optim.Float, O Problem[P, F]] struct {
	initTemp F
	curTemp  F
	tempFunc SATempFunc[F]
	tempIter uint64

	stallIterAccepted      uint64
	stallIterAcceptedLimit uint64
	stallIterBest          uint64
	stallIterBestLimit     uint64

	reannealFixed     uint64
	reannealIterFixed uint64

	reannealAccepted     uint64
	reannealIterAccepted uint64

	reannealBest     uint64
	reannealIterBest uint64

	rng Source
	log diaglog.Logger
}

// New constructs a Simulated Annealing solver with the given initial
// temperature and random source. initTemp must be strictly positive; rng
// must not be nil. All stall limits and reanneal triggers default to
// math.MaxUint64, so in practice Terminate never reports a stall and no
// reanneal fires, and the temperature schedule defaults to TemperatureFast.
func New[P any, F optim.Float, O Problem[P, F]](initTemp F, rng Source) (*SimulatedAnnealing[P, F, O], error) {
	if rng == nil {
		panic("anneal: New called with nil Source")
	}
	if !(initTemp > 0) {
		return nil, fmt.Errorf("anneal: %w: initial temperature %v must be > 0", optim.ErrInvalidParameter, initTemp)
	}
	return &SimulatedAnnealing[P, F, O]{
		initTemp:               initTemp,
		curTemp:                initTemp,
		tempFunc:               TemperatureFast[F](), // upstream argmin defaults to Boltzmann; spec mandates TemperatureFast
		stallIterAcceptedLimit: unlimited,
		stallIterBestLimit:     unlimited,
		reannealFixed:          unlimited,
		reannealAccepted:       unlimited,
		reannealBest:           unlimited,
		rng:                    rng,
		log:                    diaglog.New(zerolog.Nop()),
	}, nil
}

// TempFunc sets the temperature schedule. Default: TemperatureFast.
func (sa *SimulatedAnnealing[P, F, O]) TempFunc(f SATempFunc[F]) *SimulatedAnnealing[P, F, O] {
	sa.tempFunc = f
	return sa
}

// StallAccepted sets the limit on consecutive non-accepted iterations:
// Terminate reports AcceptedStallIterExceeded once more than n have passed.
// Default: unlimited.
func (sa *SimulatedAnnealing[P, F, O]) StallAccepted(n uint64) *SimulatedAnnealing[P, F, O] {
	sa.stallIterAcceptedLimit = n
	return sa
}

// StallBest sets the limit on consecutive iterations without a new best:
// Terminate reports BestStallIterExceeded once more than n have passed.
// Default: unlimited.
func (sa *SimulatedAnnealing[P, F, O]) StallBest(n uint64) *SimulatedAnnealing[P, F, O] {
	sa.stallIterBestLimit = n
	return sa
}

// ReannealingFixed sets the fixed iteration count after which a reanneal
// is triggered unconditionally. Default: unlimited.
func (sa *SimulatedAnnealing[P, F, O]) ReannealingFixed(n uint64) *SimulatedAnnealing[P, F, O] {
	sa.reannealFixed = n
	return sa
}

// ReannealingAccepted sets the number of iterations since the last accepted
// move after which a reanneal is triggered. Default: unlimited.
func (sa *SimulatedAnnealing[P, F, O]) ReannealingAccepted(n uint64) *SimulatedAnnealing[P, F, O] {
	sa.reannealAccepted = n
	return sa
}

// ReannealingBest sets the number of iterations since the last new best
// after which a reanneal is triggered. Default: unlimited.
func (sa *SimulatedAnnealing[P, F, O]) ReannealingBest(n uint64) *SimulatedAnnealing[P, F, O] {
	sa.reannealBest = n
	return sa
}

// Logger attaches a zerolog.Logger for solver lifecycle diagnostics
// (reanneal triggers, termination). Default: disabled.
func (sa *SimulatedAnnealing[P, F, O]) Logger(l zerolog.Logger) *SimulatedAnnealing[P, F, O] {
	sa.log = diaglog.New(l)
	return sa
}

// Name implements optim.Solver.
func (sa *SimulatedAnnealing[P, F, O]) Name() string { return "Simulated Annealing" }

// Init implements optim.Solver: it evaluates the objective's cost at the
// state's initial parameter, and reports the solver's configuration as
// diagnostic fields.
func (sa *SimulatedAnnealing[P, F, O]) Init(problem *optim.Problem[O], state *optim.IterState[P, F]) (*optim.IterState[P, F], *kv.Map, error) {
	param, ok := state.TakeParam()
	if !ok {
		return nil, nil, fmt.Errorf("anneal: %w: initial state has no parameter", optim.ErrInvalidParameter)
	}

	cost, err := evalCost[P, F, O](problem, param)
	if err != nil {
		return nil, nil, err
	}

	out := state.Param(param).Cost(cost)

	fields := kv.New(6).
		Set("initial_temperature", float64(sa.initTemp)).
		Set("stall_iter_accepted_limit", sa.stallIterAcceptedLimit).
		Set("stall_iter_best_limit", sa.stallIterBestLimit).
		Set("reanneal_fixed", sa.reannealFixed).
		Set("reanneal_accepted", sa.reannealAccepted).
		Set("reanneal_best", sa.reannealBest)

	return out, fields, nil
}

// NextIter implements optim.Solver. The order of operations below is load-
// bearing: the random draw happens unconditionally, before the acceptance
// test, so runs stay reproducible regardless of which branch of the
// acceptance rule is taken; "is this a new best" is computed against the
// candidate's own cost, before stall/reanneal bookkeeping or the
// temperature update run.
func (sa *SimulatedAnnealing[P, F, O]) NextIter(problem *optim.Problem[O], state *optim.IterState[P, F]) (*optim.IterState[P, F], *kv.Map, error) {
	prevParam, ok := state.TakeParam()
	if !ok {
		return nil, nil, fmt.Errorf("anneal: %w: state has no parameter", optim.ErrInvalidParameter)
	}
	prevCost := state.GetCost()

	newParam, err := evalAnneal[P, F, O](problem, prevParam, sa.curTemp)
	if err != nil {
		return nil, nil, err
	}

	newCost, err := evalCost[P, F, O](problem, newParam)
	if err != nil {
		return nil, nil, err
	}

	u := sa.rng.Float64()
	accepted := newCost < prevCost || sa.acceptanceProbability(newCost, prevCost) > F(u)

	newBestFound := newCost < state.BestCost()

	sa.updateStallAndReannealIter(accepted, newBestFound)
	rFixed, rAccepted, rBest := sa.reanneal()

	sa.tempIter++
	sa.reannealIterFixed++
	sa.updateTemperature()

	var out *optim.IterState[P, F]
	if accepted {
		out = state.Param(newParam).Cost(newCost)
	} else {
		out = state.Param(prevParam).Cost(prevCost)
	}

	fields := kv.New(11).
		Set("t", float64(sa.curTemp)).
		Set("new_be", newBestFound).
		Set("acc", accepted).
		Set("st_i_be", sa.stallIterBest).
		Set("st_i_ac", sa.stallIterAccepted).
		Set("ra_i_fi", sa.reannealIterFixed).
		Set("ra_i_be", sa.reannealIterBest).
		Set("ra_i_ac", sa.reannealIterAccepted).
		Set("ra_fi", rFixed).
		Set("ra_be", rBest).
		Set("ra_ac", rAccepted)

	if rFixed || rAccepted || rBest {
		sa.log.Reanneal(reannealKind(rFixed, rAccepted, rBest), fields)
	}

	return out, fields, nil
}

func reannealKind(fixed, accepted, best bool) string {
	var kind string
	for _, p := range [...]struct {
		fire bool
		name string
	}{{fixed, "fixed"}, {accepted, "accepted"}, {best, "best"}} {
		if !p.fire {
			continue
		}
		if kind != "" {
			kind += ","
		}
		kind += p.name
	}
	return kind
}

// Terminate implements optim.Solver. Accepted-stall is checked before
// best-stall, so if both limits are exceeded simultaneously,
// AcceptedStallIterExceeded takes precedence.
func (sa *SimulatedAnnealing[P, F, O]) Terminate(state *optim.IterState[P, F]) optim.TerminationReason {
	reason := optim.NotTerminated
	switch {
	case sa.stallIterAccepted > sa.stallIterAcceptedLimit:
		reason = optim.AcceptedStallIterExceeded
	case sa.stallIterBest > sa.stallIterBestLimit:
		reason = optim.BestStallIterExceeded
	}
	if reason != optim.NotTerminated {
		sa.log.Terminated(reason.String(), state.GetIter())
	}
	return reason
}

// acceptanceProbability implements the Metropolis criterion (Kirkpatrick,
// Gelatt & Vecchi, 1983, Science 220(4598):671-680).
func (sa *SimulatedAnnealing[P, F, O]) acceptanceProbability(newCost, prevCost F) F {
	delta := float64(newCost - prevCost)
	return F(1 / (1 + math.Exp(delta/float64(sa.curTemp))))
}

func (sa *SimulatedAnnealing[P, F, O]) updateStallAndReannealIter(accepted, newBest bool) {
	if accepted {
		sa.stallIterAccepted = 0
		sa.reannealIterAccepted = 0
	} else {
		sa.stallIterAccepted++
		sa.reannealIterAccepted++
	}
	if newBest {
		sa.stallIterBest = 0
		sa.reannealIterBest = 0
	} else {
		sa.stallIterBest++
		sa.reannealIterBest++
	}
}

// reanneal checks all three reanneal triggers and, if any fired, resets the
// temperature (and all reanneal iteration counters) back to its initial
// value.
func (sa *SimulatedAnnealing[P, F, O]) reanneal() (fixed, accepted, best bool) {
	fixed = sa.reannealIterFixed >= sa.reannealFixed
	accepted = sa.reannealIterAccepted >= sa.reannealAccepted
	best = sa.reannealIterBest >= sa.reannealBest

	if fixed || accepted || best {
		sa.reannealIterFixed = 0
		sa.reannealIterAccepted = 0
		sa.reannealIterBest = 0
		sa.curTemp = sa.initTemp
		sa.tempIter = 0
	}
	return
}

// updateTemperature recomputes curTemp from the configured schedule. k is
// the post-increment tempIter plus one: the reference re-adds one on top of
// the driver's own increment, so the first call after construction (or
// after a reanneal reset), with tempIter just advanced from 0 to 1, uses
// k=2, and k only grows from there.
// Todo: reannealIterFixed and tempIter are incremented and reset together
// in lockstep; tempIter may not be necessary as a separate field.
func (sa *SimulatedAnnealing[P, F, O]) updateTemperature() {
	k := float64(sa.tempIter) + 1
	switch sa.tempFunc.kind {
	case tempFast:
		sa.curTemp = sa.initTemp / F(k)
	case tempBoltzmann:
		sa.curTemp = sa.initTemp / F(math.Log(k))
	case tempExponential:
		sa.curTemp = sa.initTemp * F(math.Pow(float64(sa.tempFunc.x), k))
	}
}
