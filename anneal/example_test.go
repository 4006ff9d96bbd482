package anneal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"

	"github.com/joeycumines/go-anneal/anneal"
	"github.com/joeycumines/go-anneal/optim"
)

// quadraticBowl is Problem[[]float64, float64]: cost is squared distance
// from the origin, and an anneal move perturbs each coordinate by a
// temperature-scaled random step. It's a minimal stand-in for a real
// objective, used only to exercise SimulatedAnnealing end to end.
type quadraticBowl struct {
	rng *rand.Rand
}

func (q *quadraticBowl) Cost(param []float64) (float64, error) {
	return floats.Dot(param, param), nil
}

func (q *quadraticBowl) Anneal(param []float64, extent float64) ([]float64, error) {
	next := make([]float64, len(param))
	copy(next, param)
	for i := range next {
		next[i] += extent * (q.rng.Float64()*2 - 1)
	}
	return next, nil
}

func TestSimulatedAnnealing_quadraticBowlConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	sa, err := anneal.New[[]float64, float64, *quadraticBowl](5, rng)
	require.NoError(t, err)
	sa.TempFunc(anneal.Exponential[float64](0.9))

	problem := optim.NewProblem[*quadraticBowl](&quadraticBowl{rng: rng})
	state := optim.NewIterState[[]float64, float64]([]float64{10, -10, 5})

	state, _, err = sa.Init(problem, state)
	require.NoError(t, err)
	startCost := state.GetCost()

	for i := 0; i < 500; i++ {
		state, _, err = sa.NextIter(problem, state)
		require.NoError(t, err)
		state = state.IncrementIter()
		if sa.Terminate(state) != optim.NotTerminated {
			break
		}
	}

	assert.Less(t, state.GetCost(), startCost)
	assert.Equal(t, uint64(500), problem.Counts()["anneal_count"])
	assert.Equal(t, uint64(501), problem.Counts()["cost_count"])
}
