package optim_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-anneal/optim"
)

type constantCost struct {
	cost float64
	err  error
}

func (c constantCost) Cost(_ []float64) (float64, error) { return c.cost, c.err }

func TestProblem_invokeCountsPerName(t *testing.T) {
	p := optim.NewProblem[constantCost](constantCost{cost: 4.2})

	cost := func() (float64, error) {
		return optim.Invoke(p, "cost_count", func(o constantCost) (float64, error) {
			return o.Cost(nil)
		})
	}

	c, err := cost()
	require.NoError(t, err)
	assert.Equal(t, 4.2, c)

	_, _ = cost()
	_, _ = cost()

	assert.Equal(t, map[string]uint64{"cost_count": 3}, p.Counts())
}

func TestProblem_invokePropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	p := optim.NewProblem[constantCost](constantCost{err: wantErr})

	_, err := optim.Invoke(p, "cost_count", func(o constantCost) (float64, error) {
		return o.Cost(nil)
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, map[string]uint64{"cost_count": 1}, p.Counts())
}

func TestProblem_countsAreIndependentCopies(t *testing.T) {
	p := optim.NewProblem[constantCost](constantCost{cost: 1})
	_, _ = optim.Invoke(p, "cost_count", func(o constantCost) (float64, error) { return o.Cost(nil) })

	a := p.Counts()
	a["cost_count"] = 999

	b := p.Counts()
	assert.Equal(t, uint64(1), b["cost_count"])
}
