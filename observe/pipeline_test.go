package observe_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-anneal/kv"
	"github.com/joeycumines/go-anneal/observe"
)

// fakeState is the smallest possible observe.State, used to drive the
// pipeline directly without a real solver.
type fakeState struct {
	iter   uint64
	isBest bool
}

func (s fakeState) GetIter() uint64 { return s.iter }
func (s fakeState) IsBest() bool    { return s.isBest }

type countingObserver struct {
	observe.UnimplementedObserver[fakeState]
	calls int
	err   error
}

func (c *countingObserver) ObserveIter(fakeState, *kv.Map) error {
	c.calls++
	return c.err
}

func TestObservers_modeGating(t *testing.T) {
	never := &countingObserver{}
	always := &countingObserver{}
	every3, err := observe.NewEvery(3)
	require.NoError(t, err)
	everyObs := &countingObserver{}
	newBest := &countingObserver{}

	pipeline := observe.New[fakeState]().
		Push(never, observe.Never).
		Push(always, observe.Always).
		Push(everyObs, every3).
		Push(newBest, observe.NewBest)

	states := []fakeState{
		{iter: 0, isBest: true},
		{iter: 1, isBest: false},
		{iter: 3, isBest: false},
		{iter: 4, isBest: true},
	}

	want := [][4]int{
		{0, 1, 1, 1},
		{0, 2, 1, 1},
		{0, 3, 2, 1},
		{0, 4, 2, 2},
	}

	for i, s := range states {
		require.NoError(t, pipeline.ObserveIter(s, nil))
		got := [4]int{never.calls, always.calls, everyObs.calls, newBest.calls}
		assert.Equal(t, want[i], got, "after state %d (%+v)", i, s)
	}
}

func TestObservers_zeroValueModeIsAlways(t *testing.T) {
	obs := &countingObserver{}
	pipeline := observe.New[fakeState]().Push(obs, observe.ObserverMode{})

	require.NoError(t, pipeline.ObserveIter(fakeState{iter: 1}, nil))
	require.NoError(t, pipeline.ObserveIter(fakeState{iter: 2}, nil))
	assert.Equal(t, 2, obs.calls)
}

func TestObservers_stopsAtFirstError(t *testing.T) {
	wantErr := errors.New("boom")
	first := &countingObserver{err: wantErr}
	second := &countingObserver{}

	pipeline := observe.New[fakeState]().
		Push(first, observe.Always).
		Push(second, observe.Always)

	err := pipeline.ObserveIter(fakeState{iter: 0, isBest: true}, nil)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "later observers must not run after an earlier one errors")
}

func TestObservers_insertionOrderDispatch(t *testing.T) {
	var order []string
	makeObs := func(name string) *observerFunc {
		return &observerFunc{
			fn: func() error {
				order = append(order, name)
				return nil
			},
		}
	}

	pipeline := observe.New[fakeState]().
		Push(makeObs("a"), observe.Always).
		Push(makeObs("b"), observe.Always).
		Push(makeObs("c"), observe.Always)

	require.NoError(t, pipeline.ObserveIter(fakeState{iter: 0, isBest: true}, nil))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

type observerFunc struct {
	observe.UnimplementedObserver[fakeState]
	fn func() error
}

func (o *observerFunc) ObserveIter(fakeState, *kv.Map) error { return o.fn() }

func TestObservers_isEmpty(t *testing.T) {
	pipeline := observe.New[fakeState]()
	assert.True(t, pipeline.IsEmpty())
	pipeline.Push(&countingObserver{}, observe.Always)
	assert.False(t, pipeline.IsEmpty())
}

func TestObservers_observeInitIgnoresMode(t *testing.T) {
	obs := &countingInitObserver{}
	pipeline := observe.New[fakeState]().Push(obs, observe.Never)

	require.NoError(t, pipeline.ObserveInit("solver", nil))
	assert.Equal(t, 1, obs.calls)
}

type countingInitObserver struct {
	observe.UnimplementedObserver[fakeState]
	calls int
}

func (c *countingInitObserver) ObserveInit(string, *kv.Map) error {
	c.calls++
	return nil
}

func TestNewEvery_rejectsZero(t *testing.T) {
	_, err := observe.NewEvery(0)
	assert.Error(t, err)
}

func TestMustEvery_panicsOnZero(t *testing.T) {
	assert.Panics(t, func() {
		observe.MustEvery(0)
	})
}
