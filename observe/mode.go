package observe

import (
	"fmt"

	"github.com/joeycumines/go-anneal/optim"
)

type modeKind uint8

const (
	// modeAlways is 0, so the zero value of ObserverMode behaves as Always.
	modeAlways modeKind = iota
	modeNever
	modeEvery
	modeNewBest
)

// ObserverMode gates whether a registered Observer's ObserveIter is called
// for a given iteration. The zero value is Always.
type ObserverMode struct {
	kind  modeKind
	every uint64
}

var (
	// Always fires every iteration. It is also the zero value.
	Always = ObserverMode{kind: modeAlways}
	// Never fires on no iteration (ObserveInit is unaffected).
	Never = ObserverMode{kind: modeNever}
	// NewBest fires only on iterations where the state reports IsBest().
	NewBest = ObserverMode{kind: modeNewBest}
)

// NewEvery constructs a mode that fires when the iteration number is a
// multiple of n. n must be non-zero; Every(0) has no sensible interpretation
// (it is neither "never", which has its own mode, nor any periodic
// schedule), so it is rejected here rather than silently treated as Never.
func NewEvery(n uint64) (ObserverMode, error) {
	if n == 0 {
		return ObserverMode{}, fmt.Errorf("observe: %w: Every(0) is invalid, use Never", optim.ErrInvalidParameter)
	}
	return ObserverMode{kind: modeEvery, every: n}, nil
}

// MustEvery is like NewEvery but panics instead of returning an error,
// for use in static, top-level observer registrations where n is a
// compile-time constant.
func MustEvery(n uint64) ObserverMode {
	m, err := NewEvery(n)
	if err != nil {
		panic(err)
	}
	return m
}

func (m ObserverMode) fires(state State) bool {
	switch m.kind {
	case modeAlways:
		return true
	case modeEvery:
		return state.GetIter()%m.every == 0
	case modeNewBest:
		return state.IsBest()
	default: // modeNever
		return false
	}
}
