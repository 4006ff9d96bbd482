package observe

import "github.com/joeycumines/go-anneal/kv"

// State is the minimal capability Observers needs from a solver's state to
// decide whether a given registration should fire this iteration.
type State interface {
	GetIter() uint64
	IsBest() bool
}

// Observer is implemented by anything that wants to watch a solver run. Both
// methods default to doing nothing when embedding UnimplementedObserver, so
// an observer that only cares about, say, per-iteration output need not
// implement ObserveInit at all.
type Observer[S State] interface {
	// ObserveInit is called once, after a solver's Init step, with the
	// solver's name and its initial diagnostic fields.
	ObserveInit(name string, fields *kv.Map) error
	// ObserveIter is called after each iteration that this observer's mode
	// selects, with the resulting state and that iteration's diagnostic
	// fields.
	ObserveIter(state S, fields *kv.Map) error
}

// UnimplementedObserver provides no-op implementations of both Observer
// methods, to be embedded by observers that only need to override one of
// them.
type UnimplementedObserver[S State] struct{}

func (UnimplementedObserver[S]) ObserveInit(string, *kv.Map) error { return nil }

func (UnimplementedObserver[S]) ObserveIter(S, *kv.Map) error { return nil }
