package observe

import (
	"sync"

	"github.com/joeycumines/go-anneal/kv"
)

type registration[S State] struct {
	observer Observer[S]
	mode     ObserverMode
	mu       *sync.Mutex
}

// Observers is an ordered collection of registered observers. It dispatches
// ObserveInit/ObserveIter to each registration in the order they were
// pushed, in the manner of logiface's WriterSlice/ModifierSlice: it stops
// and returns the first error any observer produces, without calling the
// remaining registrations.
//
// Observers itself satisfies Observer[S], so a pipeline can be nested
// inside another, or passed anywhere a single observer is expected.
//
// Each registration is guarded by its own mutex, held for the duration of
// every call into its observer. The mutex belongs to the registration, not
// to the observer: an observer pushed onto more than one Observers (or
// pushed twice) is guarded by a separate mutex in each registration, so
// those calls are not serialized against each other.
type Observers[S State] struct {
	regs []registration[S]
}

// New constructs an empty observer pipeline.
func New[S State]() *Observers[S] {
	return &Observers[S]{}
}

// Push registers observer to be called according to mode, after any
// previously pushed registrations. It returns the pipeline, for chaining.
func (o *Observers[S]) Push(observer Observer[S], mode ObserverMode) *Observers[S] {
	o.regs = append(o.regs, registration[S]{observer: observer, mode: mode, mu: new(sync.Mutex)})
	return o
}

// IsEmpty reports whether no observers have been registered.
func (o *Observers[S]) IsEmpty() bool { return len(o.regs) == 0 }

// ObserveInit calls ObserveInit on every registered observer, in order,
// regardless of its ObserverMode (mode only gates ObserveIter).
func (o *Observers[S]) ObserveInit(name string, fields *kv.Map) error {
	for _, r := range o.regs {
		r.mu.Lock()
		err := r.observer.ObserveInit(name, fields)
		r.mu.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

// ObserveIter calls ObserveIter on every registered observer whose mode
// selects state's iteration, in order, stopping at the first error.
func (o *Observers[S]) ObserveIter(state S, fields *kv.Map) error {
	for _, r := range o.regs {
		if !r.mode.fires(state) {
			continue
		}
		r.mu.Lock()
		err := r.observer.ObserveIter(state, fields)
		r.mu.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}
