// Package observe implements the observer pipeline a solver pushes
// per-iteration diagnostics through: the Observer capability itself, the
// gating ObserverMode a registration is attached with, and the Observers
// pipeline that dispatches to each registered observer in insertion order,
// stopping at the first error.
package observe
