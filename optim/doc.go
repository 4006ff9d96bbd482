// Package optim defines the generic solver-driver contract shared by every
// solver in this module: the IterState a solver mutates each
// iteration, the Problem wrapper that counts evaluations of a user-supplied
// objective, and the Solver capability a driver (out of scope for this
// module) calls to run a solver to completion.
//
// Nothing in this package is specific to any one algorithm; see package
// anneal for the Simulated Annealing solver built on top of it.
package optim
