// Package anneal implements Simulated Annealing, a Solver (see package
// optim) that accepts worsening moves with a probability controlled by a
// cooling temperature, escaping local minima that strictly-improving
// solvers get stuck in. It supports three temperature schedules and three
// independent reannealing triggers (fixed iteration count, iterations
// since the last accepted move, iterations since the last new best), each
// of which resets the temperature to its initial value.
package anneal
