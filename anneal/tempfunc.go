package anneal

import "github.com/joeycumines/go-anneal/optim"

type tempFuncKind uint8

const (
	tempFast tempFuncKind = iota
	tempBoltzmann
	tempExponential
)

// SATempFunc selects how the temperature is recomputed after each
// iteration (and immediately after a reanneal resets it). Construct one
// with TemperatureFast, Boltzmann, or Exponential.
type SATempFunc[F optim.Float] struct {
	kind tempFuncKind
	x    F
}

// TemperatureFast schedules temperature as initTemp / k, where k is the
// number of iterations since the last reanneal, plus one. This is the
// default schedule.
func TemperatureFast[F optim.Float]() SATempFunc[F] {
	return SATempFunc[F]{kind: tempFast}
}

// Boltzmann schedules temperature as initTemp / ln(k), where k is
// updateTemperature's schedule counter: it starts at 2 (one iteration past
// construction or a reanneal reset) and only increases, so ln(k) never
// divides by ln(1) == 0 in ordinary operation. This module still doesn't
// guard the division, since clamping it would hide rather than surface any
// configuration that somehow drove k back to 1.
func Boltzmann[F optim.Float]() SATempFunc[F] {
	return SATempFunc[F]{kind: tempBoltzmann}
}

// Exponential schedules temperature as initTemp * x^k. x is typically in
// (0, 1) to produce a decaying schedule.
func Exponential[F optim.Float](x F) SATempFunc[F] {
	return SATempFunc[F]{kind: tempExponential, x: x}
}
