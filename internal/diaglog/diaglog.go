package diaglog

import (
	"github.com/rs/zerolog"

	"github.com/joeycumines/go-anneal/kv"
)

// Logger wraps a zerolog.Logger with the handful of solver lifecycle events
// this module needs, so call sites in package anneal don't spell out field
// names and levels inline. The zero value logs nothing.
type Logger struct {
	log zerolog.Logger
}

// New wraps l.
func New(l zerolog.Logger) Logger { return Logger{log: l} }

// Reanneal logs that a reanneal trigger fired. kind names which trigger(s)
// fired (e.g. "fixed", "accepted,best"); fields is the iteration's
// diagnostic KV, logged alongside for context.
func (l Logger) Reanneal(kind string, fields *kv.Map) {
	event := l.log.Debug().Str("kind", kind)
	fields.Range(func(key string, val kv.Value) bool {
		event = event.Interface(key, val.Any())
		return true
	})
	event.Msg("reanneal triggered")
}

// Terminated logs the reason a run stopped.
func (l Logger) Terminated(reason string, iter uint64) {
	l.log.Info().
		Str("reason", reason).
		Uint64("iter", iter).
		Msg("solver terminated")
}

// InvalidParameter logs a construction/configuration rejection.
func (l Logger) InvalidParameter(msg string) {
	l.log.Warn().Msg(msg)
}
