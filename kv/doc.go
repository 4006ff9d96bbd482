// Package kv implements a small ordered map of scalar, boolean, and string
// values, used to carry diagnostic entries from a solver to its observers.
//
// Entries preserve insertion order, so repeated logging of a [Map] produces
// stable output. Overwriting an existing key updates its value in place,
// without moving it to the end.
package kv
