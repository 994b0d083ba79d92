// Package dedupe selects one preferred broadcast per episode from a set of
// observed broadcasts. Selection is a pure function of the input set: the
// same observations always yield the same survivors, regardless of input
// order.
package dedupe
