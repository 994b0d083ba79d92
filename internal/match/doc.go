// Package match resolves noisy, human-authored titles to canonical catalog
// episodes.
//
// Matching is two-tiered. After normalization and series-prefix stripping,
// a whole-token containment test runs first: if the query appears as a
// space-bounded token run inside a candidate title, that candidate wins
// immediately with confidence 1.0. Containment is a near-zero-false-positive
// signal once punctuation and casing noise are removed, so it always
// dominates. Only when no candidate contains the query does the matcher fall
// back to a Ratcliff/Obershelp similarity ratio, keeping the strictly best
// score seen. A confidence of exactly 1.0 therefore only ever comes from
// containment.
//
// Acceptance thresholds are deliberately not applied here; callers decide
// what confidence is good enough for their purpose.
package match
