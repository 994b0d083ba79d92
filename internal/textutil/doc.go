// Package textutil provides text canonicalization for episode matching and
// filename handling.
//
// Two distinct normalizers are exported and must not be conflated:
//   - NormalizeKey produces a comparison-safe form of filename-key text. It
//     unifies Unicode punctuation variants (dashes, apostrophes, special
//     spaces), strips invisible format characters, collapses whitespace, and
//     applies full case folding. Exact equality on NormalizeKey output is
//     the basis for presence checks.
//   - NormalizeTitle produces a stricter matching-oriented form for fuzzy
//     title comparison: accents and all punctuation are removed entirely,
//     leaving only lowercase letters, digits, and single spaces.
//
// The package also provides filename sanitization and the Ratcliff/Obershelp
// sequence similarity used as the fuzzy matcher's fallback score.
package textutil
