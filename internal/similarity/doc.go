// Package similarity scores approximate string matches on a 0-100 scale.
//
// The Scorer interface isolates the fuzzy algorithm from index and detection
// logic so it can be swapped per deployment. WeightedRatio is the default:
// it combines plain edit-distance similarity with partial-substring,
// token-sort, and token-set variants, which tolerates word reordering,
// partial phrasing, and minor edits. JaroWinkler is a lighter alternative
// that favors shared prefixes.
//
// Both sides of a comparison are expected to be pre-normalized (see
// internal/textnorm); the scorers do not fold case themselves.
package similarity
