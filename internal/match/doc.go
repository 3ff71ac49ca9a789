// Package match provides key normalization, Levenshtein distance
// calculation, and closest-candidate lookup for configuration options.
//
// Key functions:
//   - NormalizeKey: normalizes option keys for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the best "did you mean" candidate for a misspelled key
package match
