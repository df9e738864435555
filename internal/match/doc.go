// Package match provides bone name normalization, Levenshtein distance
// calculation and candidate ranking for bone matching.
//
// Key functions:
//   - Normalize: canonicalizes a bone name into a comparable key
//   - Levenshtein: computes edit distance between strings
//   - Distance: edit distance between two normalized bone names
//   - BestMatch: picks the closest candidate, first-seen wins ties
//   - RankCandidates: ranks all candidates for a bone
package match
