package match

import (
	"slices"
)

// Candidate represents a potential mapping from a parent bone to a target bone.
type Candidate struct {
	// Name is the target bone name as given in the candidate list.
	Name string
	// Index is the position of the candidate in the original list.
	Index int

	// Scoring components
	Distance   int     // Levenshtein distance on normalized names
	Similarity float64 // Normalized similarity (0-1)

	// Metadata for debugging/explanation
	NormalizedQuery string
	NormalizedName  string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// BestMatch returns the candidate with the smallest Distance to query.
// Candidates are visited in order and the running best is only replaced on a
// strictly smaller distance, so on a tie the first candidate wins.
// Returns "" when candidates is empty.
func BestMatch(query string, candidates []string) string {
	best := ""
	bestScore := -1

	normQuery := Normalize(query)

	for _, candidate := range candidates {
		score := Levenshtein(normQuery, Normalize(candidate))
		if bestScore < 0 || score < bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best
}

// RankCandidates ranks every candidate bone against query.
// Returns candidates sorted by distance (ascending). Equal distances keep the
// candidate list order, so the first element always agrees with BestMatch.
func RankCandidates(query string, candidates []string) CandidateList {
	ranked := make(CandidateList, 0, len(candidates))

	normQuery := Normalize(query)

	for i, name := range candidates {
		normName := Normalize(name)

		ranked = append(ranked, Candidate{
			Name:            name,
			Index:           i,
			Distance:        Levenshtein(normQuery, normName),
			Similarity:      Similarity(query, name),
			NormalizedQuery: normQuery,
			NormalizedName:  normName,
		})
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return a.Distance - b.Distance
	})

	return ranked
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// Ties returns the candidates that share the best distance, excluding the best one.
func (c CandidateList) Ties() CandidateList {
	if len(c) < 2 {
		return nil
	}

	var result CandidateList

	for _, cand := range c[1:] {
		if cand.Distance != c[0].Distance {
			break
		}

		result = append(result, cand)
	}

	return result
}

// IsAmbiguous returns true if another candidate has the same distance as the best one.
func (c CandidateList) IsAmbiguous() bool {
	return len(c.Ties()) > 0
}

// WithinDistance returns candidates whose distance is at most maxDistance.
func (c CandidateList) WithinDistance(maxDistance int) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Distance <= maxDistance {
			result = append(result, cand)
		}
	}

	return result
}
