package autofill

import (
	"fmt"

	"bonemap/internal/diagnostic"
	"bonemap/internal/mapping"
	"bonemap/internal/match"
)

// AutoFill assigns match.BestMatch(parent, targetBones) to every unresolved
// entry of store. Resolved entries are never overwritten. An empty
// targetBones leaves every entry unresolved.
func AutoFill(store *mapping.Store, targetBones []string) {
	if len(targetBones) == 0 {
		return
	}

	for e := range store.Unresolved() {
		e.TargetBone = match.BestMatch(e.ParentBone, targetBones)
	}
}

// Outcome tells what a resolver run did with one entry.
type Outcome int

const (
	// OutcomeFilled means the entry received a target bone.
	OutcomeFilled Outcome = iota
	// OutcomeKept means the entry was already resolved and left alone.
	OutcomeKept
	// OutcomeNoCandidates means matching was attempted but the target armature has no bones.
	OutcomeNoCandidates
	// OutcomeTooFar means the best candidate exceeded Config.MaxDistance.
	OutcomeTooFar
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeFilled:
		return "filled"
	case OutcomeKept:
		return "kept"
	case OutcomeNoCandidates:
		return "no_candidates"
	case OutcomeTooFar:
		return "too_far"
	default:
		return "unknown"
	}
}

// Config controls the resolver.
type Config struct {
	// MaxDistance rejects matches farther than this edit distance.
	// Zero means no limit, which is what AutoFill does.
	MaxDistance int
	// MaxSuggestions caps the tied candidates listed per diagnostic.
	MaxSuggestions int
}

// DefaultConfig returns the configuration equivalent to AutoFill.
func DefaultConfig() Config {
	return Config{MaxSuggestions: 3}
}

// Result describes what happened to one entry.
type Result struct {
	ParentBone string
	TargetBone string
	Outcome    Outcome
	// Distance is the edit distance of the chosen (or rejected) candidate.
	Distance int
	// Ties lists other candidates at the same distance, in candidate order.
	Ties []string
	// Explanation is a human-readable "why this mapped".
	Explanation string
}

// Report is the outcome of a resolver run.
type Report struct {
	Results     []Result
	Diagnostics diagnostic.Diagnostics
}

// Count returns how many results have the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0

	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}

	return n
}

// Resolver is AutoFill with bookkeeping: it records per-entry outcomes and
// reports ambiguous matches, where a later candidate tied the winner.
type Resolver struct {
	config Config
}

// NewResolver creates a resolver with the given configuration.
func NewResolver(config Config) *Resolver {
	return &Resolver{config: config}
}

// Run fills the unresolved entries of store from targetBones.
// With a zero MaxDistance the store ends up exactly as AutoFill leaves it.
func (r *Resolver) Run(store *mapping.Store, targetBones []string, pair string) *Report {
	report := &Report{}

	for e := range store.Entries() {
		if e.Resolved() {
			report.Results = append(report.Results, Result{
				ParentBone:  e.ParentBone,
				TargetBone:  e.TargetBone,
				Outcome:     OutcomeKept,
				Distance:    match.Distance(e.ParentBone, e.TargetBone),
				Explanation: "already mapped",
			})

			continue
		}

		report.Results = append(report.Results, r.resolveEntry(e, targetBones, pair, &report.Diagnostics))
	}

	return report
}

func (r *Resolver) resolveEntry(
	e *mapping.Entry,
	targetBones []string,
	pair string,
	diags *diagnostic.Diagnostics,
) Result {
	candidates := match.RankCandidates(e.ParentBone, targetBones)

	best := candidates.Best()
	if best == nil {
		diags.AddWarning("no_candidates", "target armature has no bones", pair, e.ParentBone)

		return Result{
			ParentBone:  e.ParentBone,
			Outcome:     OutcomeNoCandidates,
			Explanation: "no candidates",
		}
	}

	var ties []string
	for _, c := range candidates.Ties() {
		ties = append(ties, c.Name)
	}

	if r.config.MaxDistance > 0 && len(candidates.WithinDistance(r.config.MaxDistance)) == 0 {
		diags.AddWarning("too_far",
			fmt.Sprintf("closest bone %q is %d edits away (limit %d)", best.Name, best.Distance, r.config.MaxDistance),
			pair, e.ParentBone)

		return Result{
			ParentBone:  e.ParentBone,
			Outcome:     OutcomeTooFar,
			Distance:    best.Distance,
			Ties:        ties,
			Explanation: fmt.Sprintf("best match %q (distance %d) above limit", best.Name, best.Distance),
		}
	}

	e.TargetBone = best.Name

	if len(ties) > 0 {
		diags.AddWarning("ambiguous_match",
			fmt.Sprintf("picked %q, %d other bone(s) at distance %d", best.Name, len(ties), best.Distance),
			pair, e.ParentBone, suggestionList(ties, r.config.MaxSuggestions)...)
	}

	return Result{
		ParentBone: e.ParentBone,
		TargetBone: best.Name,
		Outcome:    OutcomeFilled,
		Distance:   best.Distance,
		Ties:       ties,
		Explanation: fmt.Sprintf("auto-matched: %s -> %s (distance: %d, similarity: %.2f)",
			e.ParentBone, best.Name, best.Distance, best.Similarity),
	}
}

func suggestionList(names []string, limit int) []string {
	if limit > 0 && len(names) > limit {
		return names[:limit]
	}

	return names
}
