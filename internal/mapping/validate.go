package mapping

import (
	"fmt"

	"bonemap/internal/diagnostic"
	"bonemap/internal/match"
)

// maxSuggestions caps how many alternative bones a diagnostic lists.
const maxSuggestions = 3

// Validate checks a store against the bones of the target armature.
// This is an advisory step only; entries are never modified.
// Unknown targets are warnings with the closest existing bones as suggestions.
func Validate(s *Store, targetBones []string, pair string) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("store_is_nil", "mapping store is nil", pair, "")
		return res
	}

	known := make(map[string]struct{}, len(targetBones))
	for _, b := range targetBones {
		known[b] = struct{}{}
	}

	unresolved := 0

	for e := range s.Entries() {
		if !e.Kind.IsValid() {
			res.AddError("invalid_kind", fmt.Sprintf("invalid constraint kind %s", e.Kind), pair, e.ParentBone)
		}

		if !e.Resolved() {
			unresolved++
			continue
		}

		if _, ok := known[e.TargetBone]; ok {
			continue
		}

		var suggestions []string
		for _, c := range match.RankCandidates(e.TargetBone, targetBones).Top(maxSuggestions) {
			suggestions = append(suggestions, c.Name)
		}

		res.AddWarning("target_not_found",
			fmt.Sprintf("target bone %q does not exist in the target armature", e.TargetBone),
			pair, e.ParentBone, suggestions...)
	}

	if unresolved > 0 {
		res.AddInfo("unresolved", fmt.Sprintf("%d of %d entries have no target bone", unresolved, s.Len()), pair, "")
	}

	return res
}
