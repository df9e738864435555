package app

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"bonemap/internal/apply"
	"bonemap/internal/autofill"
	"bonemap/internal/mapping"
	"bonemap/internal/match"
)

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func printList(w io.Writer, pair mapping.ArmaturePair, store *mapping.Store) {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	gray := color.New(color.FgHiBlack)

	if pair.Empty() {
		_, _ = gray.Fprintln(w, "No armatures selected")
		return
	}

	_, _ = cyan.Fprintf(w, "%s -> %s\n", orUnset(pair.ParentID), orUnset(pair.TargetID))

	if store.Len() == 0 {
		_, _ = gray.Fprintln(w, "  (no bones)")
		return
	}

	i := 0
	for e := range store.Entries() {
		marker := " "
		if i == store.SelectedIndex {
			marker = ">"
		}

		_, _ = fmt.Fprintf(w, "%s %-24s ", marker, e.ParentBone)

		if e.Resolved() {
			_, _ = green.Fprintf(w, "%-24s ", e.TargetBone)
		} else {
			_, _ = gray.Fprintf(w, "%-24s ", "(unset)")
		}

		_, _ = yellow.Fprintln(w, e.Kind.Token())
		i++
	}
}

func orUnset(id string) string {
	if id == "" {
		return "(unset)"
	}

	return id
}

func printAutoFill(w io.Writer, report *autofill.Report) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	for _, r := range report.Results {
		if r.Outcome != autofill.OutcomeFilled {
			continue
		}

		_, _ = fmt.Fprintf(w, "  %s -> ", r.ParentBone)
		_, _ = green.Fprintf(w, "%s", r.TargetBone)
		_, _ = fmt.Fprintf(w, " (distance %d)\n", r.Distance)
	}

	for _, d := range report.Diagnostics.Warnings {
		_, _ = yellow.Fprintf(w, "  ! %s: %s\n", d.Bone, d.Message)
	}

	_, _ = fmt.Fprintf(w, "Filled %d, kept %d\n",
		report.Count(autofill.OutcomeFilled), report.Count(autofill.OutcomeKept))
}

func printSuggestions(w io.Writer, bone string, candidates match.CandidateList) {
	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)

	_, _ = cyan.Fprintf(w, "%s\n", bone)

	if len(candidates) == 0 {
		_, _ = gray.Fprintln(w, "  (no candidates)")
		return
	}

	for _, c := range candidates {
		_, _ = fmt.Fprintf(w, "  %-24s distance %d  similarity %.2f\n", c.Name, c.Distance, c.Similarity)
	}
}

func printApply(w io.Writer, report *apply.Report) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	for _, o := range report.Outcomes {
		switch o.Status {
		case apply.StatusSkipped:
			_, _ = yellow.Fprintf(w, "  skipped %s: %s\n", o.ParentBone, o.Reason)
		case apply.StatusFailed:
			_, _ = red.Fprintf(w, "  failed %s: %s\n", o.ParentBone, o.Reason)
		case apply.StatusApplied:
			// counted in the summary line
		}
	}

	_, _ = fmt.Fprintf(w, "Applied %d constraints, skipped %d, failed %d\n",
		report.Count(apply.StatusApplied), report.Count(apply.StatusSkipped), report.Count(apply.StatusFailed))
}
