package apply

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/zerr"

	"bonemap/internal/diagnostic"
	"bonemap/internal/host"
	"bonemap/internal/mapping"
)

// Logger is the logging the engine needs.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Status is what happened to one entry.
type Status int

const (
	// StatusApplied means the constraint was created.
	StatusApplied Status = iota
	// StatusSkipped means a bone did not resolve in the host.
	StatusSkipped
	// StatusFailed means the host refused to create the constraint.
	StatusFailed
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records the result for one resolved entry.
type Outcome struct {
	ParentBone string
	TargetBone string
	Kind       mapping.ConstraintKind
	Status     Status
	Reason     string
}

// Report is the result of an Apply call.
type Report struct {
	Outcomes    []Outcome
	Diagnostics diagnostic.Diagnostics
}

// Count returns how many outcomes have the given status.
func (r *Report) Count(s Status) int {
	n := 0

	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}

	return n
}

// Engine creates constraints through the host collaborators.
type Engine struct {
	resolver host.BoneResolver
	creator  host.ConstraintCreator
	modes    host.ModeSwitcher
	log      Logger
}

// NewEngine creates an engine. modes may be nil when the host needs no mode switch.
func NewEngine(resolver host.BoneResolver, creator host.ConstraintCreator, modes host.ModeSwitcher, log Logger) *Engine {
	return &Engine{
		resolver: resolver,
		creator:  creator,
		modes:    modes,
		log:      log,
	}
}

// Ready reports whether Apply's precondition holds: both armatures are
// selected and at least one entry is resolved.
func Ready(pair mapping.ArmaturePair, store *mapping.Store) bool {
	return pair.Complete() && store.HasResolved()
}

// Apply creates one constraint per resolved entry, in store order.
//
// The host is switched into constraint editing mode first and restored
// afterwards, even on failure. Unresolvable bones are skipped. Host failures
// are collected and returned together as ErrApplyFailed once every entry has
// been tried. The report is returned in every case where Apply got past its
// precondition.
func (e *Engine) Apply(ctx context.Context, pair mapping.ArmaturePair, store *mapping.Store) (report *Report, err error) {
	if !Ready(pair, store) {
		return nil, errors.Join(ErrNotReady, zerr.With(zerr.New("apply needs both armatures and a resolved entry"), "pair", pair.String()))
	}

	if e.modes != nil {
		previous, enterErr := e.modes.Enter(ctx)
		if enterErr != nil {
			return nil, errors.Join(ErrModeSwitch, zerr.Wrap(enterErr, "failed to enter pose mode"))
		}

		defer func() {
			if restoreErr := e.modes.Restore(ctx, previous); restoreErr != nil {
				err = errors.Join(err, ErrModeSwitch, zerr.With(zerr.Wrap(restoreErr, "failed to restore mode"), "mode", previous))
			}
		}()
	}

	report = &Report{}
	pairStr := pair.String()

	for entry := range store.Resolved() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, errors.Join(ctxErr, zerr.With(zerr.New("apply interrupted"), "done", len(report.Outcomes)))
		}

		report.Outcomes = append(report.Outcomes, e.applyEntry(ctx, pair, entry, &report.Diagnostics, pairStr))
	}

	if failed := report.Count(StatusFailed); failed > 0 {
		return report, errors.Join(ErrApplyFailed, zerr.With(report.Diagnostics.Error(), "failed", failed))
	}

	return report, nil
}

func (e *Engine) applyEntry(
	ctx context.Context,
	pair mapping.ArmaturePair,
	entry *mapping.Entry,
	diags *diagnostic.Diagnostics,
	pairStr string,
) Outcome {
	out := Outcome{
		ParentBone: entry.ParentBone,
		TargetBone: entry.TargetBone,
		Kind:       entry.Kind,
	}

	parentRef, ok := e.resolver.ResolveBone(pair.ParentID, entry.ParentBone)
	if !ok {
		return e.skip(out, fmt.Sprintf("parent bone %q not found in %q", entry.ParentBone, pair.ParentID), diags, pairStr)
	}

	targetRef, ok := e.resolver.ResolveBone(pair.TargetID, entry.TargetBone)
	if !ok {
		return e.skip(out, fmt.Sprintf("target bone %q not found in %q", entry.TargetBone, pair.TargetID), diags, pairStr)
	}

	if err := e.creator.CreateConstraint(ctx, parentRef, targetRef, entry.Kind); err != nil {
		out.Status = StatusFailed
		out.Reason = err.Error()
		diags.AddError("constraint_failed", err.Error(), pairStr, entry.ParentBone)

		return out
	}

	e.log.Debug("constraint created",
		"bone", entry.ParentBone, "target", entry.TargetBone, "type", entry.Kind.Token())

	out.Status = StatusApplied

	return out
}

func (e *Engine) skip(out Outcome, reason string, diags *diagnostic.Diagnostics, pairStr string) Outcome {
	e.log.Warn("bone skipped", "bone", out.ParentBone, "reason", reason)
	diags.AddWarning("bone_not_found", reason, pairStr, out.ParentBone)

	out.Status = StatusSkipped
	out.Reason = reason

	return out
}
