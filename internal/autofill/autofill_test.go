package autofill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bonemap/internal/mapping"
)

func seeded(parents ...string) *mapping.Store {
	s := mapping.NewStore()
	s.Seed(parents)

	return s
}

func TestAutoFillScenario(t *testing.T) {
	s := seeded("Spine", "Head")

	AutoFill(s, []string{"Spine_01", "Head_01"})

	assert.Equal(t, "Spine_01", s.Lookup("Spine").TargetBone)
	assert.Equal(t, "Head_01", s.Lookup("Head").TargetBone)
}

func TestAutoFillNeverOverwrites(t *testing.T) {
	s := seeded("Head", "Neck")
	s.SetTarget("Head", "X")

	AutoFill(s, []string{"Head", "Neck"})

	assert.Equal(t, "X", s.Lookup("Head").TargetBone)
	assert.Equal(t, "Neck", s.Lookup("Neck").TargetBone)
}

func TestAutoFillAllowsSharedTargets(t *testing.T) {
	s := seeded("Arm", "Arm_Twist")

	AutoFill(s, []string{"Arm_01"})

	assert.Equal(t, "Arm_01", s.Lookup("Arm").TargetBone)
	assert.Equal(t, "Arm_01", s.Lookup("Arm_Twist").TargetBone)
}

func TestAutoFillTieBreak(t *testing.T) {
	s := seeded("Arm")

	AutoFill(s, []string{"Arm.L", "Arm.R"})

	assert.Equal(t, "Arm.L", s.Lookup("Arm").TargetBone)
}

func TestAutoFillEmptyPool(t *testing.T) {
	s := seeded("Spine", "Head")

	AutoFill(s, nil)

	assert.False(t, s.HasResolved())
	assert.Equal(t, 2, s.Len())
}

func TestResolverMatchesAutoFill(t *testing.T) {
	parents := []string{"Hips", "Spine", "Arm", "Upper Leg", "Tail"}
	targets := []string{"hips", "spine_01", "Arm.L", "Arm.R", "upper_leg.l"}

	expected := seeded(parents...)
	expected.SetTarget("Tail", "hips")
	AutoFill(expected, targets)

	got := seeded(parents...)
	got.SetTarget("Tail", "hips")
	report := NewResolver(DefaultConfig()).Run(got, targets, "A->B")

	for _, p := range parents {
		assert.Equal(t, expected.Lookup(p).TargetBone, got.Lookup(p).TargetBone, p)
	}

	require.Len(t, report.Results, len(parents))
	assert.Equal(t, 4, report.Count(OutcomeFilled))
	assert.Equal(t, 1, report.Count(OutcomeKept))
}

func TestResolverReportsAmbiguity(t *testing.T) {
	s := seeded("Arm")

	report := NewResolver(DefaultConfig()).Run(s, []string{"Arm.L", "Arm.R"}, "Rig->Mannequin")

	require.Len(t, report.Results, 1)
	res := report.Results[0]
	assert.Equal(t, OutcomeFilled, res.Outcome)
	assert.Equal(t, "Arm.L", res.TargetBone)
	assert.Equal(t, 2, res.Distance)
	assert.Equal(t, []string{"Arm.R"}, res.Ties)
	assert.Contains(t, res.Explanation, "Arm -> Arm.L")

	require.Len(t, report.Diagnostics.Warnings, 1)
	w := report.Diagnostics.Warnings[0]
	assert.Equal(t, "ambiguous_match", w.Code)
	assert.Equal(t, "Arm", w.Bone)
	assert.Equal(t, []string{"Arm.R"}, w.Suggestions)
}

func TestResolverNoCandidates(t *testing.T) {
	s := seeded("Spine")

	report := NewResolver(DefaultConfig()).Run(s, nil, "")

	require.Len(t, report.Results, 1)
	assert.Equal(t, OutcomeNoCandidates, report.Results[0].Outcome)
	assert.False(t, s.HasResolved())
	require.Len(t, report.Diagnostics.Warnings, 1)
	assert.Equal(t, "no_candidates", report.Diagnostics.Warnings[0].Code)
}

func TestResolverMaxDistance(t *testing.T) {
	s := seeded("Spine", "Tail")

	report := NewResolver(Config{MaxDistance: 3}).Run(s, []string{"Spine_01"}, "")

	assert.Equal(t, "Spine_01", s.Lookup("Spine").TargetBone)
	assert.Empty(t, s.Lookup("Tail").TargetBone)
	assert.Equal(t, 1, report.Count(OutcomeFilled))
	assert.Equal(t, 1, report.Count(OutcomeTooFar))
	assert.Equal(t, "too_far", OutcomeTooFar.String())
}
