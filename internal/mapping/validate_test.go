package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	s := NewStore()
	s.Seed([]string{"Spine", "Head", "Hand", "Tail"})
	s.SetTarget("Spine", "Spine_01")
	s.SetTarget("Head", "Haed_01")
	s.SetTarget("Hand", "Hand_R")

	diags := Validate(s, []string{"Spine_01", "Head_01", "Hand_R"}, "Rig->Mannequin")

	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)

	w := diags.Warnings[0]
	assert.Equal(t, "target_not_found", w.Code)
	assert.Equal(t, "Head", w.Bone)
	assert.Equal(t, "Rig->Mannequin", w.Pair)
	require.NotEmpty(t, w.Suggestions)
	assert.Equal(t, "Head_01", w.Suggestions[0])

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "unresolved", diags.Infos[0].Code)

	// Validation is advisory
	assert.Equal(t, "Haed_01", s.Lookup("Head").TargetBone)
}

func TestValidateInvalidKindAndNilStore(t *testing.T) {
	s := NewStore()
	s.Seed([]string{"Spine"})
	s.Lookup("Spine").Kind = ConstraintKind(7)

	diags := Validate(s, nil, "")
	assert.True(t, diags.HasErrors())

	diags = Validate(nil, nil, "")
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "store_is_nil", diags.Errors[0].Code)
}
