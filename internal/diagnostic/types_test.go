package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo("filled", "filled from Spine_01", "Rig->Mannequin", "Spine")
	d.AddWarning("ambiguous_match", "tied candidates", "Rig->Mannequin", "Arm", "Arm.L", "Arm.R")
	d.AddError("bone_not_found", "target bone missing", "Rig->Mannequin", "Hand")

	assert.False(t, d.IsValid())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[Rig->Mannequin] Hand: [bone_not_found] target bone missing", err.Error())
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "nothing to do"},
			expected: "nothing to do",
		},
		{
			name:     "with code and bone",
			diag:     Diagnostic{Code: "skipped", Message: "no target", Bone: "Head"},
			expected: "Head: [skipped] no target",
		},
		{
			name: "with suggestions",
			diag: Diagnostic{
				Code:        "ambiguous_match",
				Message:     "tie",
				Suggestions: []string{"Arm.L", "Arm.R"},
			},
			expected: "[ambiguous_match] tie (candidates: Arm.L, Arm.R)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
