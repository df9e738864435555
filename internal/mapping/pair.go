package mapping

// ArmaturePair names the parent and target armatures of a mapping.
// The IDs are opaque keys into the host's armature registry.
type ArmaturePair struct {
	ParentID string
	TargetID string
}

// Complete returns true if both armatures are selected.
func (p ArmaturePair) Complete() bool {
	return p.ParentID != "" && p.TargetID != ""
}

// Empty returns true if neither armature is selected.
func (p ArmaturePair) Empty() bool {
	return p.ParentID == "" && p.TargetID == ""
}

// String returns "parent->target" for use in diagnostics.
func (p ArmaturePair) String() string {
	return p.ParentID + "->" + p.TargetID
}
