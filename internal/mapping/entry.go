package mapping

// Entry associates one parent bone with zero or one target bone.
type Entry struct {
	// ParentBone is the bone in the parent armature. It is set at seed time
	// and never changes.
	ParentBone string
	// TargetBone is the bone in the target armature, or "" when unresolved.
	TargetBone string
	// Kind is the constraint created for this entry on apply.
	Kind ConstraintKind
}

// Resolved returns true if the entry has a target bone.
func (e *Entry) Resolved() bool {
	return e.TargetBone != ""
}
