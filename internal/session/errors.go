package session

import "go.trai.ch/zerr"

var (
	// ErrArmatureNotFound is returned when an armature ID is not in the registry.
	ErrArmatureNotFound = zerr.New("armature not found")

	// ErrIncompletePair is returned when an operation needs both armatures selected.
	ErrIncompletePair = zerr.New("parent and target armatures must both be selected")

	// ErrNothingResolved is returned when an operation needs at least one resolved entry.
	ErrNothingResolved = zerr.New("no bone has a target")

	// ErrEntryNotFound is returned when no entry exists for a parent bone.
	ErrEntryNotFound = zerr.New("no mapping entry for bone")

	// ErrBoneNotFound is returned when a target bone is not in the target armature.
	ErrBoneNotFound = zerr.New("bone not found in target armature")
)
