package host

import (
	"context"

	"bonemap/internal/mapping"
)

// BoneRef is a live handle to a bone in the host's object graph.
type BoneRef interface {
	ArmatureID() string
	BoneName() string
}

// Registry gives read access to the armatures known to the host.
//
//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks -exclude_interfaces=Host
type Registry interface {
	// Bones returns the bone names of an armature in host order,
	// or false if the armature does not exist.
	Bones(armatureID string) ([]string, bool)
}

// BoneResolver turns bone names into live handles.
type BoneResolver interface {
	// ResolveBone returns the handle for a bone, or false if it does not exist.
	ResolveBone(armatureID, bone string) (BoneRef, bool)
}

// ConstraintCreator adds constraints to bones.
type ConstraintCreator interface {
	// CreateConstraint adds a constraint of the given kind to parent that tracks target.
	CreateConstraint(ctx context.Context, parent, target BoneRef, kind mapping.ConstraintKind) error
}

// ModeSwitcher moves the host in and out of the interaction mode that
// constraint editing requires.
type ModeSwitcher interface {
	// Enter switches into constraint editing mode and returns the mode that was active before.
	Enter(ctx context.Context) (previous string, err error)
	// Restore switches back to a mode returned by Enter.
	Restore(ctx context.Context, previous string) error
}

// Host bundles every collaborator.
type Host interface {
	Registry
	BoneResolver
	ConstraintCreator
	ModeSwitcher
}
