package rig

import (
	"context"
	"errors"
	"os"
	"slices"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"bonemap/internal/common"
	"bonemap/internal/host"
	"bonemap/internal/mapping"
)

var _ host.Host = (*Rig)(nil)

// Rig is an in-memory rig file implementing host.Host.
type Rig struct {
	file  File
	index map[string]int
	dirty bool
}

// New builds a rig from a decoded file.
func New(file File) (*Rig, error) {
	r := &Rig{
		file:  file,
		index: make(map[string]int, len(file.Armatures)),
	}

	if r.file.Mode == "" {
		r.file.Mode = ModeObject
	}

	for i, arm := range file.Armatures {
		if arm.Name == "" {
			return nil, errors.Join(ErrMalformedRig, zerr.With(zerr.New("armature has no name"), "index", i))
		}

		if _, dup := r.index[arm.Name]; dup {
			return nil, errors.Join(ErrMalformedRig, zerr.With(zerr.New("duplicate armature"), "armature", arm.Name))
		}

		r.index[arm.Name] = i
	}

	return r, nil
}

// Parse decodes a rig from YAML.
func Parse(data []byte) (*Rig, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrMalformedRig, zerr.Wrap(err, "failed to parse rig YAML"))
	}

	return New(file)
}

// Load reads and parses a rig file.
func Load(path string) (*Rig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Join(ErrIO, zerr.With(zerr.Wrap(err, "failed to read rig file"), "path", path))
	}

	r, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return r, nil
}

// Save writes the rig to path atomically and clears the dirty flag.
func (r *Rig) Save(path string) error {
	data, err := yaml.Marshal(&r.file)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal rig")
	}

	if err := common.WriteFileAtomic(path, data, common.FilePerm); err != nil {
		return errors.Join(ErrIO, zerr.With(zerr.Wrap(err, "failed to write rig file"), "path", path))
	}

	r.dirty = false

	return nil
}

// Dirty reports whether constraints were added since the rig was loaded or saved.
func (r *Rig) Dirty() bool {
	return r.dirty
}

// Mode returns the current interaction mode.
func (r *Rig) Mode() string {
	return r.file.Mode
}

// Armatures returns the armature names in file order.
func (r *Rig) Armatures() []string {
	names := make([]string, 0, len(r.file.Armatures))
	for _, arm := range r.file.Armatures {
		names = append(names, arm.Name)
	}

	return names
}

// Constraints returns the constraint stack of an armature.
func (r *Rig) Constraints(armatureID string) []Constraint {
	arm := r.armature(armatureID)
	if arm == nil {
		return nil
	}

	return slices.Clone(arm.Constraints)
}

// Bones implements host.Registry.
func (r *Rig) Bones(armatureID string) ([]string, bool) {
	arm := r.armature(armatureID)
	if arm == nil {
		return nil, false
	}

	return slices.Clone(arm.Bones), true
}

// ResolveBone implements host.BoneResolver.
func (r *Rig) ResolveBone(armatureID, bone string) (host.BoneRef, bool) {
	arm := r.armature(armatureID)
	if arm == nil || !slices.Contains(arm.Bones, bone) {
		return nil, false
	}

	return BoneRef{Armature: armatureID, Bone: bone}, true
}

// CreateConstraint implements host.ConstraintCreator. The constraint is
// appended to the parent armature's stack.
func (r *Rig) CreateConstraint(ctx context.Context, parent, target host.BoneRef, kind mapping.ConstraintKind) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !kind.IsValid() {
		return errors.Join(mapping.ErrUnknownKind, zerr.With(zerr.New("cannot create constraint"), "type", int(kind)))
	}

	if _, ok := r.ResolveBone(target.ArmatureID(), target.BoneName()); !ok {
		return errors.Join(ErrBoneNotFound, missingBone("target bone missing", target))
	}

	if _, ok := r.ResolveBone(parent.ArmatureID(), parent.BoneName()); !ok {
		return errors.Join(ErrBoneNotFound, missingBone("parent bone missing", parent))
	}

	arm := r.armature(parent.ArmatureID())
	arm.Constraints = append(arm.Constraints, Constraint{
		Bone:      parent.BoneName(),
		Type:      kind.Token(),
		Target:    target.ArmatureID(),
		Subtarget: target.BoneName(),
	})
	r.dirty = true

	return nil
}

// Enter implements host.ModeSwitcher.
func (r *Rig) Enter(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	previous := r.file.Mode
	r.file.Mode = ModePose

	return previous, nil
}

// Restore implements host.ModeSwitcher.
func (r *Rig) Restore(_ context.Context, previous string) error {
	if previous == "" {
		previous = ModeObject
	}

	r.file.Mode = previous

	return nil
}

func missingBone(msg string, ref host.BoneRef) error {
	err := zerr.With(zerr.New(msg), "armature", ref.ArmatureID())
	return zerr.With(err, "bone", ref.BoneName())
}

func (r *Rig) armature(id string) *Armature {
	i, ok := r.index[id]
	if !ok {
		return nil
	}

	return &r.file.Armatures[i]
}
