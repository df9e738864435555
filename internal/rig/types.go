package rig

// ModeObject is the mode a rig starts in when the file does not name one.
const ModeObject = "OBJECT"

// ModePose is the mode constraints are created in.
const ModePose = "POSE"

// File is the on-disk rig.
type File struct {
	Mode      string     `yaml:"mode,omitempty"`
	Armatures []Armature `yaml:"armatures"`
}

// Armature is a named skeleton.
type Armature struct {
	Name        string       `yaml:"name"`
	Bones       []string     `yaml:"bones"`
	Constraints []Constraint `yaml:"constraints,omitempty"`
}

// Constraint is one entry of a bone's constraint stack. Target and Subtarget
// name the armature and bone being tracked.
type Constraint struct {
	Bone      string `yaml:"bone"`
	Type      string `yaml:"type"`
	Target    string `yaml:"target"`
	Subtarget string `yaml:"subtarget"`
}

// BoneRef is a handle to a bone of a loaded rig.
type BoneRef struct {
	Armature string
	Bone     string
}

// ArmatureID implements host.BoneRef.
func (b BoneRef) ArmatureID() string { return b.Armature }

// BoneName implements host.BoneRef.
func (b BoneRef) BoneName() string { return b.Bone }
