package document

import (
	"bonemap/internal/mapping"
)

// Document is the portable form of a bone mapping.
type Document struct {
	// Parent is the parent armature ID.
	Parent string `json:"parent" yaml:"parent"`

	// Target is the target armature ID.
	Target string `json:"target" yaml:"target"`

	// Constraints lists the resolved entries in store order.
	Constraints []Constraint `json:"constraints" yaml:"constraints"`
}

// Constraint is one resolved entry.
type Constraint struct {
	// Parent is the bone in the parent armature.
	Parent string `json:"parent" yaml:"parent"`

	// Target is the bone in the target armature.
	Target string `json:"target" yaml:"target"`

	// Type is the constraint kind token, e.g. "COPY_TRANSFORMS".
	Type string `json:"type" yaml:"type"`
}

// Kind parses the constraint's type token.
func (c Constraint) Kind() (mapping.ConstraintKind, error) {
	return mapping.ParseConstraintKind(c.Type)
}

// Pair returns the armature pair the document was exported from.
func (d *Document) Pair() mapping.ArmaturePair {
	return mapping.ArmaturePair{ParentID: d.Parent, TargetID: d.Target}
}

// rawDocument mirrors Document with pointers so missing fields can be told
// apart from empty ones.
type rawDocument struct {
	Parent      *string          `json:"parent" yaml:"parent"`
	Target      *string          `json:"target" yaml:"target"`
	Constraints *[]rawConstraint `json:"constraints" yaml:"constraints"`
}

type rawConstraint struct {
	Parent *string `json:"parent" yaml:"parent"`
	Target *string `json:"target" yaml:"target"`
	Type   *string `json:"type" yaml:"type"`
}
