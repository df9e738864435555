package mapping

import (
	"errors"

	"go.trai.ch/zerr"
)

//go:generate go tool stringer -type=ConstraintKind -trimprefix=Kind -output=kind_string.go

// ConstraintKind describes which property of the target bone a parent bone tracks.
type ConstraintKind int

const (
	// KindCopyTransforms copies the full transform. It is the default kind.
	KindCopyTransforms ConstraintKind = iota
	KindCopyLocation
	KindCopyRotation
	KindCopyScale

	// KindTotal is the number of constraint kinds.
	KindTotal = int(iota)
)

// DefaultKind is the kind every freshly seeded entry starts with.
const DefaultKind = KindCopyTransforms

var kindTokens = [KindTotal]string{
	KindCopyTransforms: "COPY_TRANSFORMS",
	KindCopyLocation:   "COPY_LOCATION",
	KindCopyRotation:   "COPY_ROTATION",
	KindCopyScale:      "COPY_SCALE",
}

// Kinds returns every constraint kind in declaration order.
func Kinds() []ConstraintKind {
	return []ConstraintKind{KindCopyTransforms, KindCopyLocation, KindCopyRotation, KindCopyScale}
}

// IsValid returns true if the kind is a recognized value.
func (k ConstraintKind) IsValid() bool {
	return k >= 0 && int(k) < KindTotal
}

// Token returns the upper-snake token used in mapping documents, e.g. "COPY_LOCATION".
// Returns "" for invalid kinds.
func (k ConstraintKind) Token() string {
	if !k.IsValid() {
		return ""
	}

	return kindTokens[k]
}

// ParseConstraintKind converts a document token back into a ConstraintKind.
// Only the exact upper-snake tokens are accepted.
func ParseConstraintKind(token string) (ConstraintKind, error) {
	for i, t := range kindTokens {
		if t == token {
			return ConstraintKind(i), nil
		}
	}

	return DefaultKind, errors.Join(ErrUnknownKind, zerr.With(zerr.New("cannot parse constraint type"), "type", token))
}

// MarshalText implements encoding.TextMarshaler using the document token.
func (k ConstraintKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, errors.Join(ErrUnknownKind, zerr.With(zerr.New("cannot marshal constraint type"), "kind", k.String()))
	}

	return []byte(k.Token()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the document token.
func (k *ConstraintKind) UnmarshalText(text []byte) error {
	parsed, err := ParseConstraintKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}
