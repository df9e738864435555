// Package mapping holds the correspondence between the bones of a parent
// armature and the bones of a target armature.
//
// # Model
//
// A Store keeps one Entry per parent bone, in the parent armature's bone
// order. Each entry carries an optional target bone and a ConstraintKind:
//
//	Spine  -> Spine_01   COPY_TRANSFORMS
//	Head   -> Head_01    COPY_ROTATION
//	Tail   -> (unset)    COPY_TRANSFORMS
//
// An empty target means the entry is unresolved. Target bones are advisory:
// the store never checks them against the target armature. Validate reports
// targets that do not exist, and the apply engine skips them.
//
// # Seeding
//
// Seed is destructive. Re-seeding after a selection change drops every
// manual edit; nothing is merged.
//
// # Constraint kinds
//
// Kinds serialize as the upper-snake tokens COPY_TRANSFORMS, COPY_LOCATION,
// COPY_ROTATION and COPY_SCALE. COPY_TRANSFORMS is the default.
package mapping
