// Package autofill resolves unmapped parent bones to their closest target
// bone by name.
//
// Only unresolved entries are touched. The candidate pool never shrinks
// during a run, so two parent bones may end up on the same target bone.
package autofill
