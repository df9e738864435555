// Package session owns the selected armature pair and the mapping store
// seeded from it.
//
// Selecting armatures always re-seeds the store. Every manual edit made
// since the last selection is discarded; nothing is merged. Import relies on
// this: it selects the document's armatures first and merges afterwards,
// against the freshly seeded entries.
package session
