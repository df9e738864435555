package document

import (
	"bonemap/internal/mapping"
)

// Export builds a document from the resolved entries of store, in store order.
// Unresolved entries are never exported.
func Export(pair mapping.ArmaturePair, store *mapping.Store) *Document {
	doc := &Document{
		Parent:      pair.ParentID,
		Target:      pair.TargetID,
		Constraints: []Constraint{},
	}

	for e := range store.Resolved() {
		doc.Constraints = append(doc.Constraints, Constraint{
			Parent: e.ParentBone,
			Target: e.TargetBone,
			Type:   e.Kind.Token(),
		})
	}

	return doc
}

// MergeResult counts what Merge did with the document's constraints.
type MergeResult struct {
	// Merged lists the parent bones that received a target.
	Merged []string
	// Dropped lists constraint parents with no matching entry.
	Dropped []string
}

// Merge copies each constraint's target and kind into the store entry with
// the same parent bone. Constraints with no matching entry are dropped.
// The document is validated first; a malformed document leaves store untouched.
func Merge(doc *Document, store *mapping.Store) (MergeResult, error) {
	var res MergeResult

	if err := Validate(doc); err != nil {
		return res, err
	}

	for _, c := range doc.Constraints {
		kind, _ := c.Kind()

		e := store.Lookup(c.Parent)
		if e == nil {
			res.Dropped = append(res.Dropped, c.Parent)
			continue
		}

		e.TargetBone = c.Target
		e.Kind = kind
		res.Merged = append(res.Merged, c.Parent)
	}

	return res, nil
}
