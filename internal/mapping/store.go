package mapping

import (
	"iter"
)

// Store is the ordered collection of mapping entries, one per parent bone.
// Entry order is the parent armature's bone order. It matters for display and
// export only.
//
// A Store assumes a single mutator; it is not safe for concurrent use.
type Store struct {
	entries []*Entry
	index   map[string]int

	// SelectedIndex is the UI cursor into the entry list.
	SelectedIndex int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{index: map[string]int{}}
}

// Seed discards every entry and creates one unresolved entry per parent bone
// name, in order, with the default constraint kind. Prior targets are lost.
// Empty and repeated names are skipped so parent bones stay unique.
func (s *Store) Seed(parentBones []string) {
	s.ClearAll()

	for _, name := range parentBones {
		if name == "" {
			continue
		}

		if _, ok := s.index[name]; ok {
			continue
		}

		s.index[name] = len(s.entries)
		s.entries = append(s.entries, &Entry{ParentBone: name, Kind: DefaultKind})
	}
}

// Lookup returns the entry for parentBone, or nil if absent.
func (s *Store) Lookup(parentBone string) *Entry {
	i, ok := s.index[parentBone]
	if !ok {
		return nil
	}

	return s.entries[i]
}

// SetTarget sets the target bone of the entry for parentBone.
// Returns false if no such entry exists.
func (s *Store) SetTarget(parentBone, targetBone string) bool {
	e := s.Lookup(parentBone)
	if e == nil {
		return false
	}

	e.TargetBone = targetBone

	return true
}

// SetKind sets the constraint kind of the entry for parentBone.
// Returns false if no such entry exists.
func (s *Store) SetKind(parentBone string, kind ConstraintKind) bool {
	e := s.Lookup(parentBone)
	if e == nil {
		return false
	}

	e.Kind = kind

	return true
}

// ClearTargets unresolves every entry. Entries and kinds are kept.
func (s *Store) ClearTargets() {
	for _, e := range s.entries {
		e.TargetBone = ""
	}
}

// ClearAll removes every entry and resets the cursor.
func (s *Store) ClearAll() {
	s.entries = nil
	s.index = map[string]int{}
	s.SelectedIndex = 0
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns all entries in store order.
func (s *Store) Entries() iter.Seq[*Entry] {
	return s.filter(func(*Entry) bool { return true })
}

// Resolved returns the entries that have a target bone, in store order.
func (s *Store) Resolved() iter.Seq[*Entry] {
	return s.filter((*Entry).Resolved)
}

// Unresolved returns the entries without a target bone, in store order.
func (s *Store) Unresolved() iter.Seq[*Entry] {
	return s.filter(func(e *Entry) bool { return !e.Resolved() })
}

// HasResolved returns true if at least one entry has a target bone.
func (s *Store) HasResolved() bool {
	for range s.Resolved() {
		return true
	}

	return false
}

func (s *Store) filter(keep func(*Entry) bool) iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range s.entries {
			if !keep(e) {
				continue
			}

			if !yield(e) {
				return
			}
		}
	}
}
