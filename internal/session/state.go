package session

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"bonemap/internal/common"
	"bonemap/internal/mapping"
)

// StateFile is the on-disk form of a session, so separate CLI invocations
// share one mapping. Unlike a mapping document it keeps unresolved entries.
type StateFile struct {
	Parent        string       `yaml:"parent,omitempty"`
	Target        string       `yaml:"target,omitempty"`
	SelectedIndex int          `yaml:"selected_index,omitempty"`
	Entries       []StateEntry `yaml:"entries,omitempty"`
}

// StateEntry is one store entry.
type StateEntry struct {
	Parent string `yaml:"parent"`
	Target string `yaml:"target,omitempty"`
	Type   string `yaml:"type"`
}

// SaveState writes the session to path atomically.
func (s *Session) SaveState(path string) error {
	state := StateFile{
		Parent:        s.pair.ParentID,
		Target:        s.pair.TargetID,
		SelectedIndex: s.store.SelectedIndex,
	}

	for e := range s.store.Entries() {
		state.Entries = append(state.Entries, StateEntry{
			Parent: e.ParentBone,
			Target: e.TargetBone,
			Type:   e.Kind.Token(),
		})
	}

	data, err := yaml.Marshal(&state)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal session state")
	}

	if err := common.WriteFileAtomic(path, data, common.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write session state"), "path", path)
	}

	return nil
}

// LoadState restores the session from path. A missing file leaves the
// session empty and is not an error.
func (s *Session) LoadState(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read session state"), "path", path)
	}

	var state StateFile
	if err := yaml.Unmarshal(data, &state); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse session state"), "path", path)
	}

	store := mapping.NewStore()

	parents := make([]string, 0, len(state.Entries))
	for _, e := range state.Entries {
		parents = append(parents, e.Parent)
	}

	store.Seed(parents)

	for _, e := range state.Entries {
		kind, err := mapping.ParseConstraintKind(e.Type)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid session state"), "bone", e.Parent)
		}

		store.SetTarget(e.Parent, e.Target)
		store.SetKind(e.Parent, kind)
	}

	store.SelectedIndex = state.SelectedIndex

	s.Restore(mapping.ArmaturePair{ParentID: state.Parent, TargetID: state.Target}, store)

	return nil
}
