package session

import (
	"errors"

	"go.trai.ch/zerr"

	"bonemap/internal/autofill"
	"bonemap/internal/diagnostic"
	"bonemap/internal/document"
	"bonemap/internal/host"
	"bonemap/internal/mapping"
)

// Logger is the logging the session needs.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Session is the owning context of a mapping: the selected armature pair,
// the store seeded from it and the registry both are resolved against.
type Session struct {
	pair     mapping.ArmaturePair
	store    *mapping.Store
	registry host.Registry
	log      Logger
}

// New creates a session with nothing selected.
func New(registry host.Registry, log Logger) *Session {
	return &Session{
		store:    mapping.NewStore(),
		registry: registry,
		log:      log,
	}
}

// Pair returns the selected armature pair.
func (s *Session) Pair() mapping.ArmaturePair {
	return s.pair
}

// Store returns the mapping store.
func (s *Session) Store() *mapping.Store {
	return s.store
}

// SelectParent selects the parent armature. An empty id deselects it.
// The store is re-seeded.
func (s *Session) SelectParent(id string) error {
	return s.Select(id, s.pair.TargetID)
}

// SelectTarget selects the target armature. An empty id deselects it.
// The store is re-seeded.
func (s *Session) SelectTarget(id string) error {
	return s.Select(s.pair.ParentID, id)
}

// Select selects both armatures at once. Every call re-seeds the store, even
// when the IDs are unchanged: entries are cleared and, when both armatures
// are selected, rebuilt from the parent armature's bones.
// Unknown IDs are rejected and leave the session unchanged.
func (s *Session) Select(parentID, targetID string) error {
	for _, id := range []string{parentID, targetID} {
		if id == "" {
			continue
		}

		if _, ok := s.registry.Bones(id); !ok {
			return fail(ErrArmatureNotFound, "cannot select armature", "armature", id)
		}
	}

	s.pair = mapping.ArmaturePair{ParentID: parentID, TargetID: targetID}
	s.reseed()

	return nil
}

// fail joins a sentinel with a contextual zerr error so errors.Is still
// matches the sentinel.
func fail(sentinel error, msg, key string, value any) error {
	return errors.Join(sentinel, zerr.With(zerr.New(msg), key, value))
}

func (s *Session) reseed() {
	if s.store.Len() > 0 {
		s.log.Info("selection changed, mapping reset", "dropped", s.store.Len())
	}

	s.store.ClearAll()

	if !s.pair.Complete() {
		return
	}

	bones, _ := s.registry.Bones(s.pair.ParentID)
	s.store.Seed(bones)
}

// Restore replaces the session state without re-seeding from the registry.
// It is used to resume a saved session.
func (s *Session) Restore(pair mapping.ArmaturePair, store *mapping.Store) {
	s.pair = pair
	s.store = store
}

func (s *Session) requirePair() error {
	if !s.pair.Complete() {
		return fail(ErrIncompletePair, "operation needs both armatures", "pair", s.pair.String())
	}

	return nil
}

func (s *Session) targetBones() ([]string, error) {
	bones, ok := s.registry.Bones(s.pair.TargetID)
	if !ok {
		return nil, fail(ErrArmatureNotFound, "target armature vanished", "armature", s.pair.TargetID)
	}

	return bones, nil
}

// AutoFill fills every unresolved entry from the target armature's bones.
func (s *Session) AutoFill(config autofill.Config) (*autofill.Report, error) {
	if err := s.requirePair(); err != nil {
		return nil, err
	}

	bones, err := s.targetBones()
	if err != nil {
		return nil, err
	}

	report := autofill.NewResolver(config).Run(s.store, bones, s.pair.String())

	s.log.Info("auto-fill finished",
		"filled", report.Count(autofill.OutcomeFilled),
		"kept", report.Count(autofill.OutcomeKept),
		"ambiguous", len(report.Diagnostics.Warnings))

	return report, nil
}

// SetTarget maps parentBone to targetBone. An empty targetBone unresolves the entry.
// A non-empty targetBone must exist in the target armature.
func (s *Session) SetTarget(parentBone, targetBone string) error {
	if targetBone != "" {
		if err := s.requirePair(); err != nil {
			return err
		}

		bones, err := s.targetBones()
		if err != nil {
			return err
		}

		if !containsBone(bones, targetBone) {
			return fail(ErrBoneNotFound, "cannot map bone", "bone", targetBone)
		}
	}

	if !s.store.SetTarget(parentBone, targetBone) {
		return fail(ErrEntryNotFound, "cannot edit mapping", "bone", parentBone)
	}

	return nil
}

// SetKind sets the constraint kind of parentBone's entry.
func (s *Session) SetKind(parentBone string, kind mapping.ConstraintKind) error {
	if !s.store.SetKind(parentBone, kind) {
		return fail(ErrEntryNotFound, "cannot edit mapping", "bone", parentBone)
	}

	return nil
}

// ClearList unresolves every entry.
func (s *Session) ClearList() {
	s.store.ClearTargets()
}

// ClearAll deselects both armatures and empties the store.
func (s *Session) ClearAll() {
	s.pair = mapping.ArmaturePair{}
	s.store.ClearAll()
}

// Validate checks the store against the target armature.
func (s *Session) Validate() *diagnostic.Diagnostics {
	var bones []string
	if s.pair.TargetID != "" {
		bones, _ = s.registry.Bones(s.pair.TargetID)
	}

	return mapping.Validate(s.store, bones, s.pair.String())
}

func containsBone(bones []string, name string) bool {
	for _, b := range bones {
		if b == name {
			return true
		}
	}

	return false
}

// Export builds the document for the current mapping.
// Both armatures must be selected and at least one entry resolved.
func (s *Session) Export() (*document.Document, error) {
	if err := s.requirePair(); err != nil {
		return nil, err
	}

	if !s.store.HasResolved() {
		return nil, ErrNothingResolved
	}

	return document.Export(s.pair, s.store), nil
}

// ExportFile exports the current mapping to path.
func (s *Session) ExportFile(path string) (*document.Document, error) {
	doc, err := s.Export()
	if err != nil {
		return nil, err
	}

	if err := document.WriteFile(doc, path); err != nil {
		return nil, err
	}

	s.log.Info("mapping exported", "path", path, "constraints", len(doc.Constraints))

	return doc, nil
}

// ImportResult describes what Import did.
type ImportResult struct {
	document.MergeResult

	// PairChanged is true if the document's armatures were selected.
	PairChanged bool
}

// Import applies a document to the session. If both of the document's
// armatures exist they are selected, which re-seeds the store; otherwise the
// selection is kept. Then each constraint is merged into the entry with the
// same parent bone. A malformed document changes nothing.
func (s *Session) Import(doc *document.Document) (ImportResult, error) {
	var res ImportResult

	if err := document.Validate(doc); err != nil {
		return res, err
	}

	_, parentOK := s.registry.Bones(doc.Parent)
	_, targetOK := s.registry.Bones(doc.Target)

	if parentOK && targetOK {
		if err := s.Select(doc.Parent, doc.Target); err != nil {
			return res, err
		}

		res.PairChanged = true
	} else {
		s.log.Warn("document armatures not found, keeping selection",
			"parent", doc.Parent, "target", doc.Target)
	}

	merged, err := document.Merge(doc, s.store)
	if err != nil {
		return res, err
	}

	res.MergeResult = merged

	for _, bone := range merged.Dropped {
		s.log.Warn("no entry for imported bone", "bone", bone)
	}

	return res, nil
}

// ImportFile loads a document from path and imports it.
func (s *Session) ImportFile(path string) (ImportResult, error) {
	doc, err := document.LoadFile(path)
	if err != nil {
		return ImportResult{}, err
	}

	res, err := s.Import(doc)
	if err != nil {
		return res, err
	}

	s.log.Info("mapping imported", "path", path, "merged", len(res.Merged), "dropped", len(res.Dropped))

	return res, nil
}
