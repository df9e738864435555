// Package app implements the application layer for bonemap.
//
// An App wires a rig file, a persisted session and the logger together and
// exposes one method per CLI command. Every method that changes the mapping
// saves the session state before returning.
package app

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/zerr"

	"bonemap/internal/apply"
	"bonemap/internal/config"
	"bonemap/internal/diagnostic"
	"bonemap/internal/document"
	"bonemap/internal/logger"
	"bonemap/internal/mapping"
	"bonemap/internal/match"
	"bonemap/internal/rig"
	"bonemap/internal/session"
)

// ErrNotOpen is returned when a command runs before Open.
var ErrNotOpen = zerr.New("application is not open")

// App represents the main application logic.
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	out     io.Writer
	rig     *rig.Rig
	session *session.Session
}

// New creates an App. Nothing is loaded until Open.
func New(cfg *config.Config, log *logger.Logger, out io.Writer) *App {
	return &App{
		cfg: cfg,
		log: log,
		out: out,
	}
}

// Config returns the active configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Session returns the open session, or nil before Open.
func (a *App) Session() *session.Session {
	return a.session
}

// Open loads the rig and resumes the saved session.
func (a *App) Open() error {
	r, err := rig.Load(a.cfg.Rig)
	if err != nil {
		return zerr.Wrap(err, "failed to load rig")
	}

	s := session.New(r, a.log)
	if err := s.LoadState(a.cfg.State); err != nil {
		return zerr.Wrap(err, "failed to resume session")
	}

	a.rig = r
	a.session = s

	return nil
}

func (a *App) save() error {
	return a.session.SaveState(a.cfg.State)
}

func (a *App) ready() error {
	if a.session == nil {
		return ErrNotOpen
	}

	return nil
}

// Select selects the armature pair and re-seeds the mapping.
func (a *App) Select(parentID, targetID string) error {
	if err := a.ready(); err != nil {
		return err
	}

	if err := a.session.Select(parentID, targetID); err != nil {
		return err
	}

	a.printf("Selected %s (%d bones)\n", a.session.Pair(), a.session.Store().Len())

	return a.save()
}

// List prints the mapping.
func (a *App) List() error {
	if err := a.ready(); err != nil {
		return err
	}

	printList(a.out, a.session.Pair(), a.session.Store())

	for _, d := range a.session.Validate().All() {
		if d.Severity == diagnostic.SeverityInfo {
			a.log.Info(d.String())
			continue
		}

		a.log.Warn(d.String())
	}

	return nil
}

// AutoFill fills unresolved entries from the target armature.
func (a *App) AutoFill() error {
	if err := a.ready(); err != nil {
		return err
	}

	report, err := a.session.AutoFill(a.cfg.Resolver())
	if err != nil {
		return err
	}

	printAutoFill(a.out, report)

	return a.save()
}

// Suggest prints at most limit target bones closest to bone. A positive
// maxDistance hides candidates farther than that many edits.
func (a *App) Suggest(bone string, limit, maxDistance int) error {
	if err := a.ready(); err != nil {
		return err
	}

	pair := a.session.Pair()
	if pair.TargetID == "" {
		return errors.Join(session.ErrIncompletePair, zerr.New("suggest needs a target armature"))
	}

	bones, ok := a.rig.Bones(pair.TargetID)
	if !ok {
		return errors.Join(session.ErrArmatureNotFound, zerr.With(zerr.New("target armature vanished"), "armature", pair.TargetID))
	}

	ranked := match.RankCandidates(bone, bones)
	if maxDistance > 0 {
		ranked = ranked.WithinDistance(maxDistance)
	}

	printSuggestions(a.out, bone, ranked.Top(limit))

	return nil
}

// Set maps parentBone to targetBone. A non-empty kind token also sets the
// constraint kind.
func (a *App) Set(parentBone, targetBone, kindToken string) error {
	if err := a.ready(); err != nil {
		return err
	}

	if kindToken != "" {
		kind, err := mapping.ParseConstraintKind(kindToken)
		if err != nil {
			return err
		}

		if err := a.session.SetKind(parentBone, kind); err != nil {
			return err
		}
	}

	if err := a.session.SetTarget(parentBone, targetBone); err != nil {
		return err
	}

	return a.save()
}

// SetKind sets the constraint kind of parentBone.
func (a *App) SetKind(parentBone, kindToken string) error {
	if err := a.ready(); err != nil {
		return err
	}

	kind, err := mapping.ParseConstraintKind(kindToken)
	if err != nil {
		return err
	}

	if err := a.session.SetKind(parentBone, kind); err != nil {
		return err
	}

	return a.save()
}

// ClearList unresolves every entry and keeps the selection.
func (a *App) ClearList() error {
	if err := a.ready(); err != nil {
		return err
	}

	a.session.ClearList()

	return a.save()
}

// ClearAll deselects both armatures and empties the mapping.
func (a *App) ClearAll() error {
	if err := a.ready(); err != nil {
		return err
	}

	a.session.ClearAll()

	return a.save()
}

// Export writes the resolved mapping to path. A path of "-" writes the JSON
// document to the output instead.
func (a *App) Export(path string) error {
	if err := a.ready(); err != nil {
		return err
	}

	if path == "-" {
		doc, err := a.session.Export()
		if err != nil {
			return err
		}

		data, err := document.Marshal(doc)
		if err != nil {
			return err
		}

		_, err = a.out.Write(data)

		return err
	}

	doc, err := a.session.ExportFile(path)
	if err != nil {
		return err
	}

	a.printf("Exported %d constraints to %s\n", len(doc.Constraints), path)

	return nil
}

// Import merges the document at path into the mapping.
func (a *App) Import(path string) error {
	if err := a.ready(); err != nil {
		return err
	}

	res, err := a.session.ImportFile(path)
	if err != nil {
		return err
	}

	a.printf("Imported %d constraints from %s", len(res.Merged), path)

	if len(res.Dropped) > 0 {
		a.printf(", %d without a matching bone", len(res.Dropped))
	}

	a.printf("\n")

	return a.save()
}

// Apply creates constraints in the rig for every resolved entry and saves
// the rig when anything was created.
func (a *App) Apply(ctx context.Context) error {
	if err := a.ready(); err != nil {
		return err
	}

	engine := apply.NewEngine(a.rig, a.rig, a.rig, a.log)

	report, applyErr := engine.Apply(ctx, a.session.Pair(), a.session.Store())
	if report != nil {
		printApply(a.out, report)
	}

	if a.rig.Dirty() {
		if err := a.rig.Save(a.cfg.Rig); err != nil {
			return errors.Join(applyErr, err)
		}
	}

	return applyErr
}
