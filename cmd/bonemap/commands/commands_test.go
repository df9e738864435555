package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bonemap/cmd/bonemap/commands"
	"bonemap/internal/config"
	"bonemap/internal/logger"
	"bonemap/internal/session"
)

const testRig = `armatures:
  - name: Rig
    bones: [Spine, Head]
  - name: Mannequin
    bones: [Spine_01, Head_01]
`

type env struct {
	rig   string
	state string
}

func newEnv(t *testing.T) env {
	t.Helper()

	color.NoColor = true

	dir := t.TempDir()
	e := env{
		rig:   filepath.Join(dir, "rig.yaml"),
		state: filepath.Join(dir, "state.yaml"),
	}
	require.NoError(t, os.WriteFile(e.rig, []byte(testRig), 0o600))

	return e
}

func (e env) run(args ...string) (string, error) {
	var out bytes.Buffer

	cli := commands.New(&out, logger.Nop())
	cli.SetArgs(append([]string{"--rig", e.rig, "--state", e.state}, args...))
	err := cli.Execute(context.Background())

	return out.String(), err
}

func TestWorkflow(t *testing.T) {
	e := newEnv(t)

	out, err := e.run("select", "Rig", "Mannequin")
	require.NoError(t, err)
	assert.Contains(t, out, "Selected Rig->Mannequin (2 bones)")

	_, err = e.run("autofill")
	require.NoError(t, err)

	_, err = e.run("kind", "Head", "COPY_ROTATION")
	require.NoError(t, err)

	out, err = e.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Spine_01")
	assert.Contains(t, out, "COPY_ROTATION")

	out, err = e.run("apply")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied 2 constraints")

	rigData, err := os.ReadFile(e.rig)
	require.NoError(t, err)
	assert.Contains(t, string(rigData), "subtarget: Head_01")
}

func TestSetWithType(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("select", "Rig", "Mannequin")
	require.NoError(t, err)

	_, err = e.run("set", "Spine", "Spine_01", "--type", "COPY_LOCATION")
	require.NoError(t, err)

	out, err := e.run("export", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "COPY_LOCATION"`)
}

func TestImportAndClear(t *testing.T) {
	e := newEnv(t)

	doc := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{"parent":"Rig","target":"Mannequin","constraints":[{"parent":"Head","target":"Head_01","type":"COPY_SCALE"}]}`), 0o600))

	out, err := e.run("import", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 constraints")

	_, err = e.run("clear-list")
	require.NoError(t, err)

	_, err = e.run("export", "-")
	assert.True(t, errors.Is(err, session.ErrNothingResolved))

	_, err = e.run("clear")
	require.NoError(t, err)

	out, err = e.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "No armatures selected")
}

func TestSuggest(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("select", "Rig", "Mannequin")
	require.NoError(t, err)

	out, err := e.run("suggest", "head", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Head_01")
}

func TestErrors(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("select", "Rig", "Ghost")
	assert.True(t, errors.Is(err, session.ErrArmatureNotFound))

	_, err = e.run("select", "Rig")
	assert.Error(t, err)

	_, err = e.run("--config", filepath.Join(t.TempDir(), "missing.toml"), "list")
	assert.True(t, errors.Is(err, config.ErrNotFound))
}

func TestVersionNeedsNoRig(t *testing.T) {
	var out bytes.Buffer

	cli := commands.New(&out, logger.Nop())
	cli.SetArgs([]string{"--rig", "/nonexistent/rig.yaml", "version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "bonemap version dev")
}

func TestConfigFile(t *testing.T) {
	e := newEnv(t)

	cfgPath := filepath.Join(t.TempDir(), "bonemap.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rig = \""+e.rig+"\"\nstate = \""+e.state+"\"\n"), 0o600))

	var out bytes.Buffer

	cli := commands.New(&out, logger.Nop())
	cli.SetArgs([]string{"--config", cfgPath, "select", "Rig", "Mannequin"})
	require.NoError(t, cli.Execute(context.Background()))

	_, err := os.Stat(e.state)
	assert.NoError(t, err)
}
