package cmd_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausbus/isygltgen/internal/cmd"
	"github.com/hausbus/isygltgen/internal/plan"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "program.txt")
	g := &cmd.Generate{Output: out, Class: "all"}
	require.NoError(t, g.Run(discardLogger()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "; === BWM")
	assert.Contains(t, text, "; === DIM")
	assert.Contains(t, text, "; === TASTER")
}

func TestGenerateSingleClassFromPlanFile(t *testing.T) {
	dir := t.TempDir()

	p := &plan.Plan{Panels: []int{61, 62}}
	data, err := plan.Marshal(p, "yaml")
	require.NoError(t, err)
	planPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, data, 0o644))

	out := filepath.Join(dir, "program.txt")
	g := &cmd.Generate{Output: out, Class: "buttongrid", Plan: planPath}
	require.NoError(t, g.Run(discardLogger()))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "; TASTER 61")
	assert.Contains(t, string(got), "; TASTER 62")
	assert.NotContains(t, string(got), "; === BWM")
}

func TestGenerateMissingPlanFile(t *testing.T) {
	g := &cmd.Generate{
		Output: filepath.Join(t.TempDir(), "program.txt"),
		Class:  "all",
		Plan:   filepath.Join(t.TempDir(), "nope.yaml"),
	}
	assert.Error(t, g.Run(discardLogger()))
}

func TestPlanInit(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "plan.yaml")
	c := &cmd.PlanInit{Format: "yaml", Output: dest}
	require.NoError(t, c.Run(discardLogger()))

	got, err := plan.Load(dest)
	require.NoError(t, err)
	assert.Equal(t, plan.Default(), got)

	// A second run must not clobber the file without --force.
	assert.Error(t, c.Run(discardLogger()))
	c.Force = true
	assert.NoError(t, c.Run(discardLogger()))
}
