package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tagtree/internal/core/todo"
)

// runApp wires every command into a fresh root and runs it against args,
// returning captured output.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flags := &Flags{}
	var buf bytes.Buffer

	app := &cli.Command{
		Name:   "tagtree",
		Writer: &buf,
	}
	app = NewScanCmd(flags).Register(app)
	app = NewListCmd(flags).Register(app)
	app = NewTagsCmd(flags).Register(app)
	app = NewStatsCmd(flags).Register(app)
	app = NewInitCmd(flags).Register(app)

	err := app.Run(context.Background(), append([]string{"tagtree"}, args...))
	return buf.String(), err
}

func fixtureTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write("main.go", "// TODO(alice): wire the cache\n")
	write("util.go", "// FIXME: broken on windows\n// NOTE: see docs\n")
	write("sub/deep.go", "# HACK: temporary\n")
	return dir
}

func TestScanCommandTree(t *testing.T) {
	out, err := runApp(t, "scan", fixtureTree(t))
	require.NoError(t, err)

	require.Contains(t, out, "main.go (1)")
	require.Contains(t, out, "TODO (alice): wire the cache")
	require.Contains(t, out, "4 item(s) in 3 file(s), 3 file(s) scanned")
}

func TestScanCommandFlat(t *testing.T) {
	out, err := runApp(t, "scan", "--flat", fixtureTree(t))
	require.NoError(t, err)

	require.Contains(t, out, "main.go:1:4: TODO (alice): wire the cache")
	require.Contains(t, out, "util.go:2:4: NOTE: see docs")
}

func TestScanCommandJSON(t *testing.T) {
	out, err := runApp(t, "scan", "--json", fixtureTree(t))
	require.NoError(t, err)

	var result todo.ScanResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, 4, result.Summary.TotalCount)
	require.Equal(t, 3, result.Summary.FilesScanned)
}

func TestScanCommandTagFilter(t *testing.T) {
	out, err := runApp(t, "scan", "--flat", "--tags", "FIXME", fixtureTree(t))
	require.NoError(t, err)

	require.Contains(t, out, "FIXME: broken on windows")
	require.NotContains(t, out, "TODO")
	require.NotContains(t, out, "HACK")
}

func TestScanCommandExclude(t *testing.T) {
	out, err := runApp(t, "scan", "--flat", "--exclude", "sub/**", fixtureTree(t))
	require.NoError(t, err)

	require.NotContains(t, out, "HACK")
	require.Contains(t, out, "TODO")
}

func TestScanCommandInvalidGlob(t *testing.T) {
	_, err := runApp(t, "scan", "--include", "[bad", fixtureTree(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "[bad")
}

func TestScanCommandGroupByTag(t *testing.T) {
	out, err := runApp(t, "scan", "--group-by-tag", fixtureTree(t))
	require.NoError(t, err)

	require.Contains(t, out, "FIXME (1)")
	require.Contains(t, out, "TODO (1)")
}

func TestListCommandFilter(t *testing.T) {
	out, err := runApp(t, "list", "--filter", "note", fixtureTree(t))
	require.NoError(t, err)

	require.Contains(t, out, "NOTE: see docs")
	require.NotContains(t, out, "FIXME")
}

func TestListCommandIncludeExclude(t *testing.T) {
	dir := fixtureTree(t)

	out, err := runApp(t, "list", "--exclude", "sub/**", dir)
	require.NoError(t, err)
	require.NotContains(t, out, "HACK")
	require.Contains(t, out, "TODO")

	out, err = runApp(t, "list", "--include", "util.go", dir)
	require.NoError(t, err)
	require.Contains(t, out, "FIXME")
	require.NotContains(t, out, "HACK")
}

func TestTagsCommandTable(t *testing.T) {
	out, err := runApp(t, "tags")
	require.NoError(t, err)

	require.Contains(t, out, "TAG")
	require.Contains(t, out, "TODO")
	require.Contains(t, out, "Critical")
}

func TestTagsCommandJSON(t *testing.T) {
	out, err := runApp(t, "tags", "--json")
	require.NoError(t, err)

	var catalog []todo.TagDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &catalog))
	require.Len(t, catalog, len(todo.DefaultTags))
}

func TestStatsCommand(t *testing.T) {
	out, err := runApp(t, "stats", fixtureTree(t))
	require.NoError(t, err)

	require.Contains(t, out, "Total items:      4")
	require.Contains(t, out, "Files scanned:    3")
}

func TestStatsCommandJSON(t *testing.T) {
	out, err := runApp(t, "stats", "--json", fixtureTree(t))
	require.NoError(t, err)

	var summary todo.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.Equal(t, 4, summary.TotalCount)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(dir))

	out, err := runApp(t, "init")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote .tagtree.yaml")

	data, err := os.ReadFile(".tagtree.yaml")
	require.NoError(t, err)
	require.Contains(t, string(data), "respect_gitignore")

	// Second run without --force refuses.
	_, err = runApp(t, "init")
	require.Error(t, err)

	_, err = runApp(t, "init", "--force")
	require.NoError(t, err)
}

func TestCatalogFallsBackToClassifier(t *testing.T) {
	cmd := NewTagsCmd(&Flags{})
	cmd.flags.Config = nil

	catalog := cmd.catalog()
	require.Len(t, catalog, len(todo.DefaultTags))

	custom := NewTagsCmd(&Flags{})
	cfg := custom.flags.effectiveConfig()
	cfg.Tags = []string{"CUSTOM"}
	custom.flags.Config = cfg

	got := custom.catalog()
	require.Len(t, got, 1)
	require.Equal(t, "CUSTOM", got[0].Name)
	require.Equal(t, todo.PriorityMedium, got[0].Priority)
}
