package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
	flexerrors "github.com/alexisbeaulieu97/flexplay/pkg/errors"
)

func stubEditorRunner(t *testing.T) *bool {
	t.Helper()
	called := false
	original := editorRunner
	editorRunner = func(*AppContext, *playground.Session) error {
		called = true
		return nil
	}
	t.Cleanup(func() { editorRunner = original })
	return &called
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flexplay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRootCommandPrintsCSSWithoutTerminal(t *testing.T) {
	called := stubEditorRunner(t)

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	require.False(t, *called, "editor must not start without a terminal")

	output := buf.String()
	require.Contains(t, output, ".container {\n")
	require.Contains(t, output, "  justify-content: center;\n")
	require.Contains(t, output, ".item-3 {")
	require.NotContains(t, output, ".item-4 {")
}

func TestRootCommandUsesConfigFile(t *testing.T) {
	stubEditorRunner(t)
	path := writeConfig(t, `items: 2
container:
  flex_direction: column
`)

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"--config", path})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "  flex-direction: column;\n")
	require.Contains(t, output, "  height: 60px;\n")
	require.Contains(t, output, ".item-2 {")
	require.NotContains(t, output, ".item-3 {")
}

func TestRootCommandRejectsInvalidConfig(t *testing.T) {
	stubEditorRunner(t)
	path := writeConfig(t, `orientation: upside-down
`)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"-c", path})

	err := root.Execute()

	var validationErr *flexerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "orientation", validationErr.Field)
}

func TestRootCommandRejectsArguments(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"unexpected"})

	require.Error(t, root.Execute())
}

func TestRootCommandWritesLogFile(t *testing.T) {
	stubEditorRunner(t)
	logPath := filepath.Join(t.TempDir(), "flexplay.log")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--log-file", logPath, "--verbose"})

	require.NoError(t, root.Execute())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "stdout is not a terminal")
}

func TestRootCommandRejectsBadLogLevel(t *testing.T) {
	stubEditorRunner(t)

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--log-file", filepath.Join(t.TempDir(), "x.log"), "--log-level", "chatty"})

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse log level")
}
