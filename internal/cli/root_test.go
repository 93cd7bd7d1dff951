package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvarley/taskdeck/internal/constants"
	"github.com/kvarley/taskdeck/internal/errors"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(constants.EnvHome, t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "test"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	defer CloseLogFile()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("no arguments shows help", func(t *testing.T) {
		out, err := executeRoot(t)
		require.NoError(t, err)
		assert.Contains(t, out, "taskdeck")
		assert.Contains(t, out, "Available Commands")
	})

	t.Run("rejects invalid output format", func(t *testing.T) {
		_, err := executeRoot(t, "--output", "yaml")
		require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})

	t.Run("verbose and quiet are mutually exclusive", func(t *testing.T) {
		_, err := executeRoot(t, "-v", "-q")
		require.Error(t, err)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := executeRoot(t, "frobnicate")
		require.Error(t, err)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})
}

func TestRunVersion(t *testing.T) {
	info := BuildInfo{Version: "1.2.0", Commit: "abc1234", Date: "2025-03-10"}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runVersion(&buf, info, OutputText))
		assert.Contains(t, buf.String(), "taskdeck 1.2.0")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runVersion(&buf, info, OutputJSON))
		assert.JSONEq(t, `{"version":"1.2.0","commit":"abc1234","date":"2025-03-10"}`, buf.String())
	})
}

func TestFormatVersion(t *testing.T) {
	t.Run("full build info", func(t *testing.T) {
		got := formatVersion(BuildInfo{Version: "1.2.0", Commit: "abc1234", Date: "2025-03-10"})
		assert.Equal(t, "1.2.0 (commit: abc1234, built: 2025-03-10)", got)
	})

	t.Run("empty fields fall back", func(t *testing.T) {
		got := formatVersion(BuildInfo{})
		assert.Equal(t, "dev (commit: none, built: unknown)", got)
	})
}
