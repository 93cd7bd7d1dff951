package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvarley/taskdeck/internal/errors"
)

func TestIsValidOutputFormat(t *testing.T) {
	assert.True(t, IsValidOutputFormat(OutputText))
	assert.True(t, IsValidOutputFormat(OutputJSON))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat(""))
}

func TestValidOutputFormats(t *testing.T) {
	assert.Equal(t, []string{OutputText, OutputJSON}, ValidOutputFormats())
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"generic error", stderrors.New("boom"), ExitError},
		{"invalid output format", errors.ErrInvalidOutputFormat, ExitInvalidInput},
		{"invalid argument", errors.ErrInvalidArgument, ExitInvalidInput},
		{"empty value", errors.ErrEmptyValue, ExitInvalidInput},
		{"wrapped invalid argument", errors.Wrap(errors.ErrInvalidArgument, "task id"), ExitInvalidInput},
		{"cobra unknown flag", stderrors.New(`unknown flag: --frobnicate`), ExitInvalidInput},
		{"cobra unknown command", stderrors.New(`unknown command "frob" for "taskdeck"`), ExitInvalidInput},
		{"cobra mutually exclusive", stderrors.New("if any flags in the group [verbose quiet] are set none of the others can be"), ExitInvalidInput},
		{"persistence failure", errors.ErrPersistence, ExitError},
		{"task not found", errors.ErrTaskNotFound, ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}

func TestParseID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := parseID("task id", "42")
		assert.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	tests := []struct {
		name string
		raw  string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-3"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseID("task id", tt.raw)
			assert.ErrorIs(t, err, errors.ErrInvalidArgument)
		})
	}
}
