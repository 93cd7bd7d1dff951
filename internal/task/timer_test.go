package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deckerrors "github.com/kvarley/taskdeck/internal/errors"
)

func TestReviewTimers(t *testing.T) {
	keyA := LinkKey{TaskID: 1, SubtaskID: 1, LinkID: 1}
	keyB := LinkKey{TaskID: 1, SubtaskID: 1, LinkID: 2}

	t.Run("elapsed tracks the clock", func(t *testing.T) {
		clk := newMockClock(testNow)
		rt := NewReviewTimers(clk)

		rt.Start(keyA)
		clk.Advance(42 * time.Second)

		got, err := rt.Elapsed(keyA)
		require.NoError(t, err)
		assert.Equal(t, 42*time.Second, got)
	})

	t.Run("starting another link resets the timer", func(t *testing.T) {
		clk := newMockClock(testNow)
		rt := NewReviewTimers(clk)

		rt.Start(keyA)
		clk.Advance(30 * time.Second)
		rt.Start(keyB)

		_, err := rt.Elapsed(keyA)
		require.ErrorIs(t, err, deckerrors.ErrReviewNotStarted)

		got, err := rt.Elapsed(keyB)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("restarting the same link resets to zero", func(t *testing.T) {
		clk := newMockClock(testNow)
		rt := NewReviewTimers(clk)

		rt.Start(keyA)
		clk.Advance(time.Minute)
		rt.Start(keyA)

		got, err := rt.Elapsed(keyA)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("stop returns elapsed and clears", func(t *testing.T) {
		clk := newMockClock(testNow)
		rt := NewReviewTimers(clk)

		rt.Start(keyA)
		clk.Advance(90 * time.Second)

		got, ok := rt.Stop(keyA)
		require.True(t, ok)
		assert.Equal(t, 90*time.Second, got)

		_, err := rt.Elapsed(keyA)
		require.ErrorIs(t, err, deckerrors.ErrReviewNotStarted)
	})

	t.Run("stop without start", func(t *testing.T) {
		rt := NewReviewTimers(newMockClock(testNow))

		got, ok := rt.Stop(keyA)
		assert.False(t, ok)
		assert.Zero(t, got)
	})

	t.Run("elapsed without start", func(t *testing.T) {
		rt := NewReviewTimers(newMockClock(testNow))

		_, err := rt.Elapsed(keyA)
		require.ErrorIs(t, err, deckerrors.ErrReviewNotStarted)
	})
}
