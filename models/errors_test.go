package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorClasses(t *testing.T) {
	t.Run("wrapped class is detectable", func(t *testing.T) {
		err := NewPreconditionError("no approved pay policy found")
		require.True(t, errors.Is(err, ErrPrecondition))
		require.False(t, errors.Is(err, ErrValidation))
		require.Equal(t, "no approved pay policy found", HumanMessage(err))
	})
	t.Run("plain error keeps its message", func(t *testing.T) {
		require.Equal(t, "boom", HumanMessage(errors.New("boom")))
		require.Equal(t, "", HumanMessage(nil))
	})
}

func TestFeedbackStatusFlow(t *testing.T) {
	require.True(t, FeedbackPending.IsAllowChange(FeedbackResolved))
	require.True(t, FeedbackPending.IsAllowChange(FeedbackReviewed))
	require.True(t, FeedbackResolved.IsAllowChange(FeedbackReviewed))
	require.False(t, FeedbackReviewed.IsAllowChange(FeedbackResolved))
	require.False(t, FeedbackResolved.IsAllowChange(FeedbackResolved))
	require.False(t, FeedbackReviewed.IsAllowChange(FeedbackPending))
	require.False(t, FeedbackPending.IsAllowChange("Closed"))
}
