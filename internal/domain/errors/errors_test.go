package errors

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWithDetails_MatchesSentinel(t *testing.T) {
	decorated := ErrInvalidTimezone.WithDetails("Mars/Olympus")

	assert.ErrorIs(t, decorated, ErrInvalidTimezone)
	assert.ErrorIs(t, pkgerrors.Wrap(decorated, "next meal"), ErrInvalidTimezone)
	assert.ErrorIs(t, decorated.WithDetails("again"), ErrInvalidTimezone)
	assert.Equal(t, "Mars/Olympus", decorated.Details())
	assert.Empty(t, ErrInvalidTimezone.Details())
}

func TestWithDetails_DoesNotMatchOtherSentinels(t *testing.T) {
	decorated := ErrValidationFailed.WithDetails("pet name is required")

	assert.NotErrorIs(t, decorated, ErrInvalidTimezone)
	assert.NotErrorIs(t, ErrValidationFailed, decorated)
	assert.ErrorIs(t, ErrValidationFailed, ErrValidationFailed)
}
