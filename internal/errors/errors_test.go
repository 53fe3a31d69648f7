package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchError(t *testing.T) {
	t.Run("message_includes_code_and_cause", func(t *testing.T) {
		err := Wrap(fmt.Errorf("exit status 2"), ErrCommandFailed, "running template commands")
		assert.Equal(t, "[COMMAND_FAILED] running template commands: exit status 2", err.Error())
	})

	t.Run("wrap_nil_returns_nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrInternal, "nothing"))
	})

	t.Run("is_matches_on_code", func(t *testing.T) {
		err := fmt.Errorf("resolve: %w", Newf(ErrColorChannel, "channel %q out of range", "256"))
		assert.True(t, errors.Is(err, New(ErrColorChannel, "")))
		assert.False(t, errors.Is(err, New(ErrEmptyCommand, "")))
		assert.True(t, IsErrorCode(err, ErrColorChannel))
		assert.Equal(t, ErrColorChannel, GetErrorCode(err))
	})

	t.Run("unknown_for_plain_errors", func(t *testing.T) {
		err := errors.New("plain")
		assert.Equal(t, ErrUnknown, GetErrorCode(err))
		assert.Nil(t, GetErrorDetails(err))
		assert.Zero(t, Line(err))
	})

	t.Run("line_detail", func(t *testing.T) {
		err := New(ErrEmptyCommand, "empty").WithDetail("line", 7)
		assert.Equal(t, 7, Line(err))
	})
}
