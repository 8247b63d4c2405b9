package cli

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/terminate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(ok bool, err error) (confirmFunc, *int) {
	asked := 0
	return func(int, terminate.Signal) (bool, error) {
		asked++
		return ok, err
	}, &asked
}

func TestKillCommand_InvalidPID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-5", "12abc", ""} {
		t.Run(arg, func(t *testing.T) {
			term := &recordingTerminator{}
			confirm, asked := answer(true, nil)

			err := killCommand(&bytes.Buffer{}, arg, KillOptions{}, term, confirm)

			assert.True(t, errors.IsCode(err, errors.ErrSignal))
			assert.Empty(t, term.calls)
			assert.Zero(t, *asked)
		})
	}
}

func TestKillCommand_Confirmed(t *testing.T) {
	term := &recordingTerminator{}
	confirm, asked := answer(true, nil)
	var buf bytes.Buffer

	require.NoError(t, killCommand(&buf, "1234", KillOptions{}, term, confirm))

	assert.Equal(t, 1, *asked)
	assert.Equal(t, []killCall{{1234, terminate.Polite}}, term.calls)
	assert.Contains(t, buf.String(), "Sent SIGTERM to 1234.")
}

func TestKillCommand_Declined(t *testing.T) {
	term := &recordingTerminator{}
	confirm, _ := answer(false, nil)
	var buf bytes.Buffer

	require.NoError(t, killCommand(&buf, "1234", KillOptions{}, term, confirm))

	assert.Empty(t, term.calls)
	assert.Contains(t, buf.String(), "Cancelled.")
}

func TestKillCommand_YesSkipsPrompt(t *testing.T) {
	term := &recordingTerminator{}
	confirm, asked := answer(false, nil)

	require.NoError(t, killCommand(&bytes.Buffer{}, "42", KillOptions{Yes: true, Force: true}, term, confirm))

	assert.Zero(t, *asked)
	assert.Equal(t, []killCall{{42, terminate.Forceful}}, term.calls)
}

func TestKillCommand_Errors(t *testing.T) {
	t.Run("prompt failure", func(t *testing.T) {
		term := &recordingTerminator{}
		promptErr := errors.New(errors.ErrTerminal, "no tty", "")
		confirm, _ := answer(false, promptErr)

		err := killCommand(&bytes.Buffer{}, "42", KillOptions{}, term, confirm)
		assert.ErrorIs(t, err, promptErr)
		assert.Empty(t, term.calls)
	})

	t.Run("signal failure", func(t *testing.T) {
		denied := stderrors.New("operation not permitted")
		term := &recordingTerminator{err: denied}
		var buf bytes.Buffer

		err := killCommand(&buf, "42", KillOptions{Yes: true}, term, nil)
		assert.ErrorIs(t, err, denied)
		assert.Len(t, term.calls, 1)
		assert.Empty(t, buf.String())
	})
}
