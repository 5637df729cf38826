package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_status_validate(t *testing.T) {
	for _, s := range []Status{Pending, Accepted, Completed, Cancelled} {
		assert.NoError(t, s.Validate())
	}
	assert.Error(t, Unknown.Validate())
	assert.Error(t, Status(99).Validate())
}

func Test_status_string(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "accepted", Accepted.String())
	assert.Equal(t, "completed", Completed.String())
	assert.Equal(t, "cancelled", Cancelled.String())
	assert.Equal(t, "Unknown", Status(99).String())
}

func Test_status_is_terminal(t *testing.T) {
	assert.False(t, Pending.IsTerminal())
	assert.False(t, Accepted.IsTerminal())
	assert.True(t, Completed.IsTerminal())
	assert.True(t, Cancelled.IsTerminal())
}

func Test_status_accept_transitions(t *testing.T) {
	next, err := Pending.Accept()
	require.NoError(t, err)
	assert.Equal(t, Accepted, next)

	for _, s := range []Status{Accepted, Completed, Cancelled} {
		_, err := s.Accept()
		assert.Error(t, err, s.String())
	}
}

func Test_status_return_transitions(t *testing.T) {
	next, err := Accepted.Return()
	require.NoError(t, err)
	assert.Equal(t, Pending, next)

	for _, s := range []Status{Pending, Completed, Cancelled} {
		_, err := s.Return()
		assert.Error(t, err, s.String())
	}
}

func Test_status_complete_transitions(t *testing.T) {
	next, err := Accepted.Complete()
	require.NoError(t, err)
	assert.Equal(t, Completed, next)

	for _, s := range []Status{Pending, Completed, Cancelled} {
		_, err := s.Complete()
		assert.Error(t, err, s.String())
	}
}

func Test_status_cancel_transitions(t *testing.T) {
	for _, s := range []Status{Pending, Accepted} {
		next, err := s.Cancel()
		require.NoError(t, err, s.String())
		assert.Equal(t, Cancelled, next)
	}

	for _, s := range []Status{Completed, Cancelled} {
		_, err := s.Cancel()
		assert.Error(t, err, s.String())
	}
}

func Test_status_can_have_driver(t *testing.T) {
	assert.NoError(t, Pending.ValidateCanHaveDriver(false))
	assert.Error(t, Pending.ValidateCanHaveDriver(true))

	assert.NoError(t, Accepted.ValidateCanHaveDriver(true))
	assert.Error(t, Accepted.ValidateCanHaveDriver(false))

	assert.NoError(t, Completed.ValidateCanHaveDriver(true))
	assert.Error(t, Completed.ValidateCanHaveDriver(false))

	assert.NoError(t, Cancelled.ValidateCanHaveDriver(true))
	assert.NoError(t, Cancelled.ValidateCanHaveDriver(false))
}
