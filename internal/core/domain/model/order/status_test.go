package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Placed, order.Accepted, order.Preparing, order.Ready,
			order.Delivering, order.Completed, order.Rejected, order.Cancelled,
		} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
		assert.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PLACED", order.Placed.String())
	assert.Equal(t, "DELIVERING", order.Delivering.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Placed, order.Accepted, order.Preparing, order.Ready,
			order.Delivering, order.Completed, order.Rejected, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown input", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Rejected.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.Delivering.IsTerminal())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("happy path for a delivery order", func(t *testing.T) {
		s := order.Placed

		s, err := s.Accept()
		require.NoError(t, err)
		s, err = s.StartPreparing()
		require.NoError(t, err)
		s, err = s.MarkReady()
		require.NoError(t, err)
		s, err = s.StartDelivering()
		require.NoError(t, err)
		s, err = s.Complete()
		require.NoError(t, err)

		assert.Equal(t, order.Completed, s)
	})

	t.Run("accept and reject are mutually exclusive from PLACED", func(t *testing.T) {
		accepted, err := order.Placed.Accept()
		require.NoError(t, err)

		_, err = accepted.Reject()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		rejected, err := order.Placed.Reject()
		require.NoError(t, err)
		_, err = rejected.Accept()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("double accept fails", func(t *testing.T) {
		accepted, err := order.Placed.Accept()
		require.NoError(t, err)

		_, err = accepted.Accept()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cancel allowed from PLACED and ACCEPTED only", func(t *testing.T) {
		_, err := order.Placed.Cancel()
		require.NoError(t, err)
		_, err = order.Accepted.Cancel()
		require.NoError(t, err)

		for _, s := range []order.Status{
			order.Preparing, order.Ready, order.Delivering,
			order.Completed, order.Rejected, order.Cancelled,
		} {
			_, err = s.Cancel()
			assert.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})

	t.Run("complete allowed from READY and DELIVERING only", func(t *testing.T) {
		_, err := order.Ready.Complete()
		require.NoError(t, err)
		_, err = order.Delivering.Complete()
		require.NoError(t, err)

		for _, s := range []order.Status{
			order.Placed, order.Accepted, order.Preparing,
			order.Completed, order.Rejected, order.Cancelled,
		} {
			_, err = s.Complete()
			assert.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})

	t.Run("terminal statuses admit no transitions", func(t *testing.T) {
		for _, s := range []order.Status{order.Completed, order.Rejected, order.Cancelled} {
			_, err := s.Accept()
			assert.Error(t, err)
			_, err = s.StartPreparing()
			assert.Error(t, err)
			_, err = s.StartDelivering()
			assert.Error(t, err)
			_, err = s.Complete()
			assert.Error(t, err)
		}
	})
}
