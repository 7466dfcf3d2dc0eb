package affiliation_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/affiliation"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(t *testing.T) *affiliation.Request {
	t.Helper()

	request, err := affiliation.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return request
}

func TestNewRequest(t *testing.T) {
	t.Run("should start pending", func(t *testing.T) {
		request := newPendingRequest(t)

		assert.Equal(t, affiliation.Pending, request.Status())
		assert.True(t, request.IsPending())
	})
}

func TestRequest_Accept(t *testing.T) {
	t.Run("should resolve a pending request", func(t *testing.T) {
		request := newPendingRequest(t)

		require.NoError(t, request.Accept())
		assert.Equal(t, affiliation.Accepted, request.Status())
	})

	t.Run("should reject accepting twice", func(t *testing.T) {
		request := newPendingRequest(t)
		require.NoError(t, request.Accept())

		err := request.Accept()

		require.Error(t, err)
		require.ErrorIs(t, err, affiliation.ErrRequestAlreadyResolved)
	})

	t.Run("should reject accepting a rejected request", func(t *testing.T) {
		request := newPendingRequest(t)
		require.NoError(t, request.Reject())

		err := request.Accept()

		require.Error(t, err)
		require.ErrorIs(t, err, affiliation.ErrRequestAlreadyResolved)
		assert.Equal(t, affiliation.Rejected, request.Status())
	})
}

func TestRequest_Supersede(t *testing.T) {
	t.Run("should retire an accepted affiliation", func(t *testing.T) {
		request := newPendingRequest(t)
		require.NoError(t, request.Accept())

		require.NoError(t, request.Supersede())
		assert.Equal(t, affiliation.Superseded, request.Status())
	})

	t.Run("should reject superseding a pending request", func(t *testing.T) {
		request := newPendingRequest(t)

		err := request.Supersede()

		require.Error(t, err)
		require.ErrorIs(t, err, affiliation.ErrRequestAlreadyResolved)
	})
}

func TestRestoreRequest(t *testing.T) {
	t.Run("should restore an accepted request", func(t *testing.T) {
		courierID := kernel.NewUUID()

		restored, err := affiliation.RestoreRequest(
			kernel.NewUUID(), courierID, kernel.NewUUID(),
			affiliation.Accepted, time.Now().UTC(),
		)

		require.NoError(t, err)
		assert.Equal(t, affiliation.Accepted, restored.Status())
		assert.True(t, restored.Courier().IsEqual(courierID))
		assert.False(t, restored.IsPending())
	})

	t.Run("should reject an undefined status", func(t *testing.T) {
		_, err := affiliation.RestoreRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			affiliation.UnknownRequestStatus, time.Now().UTC(),
		)

		require.Error(t, err)
	})
}
