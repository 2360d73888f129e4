package engine

import (
	"testing"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications(t *testing.T) {
	setup := func(t *testing.T) (*Engine, string, string) {
		e := newTestEngine(t, ModeOffers)
		_, customerToken := registerCustomer(t, e, "Alice", "alice@email.com")
		_, providerToken := registerVerifiedProvider(t, e, "Bob", "bob@email.com")
		return e, customerToken, providerToken
	}

	t.Run("customer is notified of new offers", func(t *testing.T) {
		e, customerToken, providerToken := setup(t)
		job := createPendingJob(t, e, customerToken)

		_, err := e.CreateOffer(providerToken, job.ID, 90)
		require.NoError(t, err)

		feed, err := e.ListNotifications(customerToken)
		require.NoError(t, err)
		require.Len(t, feed, 1)
		assert.Equal(t, domain.NotifyOfferReceived, feed[0].Kind)
		assert.Equal(t, job.ID, feed[0].JobID)
		assert.False(t, feed[0].Read)
	})

	t.Run("customer is notified as the provider advances the job", func(t *testing.T) {
		e, customerToken, providerToken := setup(t)
		job := createCompletedJob(t, e, customerToken, providerToken)

		feed, err := e.ListNotifications(customerToken)
		require.NoError(t, err)

		var kinds []string
		for _, n := range feed {
			if n.JobID == job.ID {
				kinds = append(kinds, n.Kind)
			}
		}
		// Newest first: completed, started, offer received.
		assert.Equal(t, []string{
			domain.NotifyJobCompleted,
			domain.NotifyJobStarted,
			domain.NotifyOfferReceived,
		}, kinds)
	})

	t.Run("marking read", func(t *testing.T) {
		e, customerToken, providerToken := setup(t)
		job := createPendingJob(t, e, customerToken)
		_, err := e.CreateOffer(providerToken, job.ID, 90)
		require.NoError(t, err)

		feed, err := e.ListNotifications(customerToken)
		require.NoError(t, err)
		require.Len(t, feed, 1)

		n, err := e.MarkNotificationRead(customerToken, feed[0].ID)
		require.NoError(t, err)
		assert.True(t, n.Read)
	})

	t.Run("cannot mark another user's notification", func(t *testing.T) {
		e, customerToken, providerToken := setup(t)
		job := createPendingJob(t, e, customerToken)
		_, err := e.CreateOffer(providerToken, job.ID, 90)
		require.NoError(t, err)

		feed, err := e.ListNotifications(customerToken)
		require.NoError(t, err)
		require.Len(t, feed, 1)

		_, err = e.MarkNotificationRead(providerToken, feed[0].ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("listing requires a session", func(t *testing.T) {
		e, _, _ := setup(t)

		_, err := e.ListNotifications("bogus")
		require.ErrorIs(t, err, domain.ErrPermission)
	})
}
