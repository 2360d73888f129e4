package engine

import (
	"testing"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOffer(t *testing.T) {
	setup := func(t *testing.T) (*Engine, string, string, domain.Job) {
		e := newTestEngine(t, ModeOffers)
		_, customerToken := registerCustomer(t, e, "Alice", "alice@email.com")
		_, providerToken := registerVerifiedProvider(t, e, "Bob", "bob@email.com")
		job := createPendingJob(t, e, customerToken)
		return e, customerToken, providerToken, job
	}

	t.Run("verified provider bids on a pending job", func(t *testing.T) {
		e, _, providerToken, job := setup(t)

		offer, err := e.CreateOffer(providerToken, job.ID, 140)
		require.NoError(t, err)
		assert.Equal(t, domain.OfferStatusPending, offer.Status)
		assert.Equal(t, 140.0, offer.Price)
		assert.Equal(t, job.ID, offer.JobID)

		// The job itself is unchanged by a bid.
		stored, err := e.GetJob(job.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusPending, stored.Status)
	})

	t.Run("unverified provider is refused and nothing is recorded", func(t *testing.T) {
		e, _, _, job := setup(t)
		_, dianaToken := registerProvider(t, e, "Diana", "diana@email.com")

		_, err := e.CreateOffer(dianaToken, job.ID, 100)
		require.ErrorIs(t, err, domain.ErrPermission)
		assert.Empty(t, e.ListOffersForJob(job.ID))
	})

	t.Run("rejected provider is refused", func(t *testing.T) {
		e, _, _, job := setup(t)
		diana, dianaToken := registerProvider(t, e, "Diana", "diana@email.com")
		_, err := e.SetVerificationStatus(diana.ID, domain.VerificationRejected)
		require.NoError(t, err)

		_, err = e.CreateOffer(dianaToken, job.ID, 100)
		require.ErrorIs(t, err, domain.ErrPermission)
	})

	t.Run("customer cannot bid", func(t *testing.T) {
		e, customerToken, _, job := setup(t)

		_, err := e.CreateOffer(customerToken, job.ID, 100)
		require.ErrorIs(t, err, domain.ErrPermission)
	})

	t.Run("non-positive price", func(t *testing.T) {
		e, _, providerToken, job := setup(t)

		_, err := e.CreateOffer(providerToken, job.ID, 0)
		require.ErrorIs(t, err, domain.ErrValidation)

		_, err = e.CreateOffer(providerToken, job.ID, -5)
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown job", func(t *testing.T) {
		e, _, providerToken, _ := setup(t)

		_, err := e.CreateOffer(providerToken, 9999, 100)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("second pending offer on the same job conflicts", func(t *testing.T) {
		e, _, providerToken, job := setup(t)

		_, err := e.CreateOffer(providerToken, job.ID, 140)
		require.NoError(t, err)

		_, err = e.CreateOffer(providerToken, job.ID, 130)
		require.ErrorIs(t, err, domain.ErrConflict)
		assert.Len(t, e.ListOffersForJob(job.ID), 1)
	})

	t.Run("bidding on a non-pending job", func(t *testing.T) {
		e, customerToken, providerToken, job := setup(t)

		offer, err := e.CreateOffer(providerToken, job.ID, 140)
		require.NoError(t, err)
		_, err = e.AcceptOffer(customerToken, offer.ID)
		require.NoError(t, err)

		_, lateToken := registerVerifiedProvider(t, e, "Eva", "eva@email.com")
		_, err = e.CreateOffer(lateToken, job.ID, 99)
		require.ErrorIs(t, err, domain.ErrInvalidState)
	})
}

func TestAcceptOffer(t *testing.T) {
	t.Run("accepting one offer rejects every other on the job", func(t *testing.T) {
		e := newTestEngine(t, ModeOffers)
		_, c1Token := registerCustomer(t, e, "C1", "c1@email.com")
		p1, p1Token := registerVerifiedProvider(t, e, "P1", "p1@email.com")
		_, p2Token := registerVerifiedProvider(t, e, "P2", "p2@email.com")

		job := createPendingJob(t, e, c1Token)

		offer1, err := e.CreateOffer(p1Token, job.ID, 140)
		require.NoError(t, err)
		offer2, err := e.CreateOffer(p2Token, job.ID, 165)
		require.NoError(t, err)

		accepted, err := e.AcceptOffer(c1Token, offer1.ID)
		require.NoError(t, err)

		assert.Equal(t, domain.JobStatusAccepted, accepted.Status)
		assert.Equal(t, p1.ID, accepted.ProviderID)
		assert.Equal(t, 140.0, accepted.Price)

		offers := e.ListOffersForJob(job.ID)
		require.Len(t, offers, 2)

		var acceptedCount, rejectedCount int
		for _, o := range offers {
			switch o.Status {
			case domain.OfferStatusAccepted:
				acceptedCount++
				assert.Equal(t, offer1.ID, o.ID)
			case domain.OfferStatusRejected:
				rejectedCount++
				assert.Equal(t, offer2.ID, o.ID)
			}
		}
		assert.Equal(t, 1, acceptedCount)
		assert.Equal(t, 1, rejectedCount)
	})

	t.Run("single offer ends accepted", func(t *testing.T) {
		e := newTestEngine(t, ModeOffers)
		_, customerToken := registerCustomer(t, e, "Alice", "alice@email.com")
		_, providerToken := registerVerifiedProvider(t, e, "Bob", "bob@email.com")

		job := createPendingJob(t, e, customerToken)
		offer, err := e.CreateOffer(providerToken, job.ID, 80)
		require.NoError(t, err)

		_, err = e.AcceptOffer(customerToken, offer.ID)
		require.NoError(t, err)

		offers := e.ListOffersForJob(job.ID)
		require.Len(t, offers, 1)
		assert.Equal(t, domain.OfferStatusAccepted, offers[0].Status)
	})

	t.Run("unknown offer", func(t *testing.T) {
		e := newTestEngine(t, ModeOffers)
		_, customerToken := registerCustomer(t, e, "Alice", "alice@email.com")

		_, err := e.AcceptOffer(customerToken, 9999)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("only the job's customer accepts", func(t *testing.T) {
		e := newTestEngine(t, ModeOffers)
		_, aliceToken := registerCustomer(t, e, "Alice", "alice@email.com")
		_, charlieToken := registerCustomer(t, e, "Charlie", "charlie@email.com")
		_, bobToken := registerVerifiedProvider(t, e, "Bob", "bob@email.com")

		job := createPendingJob(t, e, aliceToken)
		offer, err := e.CreateOffer(bobToken, job.ID, 80)
		require.NoError(t, err)

		_, err = e.AcceptOffer(charlieToken, offer.ID)
		require.ErrorIs(t, err, domain.ErrPermission)

		// The provider cannot accept their own offer either.
		_, err = e.AcceptOffer(bobToken, offer.ID)
		require.ErrorIs(t, err, domain.ErrPermission)
	})

	t.Run("already resolved offer", func(t *testing.T) {
		e := newTestEngine(t, ModeOffers)
		_, customerToken := registerCustomer(t, e, "Alice", "alice@email.com")
		_, bobToken := registerVerifiedProvider(t, e, "Bob", "bob@email.com")
		_, evaToken := registerVerifiedProvider(t, e, "Eva", "eva@email.com")

		job := createPendingJob(t, e, customerToken)
		bobOffer, err := e.CreateOffer(bobToken, job.ID, 80)
		require.NoError(t, err)
		evaOffer, err := e.CreateOffer(evaToken, job.ID, 95)
		require.NoError(t, err)

		_, err = e.AcceptOffer(customerToken, bobOffer.ID)
		require.NoError(t, err)

		_, err = e.AcceptOffer(customerToken, evaOffer.ID)
		require.ErrorIs(t, err, domain.ErrInvalidState)

		_, err = e.AcceptOffer(customerToken, bobOffer.ID)
		require.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("offering providers are notified of the outcome", func(t *testing.T) {
		e := newTestEngine(t, ModeOffers)
		_, customerToken := registerCustomer(t, e, "Alice", "alice@email.com")
		_, bobToken := registerVerifiedProvider(t, e, "Bob", "bob@email.com")
		_, evaToken := registerVerifiedProvider(t, e, "Eva", "eva@email.com")

		job := createPendingJob(t, e, customerToken)
		bobOffer, err := e.CreateOffer(bobToken, job.ID, 80)
		require.NoError(t, err)
		_, err = e.CreateOffer(evaToken, job.ID, 95)
		require.NoError(t, err)

		_, err = e.AcceptOffer(customerToken, bobOffer.ID)
		require.NoError(t, err)

		bobFeed, err := e.ListNotifications(bobToken)
		require.NoError(t, err)
		require.NotEmpty(t, bobFeed)
		assert.Equal(t, domain.NotifyOfferAccepted, bobFeed[0].Kind)

		evaFeed, err := e.ListNotifications(evaToken)
		require.NoError(t, err)
		require.NotEmpty(t, evaFeed)
		assert.Equal(t, domain.NotifyOfferRejected, evaFeed[0].Kind)
	})
}

func TestListOffersByProvider(t *testing.T) {
	e := newTestEngine(t, ModeOffers)
	_, aliceToken := registerCustomer(t, e, "Alice", "alice@email.com")
	bob, bobToken := registerVerifiedProvider(t, e, "Bob", "bob@email.com")

	j1 := createPendingJob(t, e, aliceToken)
	j2 := createPendingJob(t, e, aliceToken)

	_, err := e.CreateOffer(bobToken, j1.ID, 70)
	require.NoError(t, err)
	o2, err := e.CreateOffer(bobToken, j2.ID, 85)
	require.NoError(t, err)

	offers := e.ListOffersByProvider(bob.ID)
	require.Len(t, offers, 2)
	assert.Equal(t, o2.ID, offers[0].ID)
}
