package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

// CreateOffer records a verified provider's bid on a pending job and notifies
// the job's customer. A provider holds at most one pending offer per job.
func (e *Engine) CreateOffer(token string, jobID int64, price float64) (domain.Offer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.Offer{}, err
	}
	if !user.IsVerifiedProvider() {
		return domain.Offer{}, fmt.Errorf("%w: only verified providers make offers", domain.ErrPermission)
	}
	if price <= 0 {
		return domain.Offer{}, fmt.Errorf("%w: offer price must be positive", domain.ErrValidation)
	}

	job, ok := e.store.jobByID(jobID)
	if !ok {
		return domain.Offer{}, fmt.Errorf("%w: job %d", domain.ErrNotFound, jobID)
	}
	if job.Status != domain.JobStatusPending {
		return domain.Offer{}, fmt.Errorf("%w: job is %s, not PENDING", domain.ErrInvalidState, job.Status)
	}
	if e.store.pendingOfferExists(jobID, user.ID) {
		return domain.Offer{}, fmt.Errorf("%w: provider already has a pending offer on this job", domain.ErrConflict)
	}

	offer := &domain.Offer{
		JobID:      jobID,
		ProviderID: user.ID,
		Price:      price,
		Status:     domain.OfferStatusPending,
		CreatedAt:  time.Now(),
	}
	e.store.createOffer(offer)
	e.notify(job.CustomerID, jobID, domain.NotifyOfferReceived)

	e.logger.Info("Offer created",
		slog.Int64("offer_id", offer.ID),
		slog.Int64("job_id", jobID),
		slog.Int64("provider_id", user.ID),
		slog.Float64("price", price),
	)

	return *offer, nil
}

// AcceptOffer lets the customer owning the job take one offer. Atomically:
// the job gets the offer's provider and price and moves to ACCEPTED, the
// chosen offer moves to ACCEPTED, and every other offer on the job moves to
// REJECTED. Each offering provider is notified of the outcome.
func (e *Engine) AcceptOffer(token string, offerID int64) (domain.Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.Job{}, err
	}

	offer, ok := e.store.offerByID(offerID)
	if !ok {
		return domain.Job{}, fmt.Errorf("%w: offer %d", domain.ErrNotFound, offerID)
	}

	job, ok := e.store.jobByID(offer.JobID)
	if !ok {
		return domain.Job{}, fmt.Errorf("%w: job %d", domain.ErrNotFound, offer.JobID)
	}
	if user.Role != domain.RoleCustomer || job.CustomerID != user.ID {
		return domain.Job{}, fmt.Errorf("%w: only the job's customer accepts offers", domain.ErrPermission)
	}
	if offer.Status != domain.OfferStatusPending {
		return domain.Job{}, fmt.Errorf("%w: offer is %s, not PENDING", domain.ErrInvalidState, offer.Status)
	}
	if job.Status != domain.JobStatusPending {
		return domain.Job{}, fmt.Errorf("%w: job is %s, not PENDING", domain.ErrInvalidState, job.Status)
	}

	job.ProviderID = offer.ProviderID
	job.Price = offer.Price
	job.Status = domain.JobStatusAccepted
	job.UpdatedAt = time.Now()

	for _, other := range e.store.offers {
		if other.JobID != job.ID {
			continue
		}
		if other.ID == offer.ID {
			other.Status = domain.OfferStatusAccepted
			e.notify(other.ProviderID, job.ID, domain.NotifyOfferAccepted)
		} else if other.Status == domain.OfferStatusPending {
			other.Status = domain.OfferStatusRejected
			e.notify(other.ProviderID, job.ID, domain.NotifyOfferRejected)
		}
	}

	e.logger.Info("Offer accepted",
		slog.Int64("offer_id", offer.ID),
		slog.Int64("job_id", job.ID),
		slog.Int64("provider_id", offer.ProviderID),
		slog.Float64("price", offer.Price),
	)

	return *job, nil
}

// ListOffersForJob returns all offers on a job, newest first.
func (e *Engine) ListOffersForJob(jobID int64) []domain.Offer {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.listOffers(offerFilter{JobID: jobID})
}

// ListOffersByProvider returns all offers made by a provider, newest first.
func (e *Engine) ListOffersByProvider(providerID int64) []domain.Offer {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.listOffers(offerFilter{ProviderID: providerID})
}
