package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

// SubmitReview records the session user's rating of their counterpart on a
// completed job. The customer's review fills the customer-direction slot and
// rates the provider; the provider's review fills the other slot and rates
// the customer. Each direction is settable exactly once. Any review moves the
// job to REVIEWED, even while the other slot is still empty.
func (e *Engine) SubmitReview(token string, jobID int64, rating int, text string) (domain.Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.Job{}, err
	}

	if rating < 1 || rating > 5 {
		return domain.Job{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	job, ok := e.store.jobByID(jobID)
	if !ok {
		return domain.Job{}, fmt.Errorf("%w: job %d", domain.ErrNotFound, jobID)
	}
	if user.ID != job.CustomerID && user.ID != job.ProviderID {
		return domain.Job{}, fmt.Errorf("%w: only the job's parties submit reviews", domain.ErrPermission)
	}
	if domain.JobStatusRank(job.Status) < domain.JobStatusRank(domain.JobStatusCompleted) {
		return domain.Job{}, fmt.Errorf("%w: job is %s, reviews open at COMPLETED", domain.ErrInvalidState, job.Status)
	}

	var revieweeID int64
	byCustomer := user.ID == job.CustomerID
	if byCustomer {
		revieweeID = job.ProviderID
	} else {
		revieweeID = job.CustomerID
	}

	reviewee, ok := e.store.userByID(revieweeID)
	if !ok {
		return domain.Job{}, fmt.Errorf("%w: reviewee %d", domain.ErrNotFound, revieweeID)
	}

	if byCustomer && job.CustomerRating != 0 || !byCustomer && job.ProviderRating != 0 {
		return domain.Job{}, fmt.Errorf("%w: review already submitted for this direction", domain.ErrConflict)
	}

	if byCustomer {
		job.CustomerRating = rating
		job.CustomerReview = text
	} else {
		job.ProviderRating = rating
		job.ProviderReview = text
	}
	job.Status = domain.JobStatusReviewed
	job.UpdatedAt = time.Now()

	applyRating(reviewee, rating)
	e.notify(reviewee.ID, job.ID, domain.NotifyReviewReceived)

	e.logger.Info("Review submitted",
		slog.Int64("job_id", job.ID),
		slog.Int64("reviewer_id", user.ID),
		slog.Int64("reviewee_id", reviewee.ID),
		slog.Int("rating", rating),
	)

	return *job, nil
}
