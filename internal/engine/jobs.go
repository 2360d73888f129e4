package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
)

// CreateJobRequest carries a new job's fields. Price is never supplied by the
// caller: in offers mode it stays unset until an offer is accepted; in direct
// mode it is fixed from the service catalog.
type CreateJobRequest struct {
	ServiceType   string
	Address       string
	ScheduledAt   time.Time
	PaymentMethod string
}

// CreateJob creates a pending job owned by the session customer.
func (e *Engine) CreateJob(token string, req CreateJobRequest) (domain.Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.Job{}, err
	}
	if user.Role != domain.RoleCustomer {
		return domain.Job{}, fmt.Errorf("%w: only customers create jobs", domain.ErrPermission)
	}
	if req.ServiceType == "" || req.Address == "" {
		return domain.Job{}, fmt.Errorf("%w: service type and address are required", domain.ErrValidation)
	}

	var price float64
	if e.mode == ModeDirect {
		p, ok := e.catalogPrice(req.ServiceType)
		if !ok {
			return domain.Job{}, fmt.Errorf("%w: unknown service type %q", domain.ErrValidation, req.ServiceType)
		}
		price = p
	}

	now := time.Now()
	job := &domain.Job{
		CustomerID:    user.ID,
		ServiceType:   req.ServiceType,
		Address:       req.Address,
		ScheduledAt:   req.ScheduledAt,
		Price:         price,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.JobStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	e.store.createJob(job)

	e.logger.Info("Job created",
		slog.Int64("job_id", job.ID),
		slog.Int64("customer_id", user.ID),
		slog.String("service_type", job.ServiceType),
	)

	return *job, nil
}

// AcceptJob is the direct-mode assignment path: a verified provider takes a
// pending job at the catalog price, skipping offers entirely.
func (e *Engine) AcceptJob(token string, jobID int64) (domain.Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode != ModeDirect {
		return domain.Job{}, fmt.Errorf("%w: direct acceptance is disabled in offers mode", domain.ErrPermission)
	}

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.Job{}, err
	}
	if !user.IsVerifiedProvider() {
		return domain.Job{}, fmt.Errorf("%w: only verified providers accept jobs", domain.ErrPermission)
	}

	job, ok := e.store.jobByID(jobID)
	if !ok {
		return domain.Job{}, fmt.Errorf("%w: job %d", domain.ErrNotFound, jobID)
	}
	if job.Status != domain.JobStatusPending {
		return domain.Job{}, fmt.Errorf("%w: job is %s, not PENDING", domain.ErrInvalidState, job.Status)
	}

	job.ProviderID = user.ID
	job.Status = domain.JobStatusAccepted
	job.UpdatedAt = time.Now()

	e.logger.Info("Job accepted directly",
		slog.Int64("job_id", job.ID),
		slog.Int64("provider_id", user.ID),
	)

	return *job, nil
}

// UpdateJobStatus advances a job by exactly one step along
// ACCEPTED -> IN_PROGRESS -> COMPLETED. Only the assigned provider may do
// this; any skip or backward move fails and leaves the job unchanged.
func (e *Engine) UpdateJobStatus(token string, jobID int64, newStatus string) (domain.Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	user, err := e.sessionUser(token)
	if err != nil {
		return domain.Job{}, err
	}

	job, ok := e.store.jobByID(jobID)
	if !ok {
		return domain.Job{}, fmt.Errorf("%w: job %d", domain.ErrNotFound, jobID)
	}
	if user.Role != domain.RoleProvider || job.ProviderID != user.ID {
		return domain.Job{}, fmt.Errorf("%w: only the assigned provider updates job status", domain.ErrPermission)
	}

	if domain.JobStatusRank(newStatus) < 0 {
		return domain.Job{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, newStatus)
	}

	// Providers may only walk ACCEPTED -> IN_PROGRESS -> COMPLETED one step
	// at a time. PENDING and REVIEWED are reached by other operations.
	allowed := (job.Status == domain.JobStatusAccepted && newStatus == domain.JobStatusInProgress) ||
		(job.Status == domain.JobStatusInProgress && newStatus == domain.JobStatusCompleted)
	if !allowed {
		return domain.Job{}, fmt.Errorf(
			"%w: cannot move job from %s to %s", domain.ErrInvalidState, job.Status, newStatus,
		)
	}

	job.Status = newStatus
	job.UpdatedAt = time.Now()

	kind := domain.NotifyJobStarted
	if newStatus == domain.JobStatusCompleted {
		kind = domain.NotifyJobCompleted
	}
	e.notify(job.CustomerID, job.ID, kind)

	e.logger.Info("Job status updated",
		slog.Int64("job_id", job.ID),
		slog.String("status", newStatus),
	)

	return *job, nil
}

// GetJob returns the job with the given id.
func (e *Engine) GetJob(jobID int64) (domain.Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	job, ok := e.store.jobByID(jobID)
	if !ok {
		return domain.Job{}, fmt.Errorf("%w: job %d", domain.ErrNotFound, jobID)
	}
	return *job, nil
}

// ListJobsForCustomer returns the customer's jobs, newest first.
func (e *Engine) ListJobsForCustomer(customerID int64) []domain.Job {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.listJobs(jobFilter{CustomerID: customerID})
}

// ListJobsForProvider returns the jobs assigned to the provider, newest first.
func (e *Engine) ListJobsForProvider(providerID int64) []domain.Job {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.listJobs(jobFilter{ProviderID: providerID})
}

// ListOpenJobs returns the pending jobs providers may bid on, newest first.
func (e *Engine) ListOpenJobs() []domain.Job {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.listJobs(jobFilter{Status: domain.JobStatusPending})
}
