package domain

import "time"

// Notification kinds
const (
	NotifyOfferReceived  = "OFFER_RECEIVED"
	NotifyOfferAccepted  = "OFFER_ACCEPTED"
	NotifyOfferRejected  = "OFFER_REJECTED"
	NotifyJobStarted     = "JOB_STARTED"
	NotifyJobCompleted   = "JOB_COMPLETED"
	NotifyReviewReceived = "REVIEW_RECEIVED"
)

// Notification is an in-memory feed entry for a user, appended by engine
// operations as a side effect of lifecycle transitions.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	JobID     int64     `json:"job_id"`
	Kind      string    `json:"kind"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
