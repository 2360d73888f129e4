package domain

import "time"

// Job status constants. A job only ever moves forward through these.
const (
	JobStatusPending    = "PENDING"
	JobStatusAccepted   = "ACCEPTED"
	JobStatusInProgress = "IN_PROGRESS"
	JobStatusCompleted  = "COMPLETED"
	JobStatusReviewed   = "REVIEWED"
)

// Job is a requested cleaning service moving through a fixed lifecycle.
//
// ProviderID is zero until the job is accepted (directly or via an offer) and
// set from then on. Price follows the same rule in competitive-offer mode; in
// direct mode it is fixed from the service catalog at creation.
//
// The two review slots are independent: CustomerRating/CustomerReview are
// given by the customer about the provider, ProviderRating/ProviderReview by
// the provider about the customer. Each slot is settable at most once.
type Job struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customer_id"`
	ProviderID     int64     `json:"provider_id,omitempty"`
	ServiceType    string    `json:"service_type"`
	Address        string    `json:"address"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	Price          float64   `json:"price,omitempty"`
	PaymentMethod  string    `json:"payment_method,omitempty"`
	Status         string    `json:"status"`
	CustomerRating int       `json:"customer_rating,omitempty"`
	CustomerReview string    `json:"customer_review,omitempty"`
	ProviderRating int       `json:"provider_rating,omitempty"`
	ProviderReview string    `json:"provider_review,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// jobStatusRank orders the lifecycle for forward-only checks.
var jobStatusRank = map[string]int{
	JobStatusPending:    0,
	JobStatusAccepted:   1,
	JobStatusInProgress: 2,
	JobStatusCompleted:  3,
	JobStatusReviewed:   4,
}

// JobStatusRank returns the lifecycle position of status, or -1 if unknown.
func JobStatusRank(status string) int {
	if r, ok := jobStatusRank[status]; ok {
		return r
	}
	return -1
}
